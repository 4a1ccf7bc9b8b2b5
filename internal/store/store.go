// Package store holds all task state for the process lifetime. Two actors
// share it: the interactive UI and the reminder loop, so every operation
// takes the store lock and nothing ever hands out the raw map.
package store

import (
	"errors"
	"sort"
	"sync"

	"teamtasker/internal/model"
)

var ErrTaskNotFound = errors.New("store: task not found")

type Store struct {
	mu    sync.Mutex
	tasks map[model.DayKey][]model.Task
}

func New() *Store {
	return &Store{tasks: make(map[model.DayKey][]model.Task)}
}

// Add appends the task to the day's list, creating the list when the day has
// no tasks yet. Insertion order is display order.
func (s *Store) Add(day model.DayKey, task model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[day] = append(s.tasks[day], task)
}

// Update replaces the task with the same ID under the given day.
func (s *Store) Update(day model.DayKey, task model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.tasks[day]
	for i := range list {
		if list[i].ID == task.ID {
			list[i] = task
			return nil
		}
	}
	return ErrTaskNotFound
}

// Toggle flips the done flag of the identified task.
func (s *Store) Toggle(day model.DayKey, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.tasks[day]
	for i := range list {
		if list[i].ID == id {
			list[i].Done = !list[i].Done
			return nil
		}
	}
	return ErrTaskNotFound
}

// Remove deletes the identified task. When the day's list becomes empty the
// day key is pruned entirely, so absence and emptiness stay collapsed.
func (s *Store) Remove(day model.DayKey, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.tasks[day]
	for i := range list {
		if list[i].ID == id {
			s.tasks[day] = append(list[:i:i], list[i+1:]...)
			if len(s.tasks[day]) == 0 {
				delete(s.tasks, day)
			}
			return nil
		}
	}
	return ErrTaskNotFound
}

// Tasks returns a copy of the day's list in insertion order, empty when the
// day is absent.
func (s *Store) Tasks(day model.DayKey) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTasks(s.tasks[day])
}

// Count reports how many tasks the day holds, for the calendar grid badge.
func (s *Store) Count(day model.DayKey) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks[day])
}

// Days enumerates every day key that currently holds tasks, sorted.
func (s *Store) Days() []model.DayKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.DayKey, 0, len(s.tasks))
	for day := range s.tasks {
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Snapshot copies the lists for the requested days under a single lock, so
// one reminder tick sees a consistent view even while the UI mutates.
func (s *Store) Snapshot(days ...model.DayKey) map[model.DayKey][]model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[model.DayKey][]model.Task, len(days))
	for _, day := range days {
		if list, ok := s.tasks[day]; ok {
			out[day] = copyTasks(list)
		}
	}
	return out
}

func copyTasks(list []model.Task) []model.Task {
	out := make([]model.Task, len(list))
	copy(out, list)
	return out
}
