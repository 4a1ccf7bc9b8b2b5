package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"teamtasker/internal/model"
	"teamtasker/internal/reminder"
	"teamtasker/internal/tasktext"
	"teamtasker/internal/views"
)

func (m Model) handleDayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.day.RawActive {
		return m.handleRawInputKey(msg)
	}

	tasks := m.store.Tasks(m.day.Key)
	m.clampDayCursor(len(tasks))

	if m.day.ConfirmDelete {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.day.ConfirmDelete = false
			if task, ok := m.selectedTask(tasks); ok {
				if err := m.store.Remove(m.day.Key, task.ID); err != nil {
					m.status = StatusBar{Text: err.Error(), IsError: true}
				} else {
					m.status = StatusBar{Text: "task deleted"}
					m.clampDayCursor(len(tasks) - 1)
				}
			}
		case key.Matches(msg, m.keys.Cancel):
			m.day.ConfirmDelete = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.screen = ScreenCalendar
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.day.Cursor > 0 {
			m.day.Cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.day.Cursor < len(tasks)-1 {
			m.day.Cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selectedTask(tasks); ok {
			if err := m.store.Toggle(m.day.Key, task.ID); err != nil {
				m.status = StatusBar{Text: err.Error(), IsError: true}
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.openForm("")
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		if task, ok := m.selectedTask(tasks); ok {
			m.openForm(task.ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if len(tasks) > 0 {
			m.day.ConfirmDelete = true
		}
		return m, nil
	case key.Matches(msg, m.keys.Raw):
		m.day.RawActive = true
		m.rawInput.SetValue("")
		m.rawInput.Focus()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = true
		return m, nil
	}
	return m, nil
}

// handleRawInputKey accepts a pasted display line and decodes it through the
// codec, so old exports can be brought back in as structured records.
func (m Model) handleRawInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.day.RawActive = false
		m.rawInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		text := strings.TrimSpace(m.rawInput.Value())
		m.day.RawActive = false
		m.rawInput.Blur()
		if text == "" {
			return m, nil
		}
		m.store.Add(m.day.Key, decodeRawTask(text))
		m.status = StatusBar{Text: "task imported"}
		return m, nil
	}
	var cmd tea.Cmd
	m.rawInput, cmd = m.rawInput.Update(msg)
	return m, cmd
}

func decodeRawTask(text string) model.Task {
	title := tasktext.Title(text)
	start, end, ok := tasktext.TimeRange(text)
	if !ok {
		start, end = "", ""
	}
	description := ""
	if idx := strings.Index(text, "): "); idx >= 0 {
		description = strings.TrimSpace(text[idx+len("): "):])
	}
	return model.NewTask(title, description, start, end)
}

func (m *Model) clampDayCursor(count int) {
	if m.day.Cursor >= count {
		m.day.Cursor = count - 1
	}
	if m.day.Cursor < 0 {
		m.day.Cursor = 0
	}
}

func (m Model) selectedTask(tasks []model.Task) (model.Task, bool) {
	if m.day.Cursor < 0 || m.day.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.day.Cursor], true
}

func (m Model) dayPanelData() views.DayPanelData {
	tasks := m.store.Tasks(m.day.Key)
	now := m.now()
	lines := make([]views.DayTaskLine, 0, len(tasks))
	for i, task := range tasks {
		lines = append(lines, views.DayTaskLine{
			Text:     displayLine(task),
			Done:     task.Done,
			PastDue:  !task.Done && reminder.IsPastDue(task, m.day.Key, now),
			Selected: i == m.day.Cursor,
		})
	}
	data := views.DayPanelData{
		DayKey:         string(m.day.Key),
		Lines:          lines,
		ConfirmDelete:  m.day.ConfirmDelete,
		RawInputActive: m.day.RawActive,
		RawInputView:   m.rawInput.View(),
	}
	if task, ok := m.selectedTask(tasks); ok && task.Description != "" {
		data.Preview = views.RenderMarkdown(task.Description)
	}
	return data
}

// displayLine renders a task through the codec at the presentation boundary.
// Untimed tasks skip the empty "(-)" range.
func displayLine(task model.Task) string {
	if task.Start == "" && task.End == "" {
		if task.Description == "" {
			return fmt.Sprintf("%s %s", tasktext.Marker, task.Title)
		}
		return fmt.Sprintf("%s %s: %s", tasktext.Marker, task.Title, task.Description)
	}
	return tasktext.Encode(task.Title, task.Start, task.End, task.Description)
}
