package model

import (
	"errors"
	"testing"
)

func TestNewTaskTrimsAndAssignsID(t *testing.T) {
	task := NewTask("  Ship report ", " finalize draft ", " 09:00", "10:30 ")
	if task.ID == "" {
		t.Fatal("expected generated id")
	}
	if task.Title != "Ship report" {
		t.Fatalf("unexpected title: %q", task.Title)
	}
	if task.Start != "09:00" || task.End != "10:30" {
		t.Fatalf("unexpected times: %q %q", task.Start, task.End)
	}
	if task.Done {
		t.Fatal("new task must not be done")
	}
}

func TestTaskValidateSuccess(t *testing.T) {
	task := NewTask("Ship report", "finalize draft", "09:00", "10:30")
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRequiresTitle(t *testing.T) {
	task := NewTask("   ", "", "", "")
	if err := task.Validate(); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestTaskValidateRejectsBadClock(t *testing.T) {
	task := NewTask("Standup", "", "9 o'clock", "")
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("expected ErrInvalidClock, got: %v", err)
	}

	task = NewTask("Standup", "", "09:00", "25:00")
	err = task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("expected ErrInvalidClock for end, got: %v", err)
	}
}

func TestTaskValidateAllowsEmptyTimes(t *testing.T) {
	task := NewTask("Untimed", "", "", "")
	if err := task.Validate(); err != nil {
		t.Fatalf("expected untimed task to be valid, got: %v", err)
	}
}
