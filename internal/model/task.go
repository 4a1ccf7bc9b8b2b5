package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidClock = errors.New("model: invalid clock time")

// ClockLayout is the 24-hour zero-padded wall clock format used for task
// start and end times.
const ClockLayout = "15:04"

// Task is a single calendar entry under one day key. Start and End are
// optional HH:mm wall clock strings; encoding into the display string
// happens only at the presentation boundary (see the tasktext package).
type Task struct {
	ID          string
	Title       string
	Description string
	Start       string
	End         string
	Done        bool
}

func NewTask(title, description, start, end string) Task {
	return Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Start:       strings.TrimSpace(start),
		End:         strings.TrimSpace(end),
	}
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if t.Start != "" {
		if _, err := ParseClock(t.Start); err != nil {
			return fmt.Errorf("%w: start %q", ErrInvalidClock, t.Start)
		}
	}
	if t.End != "" {
		if _, err := ParseClock(t.End); err != nil {
			return fmt.Errorf("%w: end %q", ErrInvalidClock, t.End)
		}
	}
	return nil
}

// ParseClock parses an HH:mm string into a time carrying only the hour and
// minute components.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(ClockLayout, strings.TrimSpace(s))
}
