package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDayKey = errors.New("model: invalid day key")

// DayKeyLayout is the canonical yyyy-MM-dd partition key format. Keys are
// zero-padded and locale independent, so lexicographic order matches
// chronological order.
const DayKeyLayout = "2006-01-02"

// DayKey identifies one calendar day. It is the sole join key between
// calendar cells and the task store.
type DayKey string

func DayKeyFor(t time.Time) DayKey {
	return DayKey(t.Format(DayKeyLayout))
}

func (k DayKey) Valid() bool {
	_, err := k.Time()
	return err == nil
}

// Time resolves the key to midnight of its day in the local zone.
func (k DayKey) Time() (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, string(k), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDayKey, string(k))
	}
	return t, nil
}

// AddDays returns the key shifted by n calendar days. An unparseable key is
// returned unchanged.
func (k DayKey) AddDays(n int) DayKey {
	t, err := k.Time()
	if err != nil {
		return k
	}
	return DayKeyFor(t.AddDate(0, 0, n))
}

// Before reports whether k falls strictly before other. String comparison is
// sufficient for this format.
func (k DayKey) Before(other DayKey) bool {
	return string(k) < string(other)
}
