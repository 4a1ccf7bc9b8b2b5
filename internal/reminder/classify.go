package reminder

import (
	"time"

	"teamtasker/internal/model"
)

// IsPastDue reports whether the task is late as of now. A task under a past
// day is late unconditionally; under a future day it never is. Under today it
// is late only when now's time of day is strictly past the task's end time,
// at minute granularity. A missing or unparseable end time fails safe to
// false, the same as an invalid day key.
//
// Pure function of its arguments; callers re-evaluate every tick so the answer
// tracks the wall clock.
func IsPastDue(task model.Task, day model.DayKey, now time.Time) bool {
	if !day.Valid() {
		return false
	}
	today := model.DayKeyFor(now)
	if day.Before(today) {
		return true
	}
	if today.Before(day) {
		return false
	}
	end, err := model.ParseClock(task.End)
	if err != nil {
		return false
	}
	nowMinute := now.Hour()*60 + now.Minute()
	endMinute := end.Hour()*60 + end.Minute()
	return nowMinute > endMinute
}
