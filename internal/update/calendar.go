package update

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"teamtasker/internal/model"
	"teamtasker/internal/views"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = true
		return m, nil
	case key.Matches(msg, m.keys.PrevMonth):
		m.shiftMonth(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextMonth):
		m.shiftMonth(1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveSelectedDay(-7)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveSelectedDay(7)
		return m, nil
	case msg.String() == "[":
		m.moveSelectedDay(-1)
		return m, nil
	case msg.String() == "]":
		m.moveSelectedDay(1)
		return m, nil
	case key.Matches(msg, m.keys.Today):
		now := m.now()
		m.cal = CalendarState{Month: now, SelectedDay: now.Day()}
		return m, nil
	case key.Matches(msg, m.keys.Open):
		m.openDay(m.selectedDayKey())
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.openDay(m.selectedDayKey())
		m.openForm("")
		return m, nil
	}
	return m, nil
}

func (m *Model) shiftMonth(delta int) {
	m.cal.Month = m.cal.Month.AddDate(0, delta, 0)
	if max := daysInMonth(m.cal.Month); m.cal.SelectedDay > max {
		m.cal.SelectedDay = max
	}
}

func (m *Model) moveSelectedDay(delta int) {
	next := m.cal.SelectedDay + delta
	max := daysInMonth(m.cal.Month)
	if next < 1 {
		next = 1
	}
	if next > max {
		next = max
	}
	m.cal.SelectedDay = next
}

func (m *Model) openDay(day model.DayKey) {
	m.screen = ScreenDay
	m.day = DayState{Key: day}
}

func (m Model) selectedDayKey() model.DayKey {
	t := time.Date(m.cal.Month.Year(), m.cal.Month.Month(), m.cal.SelectedDay, 0, 0, 0, 0, time.Local)
	return model.DayKeyFor(t)
}

func (m Model) monthLabel() string {
	return m.cal.Month.Format("January 2006")
}

func daysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
	return first.AddDate(0, 1, -1).Day()
}

// monthGridData lays the focused month out Sun..Sat with leading blanks, the
// way the original grid did.
func (m Model) monthGridData() views.MonthGridData {
	first := time.Date(m.cal.Month.Year(), m.cal.Month.Month(), 1, 0, 0, 0, 0, time.Local)
	lead := int(first.Weekday())
	max := daysInMonth(m.cal.Month)
	today := model.DayKeyFor(m.now())

	cells := make([]views.DayCell, 0, lead+max)
	for i := 0; i < lead; i++ {
		cells = append(cells, views.DayCell{Blank: true})
	}
	for day := 1; day <= max; day++ {
		dayKey := model.DayKeyFor(first.AddDate(0, 0, day-1))
		cells = append(cells, views.DayCell{
			Day:      day,
			Count:    m.store.Count(dayKey),
			Selected: day == m.cal.SelectedDay,
			IsToday:  dayKey == today,
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, views.DayCell{Blank: true})
	}

	weeks := make([][]views.DayCell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return views.MonthGridData{MonthLabel: m.monthLabel(), Weeks: weeks}
}
