package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type LoginData struct {
	UserView    string
	PassView    string
	Feedback    string
	ShowPass    bool
	FocusButton bool
}

type DayCell struct {
	Blank    bool
	Day      int
	Count    int
	Selected bool
	IsToday  bool
}

type MonthGridData struct {
	MonthLabel string
	Weeks      [][]DayCell
}

type DayTaskLine struct {
	Text     string
	Done     bool
	PastDue  bool
	Selected bool
}

type DayPanelData struct {
	DayKey         string
	Lines          []DayTaskLine
	ConfirmDelete  bool
	RawInputActive bool
	RawInputView   string
	Preview        string
}

type FormData struct {
	Heading   string
	TitleView string
	DescView  string
	Start     string
	End       string
	Focus     int
	ErrorText string
}

type NotificationLine struct {
	Title   string
	Message string
	Warning bool
}

func RenderLogin(data LoginData) string {
	var b strings.Builder
	b.WriteString("TeamTasker\n\n")
	b.WriteString("username: " + data.UserView + "\n")
	b.WriteString("password: " + data.PassView + "\n")
	toggle := "[ ] show password (ctrl+s)"
	if data.ShowPass {
		toggle = "[x] show password (ctrl+s)"
	}
	b.WriteString(dimStyle.Render(toggle) + "\n\n")
	button := "[ Login ]"
	if data.FocusButton {
		button = selectedStyle.Render(button)
	}
	b.WriteString(button + "\n")
	if data.Feedback != "" {
		b.WriteString("\n" + errorStyle.Render(data.Feedback))
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func RenderMonthGrid(data MonthGridData) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(data.MonthLabel) + "\n")
	headers := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for _, h := range headers {
		b.WriteString(fmt.Sprintf("%-8s", h))
	}
	b.WriteString("\n")
	for _, week := range data.Weeks {
		for _, cell := range week {
			b.WriteString(renderDayCell(cell))
		}
		b.WriteString("\n")
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderDayCell(cell DayCell) string {
	if cell.Blank {
		return strings.Repeat(" ", 8)
	}
	label := fmt.Sprintf("%2d", cell.Day)
	if cell.Count > 0 {
		label += fmt.Sprintf(" 📌%d", cell.Count)
	}
	label = fmt.Sprintf("%-8s", label)
	switch {
	case cell.Selected:
		return selectedStyle.Render(label)
	case cell.IsToday:
		return todayStyle.Render(label)
	default:
		return label
	}
}

func RenderDayPanel(data DayPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tasks on %s:\n", data.DayKey))
	if len(data.Lines) == 0 {
		b.WriteString(dimStyle.Render("(no tasks)") + "\n")
	}
	for _, line := range data.Lines {
		cursor := " "
		if line.Selected {
			cursor = ">"
		}
		check := "[ ]"
		if line.Done {
			check = "[x]"
		}
		text := line.Text
		switch {
		case line.Done:
			text = doneStyle.Render(text)
		case line.PastDue:
			text = warnStyle.Render(text + " (past due)")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, check, text))
	}
	if data.ConfirmDelete {
		b.WriteString("\n" + errorStyle.Render("delete selected task? [enter] yes [esc] no") + "\n")
	}
	if data.RawInputActive {
		b.WriteString("\npaste task line: " + data.RawInputView + "\n")
	}
	if data.Preview != "" {
		b.WriteString("\n" + data.Preview + "\n")
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func RenderForm(data FormData) string {
	var b strings.Builder
	b.WriteString(data.Heading + "\n\n")
	b.WriteString("title:       " + data.TitleView + "\n")
	b.WriteString("description: " + data.DescView + "\n")
	b.WriteString("start time:  " + renderPicker(data.Start, data.Focus == 2) + "\n")
	b.WriteString("end time:    " + renderPicker(data.End, data.Focus == 3) + "\n")
	b.WriteString("\n" + dimStyle.Render("[tab] next field  [←/→] change time  [enter] save  [esc] cancel"))
	if data.ErrorText != "" {
		b.WriteString("\n" + errorStyle.Render(data.ErrorText))
	}
	return panelStyle.Render(b.String())
}

func renderPicker(value string, focused bool) string {
	label := "< " + value + " >"
	if focused {
		return selectedStyle.Render(label)
	}
	return label
}

func RenderNotifications(lines []NotificationLine) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range lines {
		text := fmt.Sprintf("⏰ %s: %s", line.Title, line.Message)
		if line.Warning {
			text = warnStyle.Render(text)
		}
		b.WriteString(text + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
