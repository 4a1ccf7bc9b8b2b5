package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"teamtasker/internal/reminder"
	"teamtasker/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		clockTickCmd(m.cfg.ClockRefreshInterval()),
	}
	if m.engine != nil {
		cmds = append(cmds, waitForNotificationCmd(m.engine.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.helpVisible {
			m.helpVisible = false
			return m, nil
		}
		switch m.screen {
		case ScreenLogin:
			return m.handleLoginKey(typed)
		case ScreenCalendar:
			return m.handleCalendarKey(typed)
		case ScreenDay:
			return m.handleDayKey(typed)
		case ScreenForm:
			return m.handleFormKey(typed)
		}
	case NotificationMsg:
		m.pushNotification(typed.Event)
		if m.engine != nil {
			return m, waitForNotificationCmd(m.engine.C())
		}
		return m, nil
	case ClockTickMsg:
		// Nothing to mutate: re-rendering is enough for the past-due
		// styling in the day panel to track the wall clock.
		return m, clockTickCmd(m.cfg.ClockRefreshInterval())
	case SetStatusMsg:
		m.status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.status = StatusBar{}
		return m, nil
	}
	return m, nil
}

func (m *Model) pushNotification(ev reminder.Notification) {
	m.notifications = append(m.notifications, ev)
	if len(m.notifications) > maxNotifications {
		m.notifications = m.notifications[len(m.notifications)-maxNotifications:]
	}
	m.status = StatusBar{
		Text:    fmt.Sprintf("%s: %s", ev.Title, ev.Message),
		IsError: ev.Severity == reminder.SeverityWarning,
	}
	if m.cfg.DesktopNotifications {
		_ = m.notifier.Send(ev.Title, ev.Message)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.helpVisible {
		return views.RenderFrame(views.FrameData{
			Header: m.headerLine(),
			Body:   views.RenderMarkdown(helpMarkdown),
			Footer: "press any key to close help",
		})
	}

	var body string
	switch m.screen {
	case ScreenLogin:
		body = views.RenderLogin(views.LoginData{
			UserView:    m.userInput.View(),
			PassView:    m.passInput.View(),
			Feedback:    m.login.Feedback,
			ShowPass:    m.login.ShowPass,
			FocusButton: m.login.Focus == loginFocusButton,
		})
	case ScreenCalendar:
		body = views.RenderMonthGrid(m.monthGridData())
	case ScreenDay:
		body = views.RenderDayPanel(m.dayPanelData())
	case ScreenForm:
		body = views.RenderForm(m.formData())
	}

	return views.RenderFrame(views.FrameData{
		Header:       m.headerLine(),
		Body:         body,
		StatusLine:   m.status.Text,
		StatusIsErr:  m.status.IsError,
		Notification: views.RenderNotifications(m.notificationLines()),
		Footer:       m.helpModel.ShortHelpView(m.keys.ShortHelp()),
	})
}

func (m Model) headerLine() string {
	if m.screen == ScreenLogin {
		return "TeamTasker Login"
	}
	return fmt.Sprintf("TeamTasker Calendar - %s | %s", m.username, m.monthLabel())
}

func (m Model) notificationLines() []views.NotificationLine {
	out := make([]views.NotificationLine, 0, len(m.notifications))
	for _, ev := range m.notifications {
		out = append(out, views.NotificationLine{
			Title:   ev.Title,
			Message: ev.Message,
			Warning: ev.Severity == reminder.SeverityWarning,
		})
	}
	return out
}
