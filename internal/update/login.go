package update

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"teamtasker/internal/log"
)

// loginFeedback mirrors the original login screen's message verbatim.
const loginFeedback = "Invalid username or password."

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.setLoginFocus(m.login.Focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setLoginFocus(m.login.Focus - 1)
		return m, nil
	case "ctrl+s":
		m.login.ShowPass = !m.login.ShowPass
		if m.login.ShowPass {
			m.passInput.EchoMode = textinput.EchoNormal
		} else {
			m.passInput.EchoMode = textinput.EchoPassword
		}
		return m, nil
	case "enter":
		return m.authenticate()
	}

	var cmd tea.Cmd
	switch m.login.Focus {
	case loginFocusUser:
		m.userInput, cmd = m.userInput.Update(msg)
	case loginFocusPass:
		m.passInput, cmd = m.passInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) setLoginFocus(focus int) {
	if focus < loginFocusUser {
		focus = loginFocusButton
	}
	if focus > loginFocusButton {
		focus = loginFocusUser
	}
	m.login.Focus = focus
	m.userInput.Blur()
	m.passInput.Blur()
	switch focus {
	case loginFocusUser:
		m.userInput.Focus()
	case loginFocusPass:
		m.passInput.Focus()
	}
}

func (m Model) authenticate() (tea.Model, tea.Cmd) {
	username := m.userInput.Value()
	if err := m.auth.Login(username, m.passInput.Value()); err != nil {
		m.login.Feedback = loginFeedback
		m.passInput.SetValue("")
		log.Info("login rejected", "user", username)
		return m, nil
	}
	m.username = username
	m.login.Feedback = ""
	m.screen = ScreenCalendar
	now := m.now()
	m.cal = CalendarState{Month: now, SelectedDay: now.Day()}
	log.Info("login accepted", "user", username)
	return m, nil
}
