package update

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"teamtasker/internal/auth"
	"teamtasker/internal/config"
	"teamtasker/internal/model"
	"teamtasker/internal/reminder"
	"teamtasker/internal/store"
)

type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenCalendar Screen = "calendar"
	ScreenDay      Screen = "day"
	ScreenForm     Screen = "form"
)

type StatusBar struct {
	Text    string
	IsError bool
}

const (
	loginFocusUser = iota
	loginFocusPass
	loginFocusButton
)

type LoginState struct {
	Focus    int
	Feedback string
	ShowPass bool
}

type CalendarState struct {
	// Month carries the focused month; only its year and month matter.
	Month       time.Time
	SelectedDay int
}

type DayState struct {
	Key           model.DayKey
	Cursor        int
	ConfirmDelete bool
	RawActive     bool
}

const (
	formFocusTitle = iota
	formFocusDesc
	formFocusStart
	formFocusEnd
)

type FormState struct {
	EditingID string
	StartIdx  int
	EndIdx    int
	Focus     int
	Err       string
}

// maxNotifications caps the on-screen reminder log.
const maxNotifications = 5

type Model struct {
	screen Screen
	cfg    config.Config
	keys   keyMap

	auth     *auth.Service
	store    *store.Store
	engine   *reminder.Engine
	notifier DesktopNotifier
	now      func() time.Time

	userInput textinput.Model
	passInput textinput.Model

	titleInput textinput.Model
	descInput  textinput.Model
	rawInput   textinput.Model

	login LoginState
	cal   CalendarState
	day   DayState
	form  FormState

	username      string
	notifications []reminder.Notification
	status        StatusBar
	helpModel     help.Model
	helpVisible   bool
	quitting      bool
}

type NotificationMsg struct {
	Event reminder.Notification
}

type ClockTickMsg struct {
	At time.Time
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

func NewModel(cfg config.Config, authSvc *auth.Service, st *store.Store, engine *reminder.Engine, notifier DesktopNotifier) Model {
	if notifier == nil {
		notifier = NoopDesktopNotifier{}
	}
	m := Model{
		screen:    ScreenLogin,
		cfg:       cfg,
		keys:      keysFromConfig(cfg.Keys),
		auth:      authSvc,
		store:     st,
		engine:    engine,
		notifier:  notifier,
		now:       time.Now,
		helpModel: help.New(),
	}
	m.userInput = textinput.New()
	m.userInput.Placeholder = "Username"
	m.userInput.CharLimit = 64
	m.userInput.Focus()

	m.passInput = textinput.New()
	m.passInput.Placeholder = "Password"
	m.passInput.CharLimit = 64
	m.passInput.EchoMode = textinput.EchoPassword
	m.passInput.EchoCharacter = '•'

	m.titleInput = textinput.New()
	m.titleInput.Placeholder = "Title"
	m.titleInput.CharLimit = 120

	m.descInput = textinput.New()
	m.descInput.Placeholder = "Description"
	m.descInput.CharLimit = 240

	m.rawInput = textinput.New()
	m.rawInput.Placeholder = "📌 Title (09:00-10:30): description"
	m.rawInput.CharLimit = 240

	now := time.Now()
	m.cal = CalendarState{Month: now, SelectedDay: now.Day()}
	return m
}

func waitForNotificationCmd(ch <-chan reminder.Notification) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return NotificationMsg{Event: ev}
	}
}

func clockTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ClockTickMsg{At: t}
	})
}

// timeChoices lists the half-hour wall clock values offered by the form's
// start and end pickers.
func timeChoices() []string {
	out := make([]string, 48)
	for i := range out {
		out[i] = clockLabel(i)
	}
	return out
}

func clockLabel(idx int) string {
	return fmt.Sprintf("%02d:%02d", idx/2, (idx%2)*30)
}

func clockIndex(value string) int {
	for i, choice := range timeChoices() {
		if choice == value {
			return i
		}
	}
	return 0
}
