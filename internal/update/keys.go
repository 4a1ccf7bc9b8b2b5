package update

import (
	"github.com/charmbracelet/bubbles/key"

	"teamtasker/internal/config"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Open      key.Binding
	Add       key.Binding
	Edit      key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Raw       key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func keysFromConfig(cfg config.Keymap) keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevMonth: key.NewBinding(key.WithKeys("left", cfg.PrevMonth), key.WithHelp("←/"+cfg.PrevMonth, "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("right", cfg.NextMonth), key.WithHelp("→/"+cfg.NextMonth, "next month")),
		Today:     key.NewBinding(key.WithKeys(cfg.Today), key.WithHelp(cfg.Today, "jump to today")),
		Open:      key.NewBinding(key.WithKeys(cfg.Open), key.WithHelp(cfg.Open, "open day")),
		Add:       key.NewBinding(key.WithKeys(cfg.Add), key.WithHelp(cfg.Add, "add task")),
		Edit:      key.NewBinding(key.WithKeys(cfg.Edit), key.WithHelp(cfg.Edit, "edit task")),
		Toggle:    key.NewBinding(key.WithKeys(cfg.Toggle), key.WithHelp("space", "toggle done")),
		Delete:    key.NewBinding(key.WithKeys(cfg.Delete), key.WithHelp(cfg.Delete, "delete task")),
		Raw:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "paste task line")),
		Confirm:   key.NewBinding(key.WithKeys(cfg.Confirm), key.WithHelp(cfg.Confirm, "confirm")),
		Cancel:    key.NewBinding(key.WithKeys(cfg.Cancel), key.WithHelp(cfg.Cancel, "cancel")),
		Help:      key.NewBinding(key.WithKeys(cfg.Help), key.WithHelp(cfg.Help, "help")),
		Quit:      key.NewBinding(key.WithKeys(cfg.Quit, "ctrl+c"), key.WithHelp(cfg.Quit, "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Add, k.Today, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevMonth, k.NextMonth, k.Today},
		{k.Open, k.Add, k.Edit, k.Toggle, k.Delete},
		{k.Raw, k.Confirm, k.Cancel, k.Help, k.Quit},
	}
}
