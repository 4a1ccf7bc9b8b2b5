package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"teamtasker/internal/model"
	"teamtasker/internal/views"
)

// openForm prepares the task form, empty for a new task or prefilled when
// editing the identified one.
func (m *Model) openForm(editID string) {
	m.screen = ScreenForm
	m.form = FormState{EditingID: editID, StartIdx: 18, EndIdx: 20} // 09:00 - 10:00
	m.titleInput.SetValue("")
	m.descInput.SetValue("")
	if editID != "" {
		for _, task := range m.store.Tasks(m.day.Key) {
			if task.ID == editID {
				m.titleInput.SetValue(task.Title)
				m.descInput.SetValue(task.Description)
				m.form.StartIdx = clockIndex(task.Start)
				m.form.EndIdx = clockIndex(task.End)
				break
			}
		}
	}
	m.setFormFocus(formFocusTitle)
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.screen = ScreenDay
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		return m.saveForm()
	case msg.String() == "tab":
		m.setFormFocus(m.form.Focus + 1)
		return m, nil
	case msg.String() == "shift+tab":
		m.setFormFocus(m.form.Focus - 1)
		return m, nil
	}

	switch m.form.Focus {
	case formFocusTitle:
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	case formFocusDesc:
		var cmd tea.Cmd
		m.descInput, cmd = m.descInput.Update(msg)
		return m, cmd
	case formFocusStart:
		m.form.StartIdx = cyclePicker(m.form.StartIdx, msg)
	case formFocusEnd:
		m.form.EndIdx = cyclePicker(m.form.EndIdx, msg)
	}
	return m, nil
}

func cyclePicker(idx int, msg tea.KeyMsg) int {
	choices := len(timeChoices())
	switch msg.String() {
	case "left", "h":
		return (idx + choices - 1) % choices
	case "right", "l":
		return (idx + 1) % choices
	}
	return idx
}

func (m *Model) setFormFocus(focus int) {
	if focus < formFocusTitle {
		focus = formFocusEnd
	}
	if focus > formFocusEnd {
		focus = formFocusTitle
	}
	m.form.Focus = focus
	m.titleInput.Blur()
	m.descInput.Blur()
	switch focus {
	case formFocusTitle:
		m.titleInput.Focus()
	case formFocusDesc:
		m.descInput.Focus()
	}
}

func (m Model) saveForm() (tea.Model, tea.Cmd) {
	task := model.NewTask(
		m.titleInput.Value(),
		m.descInput.Value(),
		clockLabel(m.form.StartIdx),
		clockLabel(m.form.EndIdx),
	)
	if m.form.EditingID != "" {
		// Edits keep the task's identity so already-delivered reminders
		// stay delivered.
		task.ID = m.form.EditingID
		for _, existing := range m.store.Tasks(m.day.Key) {
			if existing.ID == task.ID {
				task.Done = existing.Done
			}
		}
	}
	if err := task.Validate(); err != nil {
		m.form.Err = err.Error()
		return m, nil
	}

	if m.form.EditingID != "" {
		if err := m.store.Update(m.day.Key, task); err != nil {
			m.form.Err = err.Error()
			return m, nil
		}
		m.status = StatusBar{Text: "task updated"}
	} else {
		m.store.Add(m.day.Key, task)
		m.status = StatusBar{Text: "task added"}
	}
	m.screen = ScreenDay
	return m, nil
}

func (m Model) formData() views.FormData {
	heading := fmt.Sprintf("Add task on %s", m.day.Key)
	if m.form.EditingID != "" {
		heading = fmt.Sprintf("Edit task on %s", m.day.Key)
	}
	return views.FormData{
		Heading:   heading,
		TitleView: m.titleInput.View(),
		DescView:  m.descInput.View(),
		Start:     clockLabel(m.form.StartIdx),
		End:       clockLabel(m.form.EndIdx),
		Focus:     m.form.Focus,
		ErrorText: m.form.Err,
	}
}
