package update

const helpMarkdown = `# TeamTasker

## Calendar
| key | action |
| --- | ------ |
| ←/h, →/l | previous / next month |
| ↑/k, ↓/j | move a week back / forward |
| [ , ] | previous / next day |
| t | jump to today |
| enter | open the selected day |
| a | add a task to the selected day |
| q | quit |

## Day
| key | action |
| --- | ------ |
| ↑/k, ↓/j | move the cursor |
| space | toggle done |
| a, e, d | add, edit, delete |
| i | paste an encoded task line |
| esc | back to the calendar |

## Reminders
Due-today, upcoming-tomorrow and overdue-yesterday notifications appear in
the panel below the view, each at most once per task and day. Enable
` + "`desktop_notifications`" + ` in the config file to mirror them to the desktop.
`
