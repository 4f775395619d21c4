package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/list"

	"github.com/notepid/employee_directory/internal/admin/app"
	"github.com/notepid/employee_directory/internal/audit"
)

const activityLimit = 100

type activityModel struct {
	app *app.App

	width  int
	height int

	Done bool

	list list.Model
	err  error
}

type activityItem struct {
	title string
	desc  string
}

func (i activityItem) Title() string       { return i.title }
func (i activityItem) Description() string { return i.desc }
func (i activityItem) FilterValue() string { return i.title + " " + i.desc }

func newActivityModel(a *app.App) *activityModel {
	m := &activityModel{app: a}
	m.reload()
	return m
}

func (m *activityModel) SetSize(w, h int) {
	m.width, m.height = w, h
	m.list.SetSize(w, h-2)
}

func (m *activityModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.SettingFilter() {
			break
		}
		switch msg.String() {
		case "q", "esc":
			if m.list.FilterState() == list.Unfiltered || m.err != nil {
				m.Done = true
				return nil
			}
		case "r":
			m.reload()
			return nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *activityModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Activity error: %v\n\nPress Esc to go back.", m.err)
	}
	if m.app.Activity == nil {
		return "The activity log is disabled (audit.database is empty).\n\n(esc to go back)"
	}
	return m.list.View() + "\n(esc to go back, r to refresh, / to filter)"
}

func (m *activityModel) reload() {
	var events []audit.Event
	if m.app.Activity != nil {
		var err error
		events, err = m.app.Activity.Recent(activityLimit)
		if err != nil {
			m.err = err
		}
	}

	items := make([]list.Item, 0, len(events))
	for _, ev := range events {
		items = append(items, activityItem{title: eventTitle(ev), desc: eventDesc(ev)})
	}

	m.list = list.New(items, list.NewDefaultDelegate(), m.width, m.height-2)
	m.list.SetShowStatusBar(false)
	m.list.SetFilteringEnabled(true)
	m.list.SetShowHelp(true)
	m.list.Title = "Activity Log"
}

func eventTitle(ev audit.Event) string {
	t := ev.Action
	if ev.TargetID != 0 {
		t += fmt.Sprintf(" #%d", ev.TargetID)
	}
	if ev.Detail != "" {
		t += ": " + ev.Detail
	}
	return t
}

func eventDesc(ev audit.Event) string {
	actor := "operator"
	if ev.ActorID != 0 {
		actor = fmt.Sprintf("employee #%d", ev.ActorID)
	}
	return fmt.Sprintf("%s • %s • %s", ev.CreatedAt.Format("2006-01-02 15:04:05"), actor, ev.SessionID)
}
