package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/huh"

	"github.com/notepid/employee_directory/internal/admin/app"
	"github.com/notepid/employee_directory/internal/audit"
	"github.com/notepid/employee_directory/internal/employee"
)

type employeesModel struct {
	app *app.App

	width  int
	height int

	Done bool

	state employeesState

	list   list.Model
	err    error
	notice string

	selected *employee.Employee

	form *huh.Form

	createFirst    string
	createLast     string
	createUsername string
	createPassword string
	createHR       bool
	createMgmt     bool
	createSave     bool

	editFirst    string
	editLast     string
	editUsername string
	editSave     bool

	newPassword string
	pwConfirm   string
	pwSave      bool

	permHR   bool
	permMgmt bool
	permSave bool

	removeConfirm bool
}

type employeesState int

const (
	employeesStateList employeesState = iota
	employeesStateDetail
	employeesStateCreate
	employeesStateEditProfile
	employeesStateResetPassword
	employeesStateSetPermissions
	employeesStateRemove
)

type employeeItem struct {
	id    int
	title string
	desc  string
	kind  string
}

func (i employeeItem) Title() string       { return i.title }
func (i employeeItem) Description() string { return i.desc }
func (i employeeItem) FilterValue() string { return i.title }

func newEmployeesModel(a *app.App) *employeesModel {
	m := &employeesModel{app: a, state: employeesStateList}
	m.reloadList()
	return m
}

func (m *employeesModel) SetSize(w, h int) {
	m.width, m.height = w, h
	m.list.SetSize(w, h-2)
}

func (m *employeesModel) Update(msg tea.Msg) tea.Cmd {
	if m.err != nil {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			if msg.String() == "esc" || msg.String() == "q" || msg.String() == "enter" {
				m.err = nil
				m.state = employeesStateList
				m.form = nil
				m.selected = nil
				m.reloadList()
			}
		}
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			if m.state == employeesStateList && !m.list.SettingFilter() {
				m.Done = true
				return nil
			}
		case "esc":
			if m.state == employeesStateList && m.list.FilterState() != list.Unfiltered {
				break
			}
			m.back()
			return nil
		}
	}

	switch m.state {
	case employeesStateList:
		return m.updateList(msg)
	case employeesStateDetail:
		return m.updateDetail(msg)
	default:
		return m.updateForm(msg)
	}
}

func (m *employeesModel) updateList(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" && !m.list.SettingFilter() {
			it, ok := m.list.SelectedItem().(employeeItem)
			if !ok {
				return cmd
			}
			m.notice = ""
			if it.kind == "create" {
				m.startCreate()
				return nil
			}

			e := m.app.Directory.FindByID(it.id)
			if e == nil {
				m.err = fmt.Errorf("employee %d no longer exists", it.id)
				return nil
			}
			m.selected = e
			m.state = employeesStateDetail
			m.list = newActionList(m.width, m.height)
			return nil
		}
	}

	return cmd
}

func (m *employeesModel) updateDetail(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			it, ok := m.list.SelectedItem().(employeeItem)
			if !ok {
				return cmd
			}
			m.notice = ""
			switch it.kind {
			case "edit_profile":
				m.startEditProfile()
			case "set_permissions":
				m.startSetPermissions()
			case "reset_password":
				m.startResetPassword()
			case "remove":
				m.startRemove()
			case "back":
				m.back()
			}
			return nil
		}
	}

	return cmd
}

func (m *employeesModel) updateForm(msg tea.Msg) tea.Cmd {
	if m.form == nil {
		m.err = fmt.Errorf("internal error: form not initialized")
		return nil
	}
	updated, cmd := m.form.Update(msg)
	f, ok := updated.(*huh.Form)
	if !ok {
		m.err = fmt.Errorf("internal error: unexpected form model type")
		return nil
	}
	m.form = f
	if m.form.State != huh.StateCompleted {
		return cmd
	}

	switch m.state {
	case employeesStateCreate:
		if m.createSave {
			e := employee.New(m.createFirst, m.createLast, m.createUsername, m.createPassword,
				employee.Mask(m.createHR, m.createMgmt))
			if err := m.app.Directory.Add(e); err != nil {
				m.err = err
				return nil
			}
			m.app.Record(audit.ActionAdd, e, e.Summary())
			m.notice = "Added " + e.Summary()
		}
		m.form = nil
		m.state = employeesStateList
		m.reloadList()
	case employeesStateEditProfile:
		if m.editSave && m.selected != nil {
			e := *m.selected
			e.FirstName, e.LastName, e.Username = m.editFirst, m.editLast, m.editUsername
			if !m.save(&e, "profile") {
				return nil
			}
		}
		m.toDetail()
	case employeesStateResetPassword:
		if m.pwSave && m.selected != nil {
			e := *m.selected
			e.UpdatePassword(m.newPassword)
			if !m.save(&e, "password") {
				return nil
			}
		}
		m.toDetail()
	case employeesStateSetPermissions:
		if m.permSave && m.selected != nil {
			e := *m.selected
			e.UpdatePermissions(employee.Mask(m.permHR, m.permMgmt))
			if !m.save(&e, "permissions") {
				return nil
			}
		}
		m.toDetail()
	case employeesStateRemove:
		if m.removeConfirm && m.selected != nil {
			target := *m.selected
			if !m.app.Directory.RemoveByID(target.ID) {
				m.err = fmt.Errorf("could not remove %s", target.Summary())
				return nil
			}
			m.app.Record(audit.ActionRemove, &target, target.Summary())
			m.notice = "Removed " + target.Summary()
			m.selected = nil
			m.form = nil
			m.state = employeesStateList
			m.reloadList()
			return nil
		}
		m.toDetail()
	}
	return nil
}

// save writes e over the selected record and reports success.
func (m *employeesModel) save(e *employee.Employee, what string) bool {
	if err := m.app.Directory.Update(e); err != nil {
		m.err = err
		return false
	}
	m.app.Record(audit.ActionEdit, e, what)
	m.notice = fmt.Sprintf("Updated %s (%s)", e.Summary(), what)
	m.selected = m.app.Directory.FindByID(e.ID)
	return true
}

func (m *employeesModel) toDetail() {
	m.form = nil
	m.state = employeesStateDetail
	m.list = newActionList(m.width, m.height)
}

func (m *employeesModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Employees error: %v\n\nPress Enter/Esc to go back.", m.err)
	}

	var notice string
	if m.notice != "" {
		notice = noticeStyle.Render(m.notice) + "\n"
	}

	switch m.state {
	case employeesStateList:
		m.list.Title = "Employees"
		return notice + m.list.View() + "\n(q to go back, enter to select, / to filter)"
	case employeesStateDetail:
		if m.selected == nil {
			return "No employee selected\n\n(esc to go back)"
		}
		header := titleStyle.Render(m.selected.FullName()) + "\n"
		m.list.Title = "Actions"
		return notice + header + m.selected.Profile() + "\n" + m.history() + "\n" + m.list.View() + "\n(esc to go back)"
	default:
		return m.form.View() + "\n\n(esc to go back)"
	}
}

const historyLines = 3

// history lists the newest activity log entries about the selected employee.
func (m *employeesModel) history() string {
	if m.app.Activity == nil {
		return ""
	}
	events, err := m.app.Activity.ForTarget(m.selected.ID)
	if err != nil {
		return errStyle.Render("History: ") + err.Error() + "\n"
	}
	if len(events) == 0 {
		return "No recorded activity.\n"
	}
	var b strings.Builder
	b.WriteString("Recent activity:\n")
	for i, ev := range events {
		if i == historyLines {
			break
		}
		fmt.Fprintf(&b, "  %s  %s\n", ev.CreatedAt.Format("2006-01-02 15:04"), eventTitle(ev))
	}
	return b.String()
}

func (m *employeesModel) reloadList() {
	employees := m.app.Directory.List()

	items := make([]list.Item, 0, len(employees)+1)
	items = append(items, employeeItem{title: "+ Add employee", desc: "Create a new employee record", kind: "create"})
	for _, e := range employees {
		desc := fmt.Sprintf("#%d • %s • %s", e.ID, e.Username, e.Permissions)
		items = append(items, employeeItem{id: e.ID, title: e.FullName(), desc: desc, kind: "employee"})
	}

	m.list = list.New(items, list.NewDefaultDelegate(), m.width, m.height-2)
	m.list.SetShowStatusBar(false)
	m.list.SetFilteringEnabled(true)
	m.list.SetShowHelp(true)
	m.list.Title = "Employees"
}

func newActionList(w, h int) list.Model {
	items := []list.Item{
		employeeItem{title: "Edit profile", desc: "First name, last name, username", kind: "edit_profile"},
		employeeItem{title: "Set permissions", desc: "HR and management access", kind: "set_permissions"},
		employeeItem{title: "Reset password", desc: "Set a new password", kind: "reset_password"},
		employeeItem{title: "Remove", desc: "Delete this employee record", kind: "remove"},
		employeeItem{title: "Back", desc: "Return to employee list", kind: "back"},
	}
	l := list.New(items, list.NewDefaultDelegate(), w, h-10)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	return l
}

func (m *employeesModel) usernameFree(username string, excludeID int) bool {
	return m.app.Directory.IsUsernameUnique(username, excludeID)
}

func (m *employeesModel) startCreate() {
	m.state = employeesStateCreate
	m.createFirst = ""
	m.createLast = ""
	m.createUsername = ""
	m.createPassword = ""
	m.createHR = false
	m.createMgmt = false
	m.createSave = true
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&m.createFirst),
			huh.NewInput().Title("Last name").Value(&m.createLast),
			huh.NewInput().Title("Username").Value(&m.createUsername).Validate(uniqueUsername(m.usernameFree, 0)),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&m.createPassword),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("HR access?").Value(&m.createHR),
			huh.NewConfirm().Title("Management access?").Value(&m.createMgmt),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Add employee?").Value(&m.createSave),
		),
	)
}

func (m *employeesModel) startEditProfile() {
	m.state = employeesStateEditProfile
	m.editFirst = m.selected.FirstName
	m.editLast = m.selected.LastName
	m.editUsername = m.selected.Username
	m.editSave = true
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&m.editFirst),
			huh.NewInput().Title("Last name").Value(&m.editLast),
			huh.NewInput().Title("Username").Value(&m.editUsername).Validate(uniqueUsername(m.usernameFree, m.selected.ID)),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Save changes?").Value(&m.editSave),
		),
	)
}

func (m *employeesModel) startResetPassword() {
	m.state = employeesStateResetPassword
	m.newPassword = ""
	m.pwConfirm = ""
	m.pwSave = true
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("New password").EchoMode(huh.EchoModePassword).Value(&m.newPassword).Validate(nonEmpty("password")),
			huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&m.pwConfirm).Validate(func(s string) error {
				if s != m.newPassword {
					return fmt.Errorf("passwords do not match")
				}
				return nil
			}),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Reset password?").Value(&m.pwSave),
		),
	)
}

func (m *employeesModel) startSetPermissions() {
	m.state = employeesStateSetPermissions
	m.permHR = m.selected.HasPermission(employee.HR)
	m.permMgmt = m.selected.HasPermission(employee.Management)
	m.permSave = true
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title("HR access?").Value(&m.permHR),
			huh.NewConfirm().Title("Management access?").Value(&m.permMgmt),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Save permissions?").Value(&m.permSave),
		),
	)
}

func (m *employeesModel) startRemove() {
	m.state = employeesStateRemove
	m.removeConfirm = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title(fmt.Sprintf("Remove %s?", m.selected.Summary())).Value(&m.removeConfirm),
		),
	)
}

func (m *employeesModel) back() {
	switch m.state {
	case employeesStateList:
		m.Done = true
	case employeesStateDetail:
		m.state = employeesStateList
		m.selected = nil
		m.form = nil
		m.reloadList()
	default:
		m.toDetail()
	}
}
