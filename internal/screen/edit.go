package screen

import (
	"fmt"
	"strings"

	"github.com/notepid/employee_directory/internal/audit"
	"github.com/notepid/employee_directory/internal/employee"
)

// EditScreen changes an existing employee. Blank text answers keep the
// current value. The permission answers are always applied: there is no
// "unchanged" answer for them.
type EditScreen struct {
	Employee *employee.Employee
}

func (s *EditScreen) Name() string { return Edit }

func (s *EditScreen) Header(Context) string {
	return fmt.Sprintf("Edit %s", s.Employee.FullName())
}

func (s *EditScreen) Body(Context) string {
	return "***  Answer prompts to employee information (Leave blank for no change).  ***\n"
}

func currentFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (s *EditScreen) Interact(c Context) (Target, error) {
	term := c.Terminal()
	dir := c.Directory()
	cur := s.Employee

	firstName, err := term.Ask(fmt.Sprintf("First Name (Current: %s)", cur.FirstName))
	if err != nil {
		return Target{}, err
	}
	lastName, err := term.Ask(fmt.Sprintf("Last Name (Current: %s)", cur.LastName))
	if err != nil {
		return Target{}, err
	}
	username, err := term.AskUntil(fmt.Sprintf("Username (Current: %s)", cur.Username), func(s string) string {
		if s != "" && !dir.IsUsernameUnique(s, cur.ID) {
			return fmt.Sprintf("Username %q is already taken.", s)
		}
		return ""
	})
	if err != nil {
		return Target{}, err
	}
	password, err := term.AskPassword("Password")
	if err != nil {
		return Target{}, err
	}
	hr, err := term.AskBinary(fmt.Sprintf("Is employee hr? (0: no, 1: yes; Current: %d)",
		currentFlag(cur.HasPermission(employee.HR))))
	if err != nil {
		return Target{}, err
	}
	management, err := term.AskBinary(fmt.Sprintf("Is employee management? (0: no, 1: yes; Current: %d)",
		currentFlag(cur.HasPermission(employee.Management))))
	if err != nil {
		return Target{}, err
	}

	updated := *cur
	var changed []string
	if firstName != "" && firstName != cur.FirstName {
		updated.FirstName = firstName
		changed = append(changed, "first name")
	}
	if lastName != "" && lastName != cur.LastName {
		updated.LastName = lastName
		changed = append(changed, "last name")
	}
	if username != "" && username != cur.Username {
		updated.Username = username
		changed = append(changed, "username")
	}
	if password != "" && password != cur.Password {
		updated.UpdatePassword(password)
		changed = append(changed, "password")
	}
	updated.UpdatePermissions(employee.Mask(hr, management))
	if updated.Permissions != cur.Permissions {
		changed = append(changed, "permissions")
	}

	if len(changed) == 0 {
		c.Notify(fmt.Sprintf("No changes to %s", cur.Summary()))
		return To(Menu), nil
	}

	if err := dir.Update(&updated); err != nil {
		c.Notify(fmt.Sprintf("Employee was not updated: %v", err))
		return To(Menu), nil
	}

	detail := strings.Join(changed, ", ")
	c.Record(audit.ActionEdit, cur, detail)
	c.Notify(fmt.Sprintf("Updated %s (%s)", cur.Summary(), detail))
	return To(Menu), nil
}
