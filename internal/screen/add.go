package screen

import (
	"fmt"

	"github.com/notepid/employee_directory/internal/audit"
	"github.com/notepid/employee_directory/internal/employee"
)

// AddScreen collects a new employee and stores it.
type AddScreen struct{}

func (AddScreen) Name() string { return Add }

func (AddScreen) Header(Context) string { return "Add Employee" }

func (AddScreen) Body(Context) string { return "***  Answer prompts to add new employee.  ***\n" }

func (AddScreen) Interact(c Context) (Target, error) {
	term := c.Terminal()
	dir := c.Directory()

	firstName, err := term.Ask("First Name")
	if err != nil {
		return Target{}, err
	}
	lastName, err := term.Ask("Last Name")
	if err != nil {
		return Target{}, err
	}
	username, err := term.AskUntil("Username", func(s string) string {
		switch {
		case s == "":
			return "Username must not be empty."
		case !dir.IsUsernameUnique(s, 0):
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
	hr, err := term.AskBinary("Is employee hr? (0: no, 1: yes)")
	if err != nil {
		return Target{}, err
	}
	management, err := term.AskBinary("Is employee management? (0: no, 1: yes)")
	if err != nil {
		return Target{}, err
	}

	e := employee.New(firstName, lastName, username, password, employee.Mask(hr, management))
	if err := dir.Add(e); err != nil {
		c.Notify(fmt.Sprintf("Employee was not added: %v", err))
		return To(Menu), nil
	}

	c.Record(audit.ActionAdd, e, e.Summary())
	c.Notify(fmt.Sprintf("Added %s", e.Summary()))
	return To(Menu), nil
}
