package screen

import (
	"fmt"

	"github.com/notepid/employee_directory/internal/employee"
)

// Option is one numbered menu entry.
type Option struct {
	Position int
	Title    string
	Screen   string
}

type catalogEntry struct {
	screen  string
	title   string
	allowed func(e *employee.Employee) bool
}

func canBrowse(e *employee.Employee) bool {
	return e.HasPermission(employee.HR) || e.HasPermission(employee.Management)
}

func isHR(e *employee.Employee) bool {
	return e.HasPermission(employee.HR)
}

var catalog = []catalogEntry{
	{List, "View Employees", canBrowse},
	{Search, "Search Employees", canBrowse},
	{Add, "Add Employee", isHR},
	{Remove, "Remove Employee", isHR},
	{File, "View Your File", func(e *employee.Employee) bool { return e.HasPermission(employee.General) }},
}

// Options returns the menu entries e may use, numbered from 1 in catalog
// order.
func Options(e *employee.Employee) []Option {
	var out []Option
	if e == nil {
		return out
	}
	for _, c := range catalog {
		if !c.allowed(e) {
			continue
		}
		out = append(out, Option{Position: len(out) + 1, Title: c.title, Screen: c.screen})
	}
	return out
}

// MenuScreen is the main menu. Options are rebuilt on every display so
// permission edits take effect immediately.
type MenuScreen struct{}

func (MenuScreen) Name() string { return Menu }

func (MenuScreen) Header(c Context) string {
	if cur := c.Current(); cur != nil {
		return fmt.Sprintf("Welcome %s %s!", cur.FirstName, cur.LastName)
	}
	return "Welcome!"
}

func (MenuScreen) Body(Context) string { return "***  What do you need to do today?  ***\n" }

func (MenuScreen) Interact(c Context) (Target, error) {
	term := c.Terminal()
	options := Options(c.Current())

	for _, o := range options {
		term.SendLn(fmt.Sprintf("%d. %s", o.Position, o.Title))
	}
	term.SendLn("")
	term.SendLn("0. Exit Application")
	term.SendLn("")

	choice, err := term.AskInt("Choice", "Please input a valid option.", func(n int) bool {
		return n >= 0 && n <= len(options)
	})
	if err != nil {
		return Target{}, err
	}

	if choice == 0 {
		return To(Exit), nil
	}
	return To(options[choice-1].Screen), nil
}
