package screen

import (
	"fmt"

	"github.com/notepid/employee_directory/internal/audit"
	"github.com/notepid/employee_directory/internal/employee"
)

// ListScreen lists employees and reads an id. In remove mode the chosen
// employee is removed and the list shown again; otherwise the chosen
// profile is opened.
type ListScreen struct {
	RemoveMode bool

	// Seeded lists show Results (from a search) instead of the directory.
	Seeded  bool
	Query   string
	Results []*employee.Employee
}

func (s *ListScreen) Name() string {
	if s.RemoveMode {
		return Remove
	}
	return List
}

func (s *ListScreen) Header(Context) string {
	switch {
	case s.RemoveMode:
		return "Remove Employee"
	case s.Seeded:
		return fmt.Sprintf("Results for %q", s.Query)
	default:
		return "Employees"
	}
}

func (s *ListScreen) Body(Context) string {
	if s.RemoveMode {
		return "***  Insert Id of Employee to Remove  ***\n"
	}
	return "***  Insert Id of Employee to Edit/View  ***\n"
}

// shown returns the employees listed on this display.
func (s *ListScreen) shown(c Context) []*employee.Employee {
	all := s.Results
	if !s.Seeded {
		all = c.Directory().List()
	}

	cur := c.Current()
	out := make([]*employee.Employee, 0, len(all))
	for _, e := range all {
		if s.RemoveMode && cur != nil && e.ID == cur.ID {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *ListScreen) Interact(c Context) (Target, error) {
	term := c.Terminal()
	shown := s.shown(c)

	byID := make(map[int]*employee.Employee, len(shown))
	for _, e := range shown {
		term.SendLn(e.Summary())
		byID[e.ID] = e
	}
	if len(shown) == 0 {
		term.SendLn("No employees found.")
	}
	term.SendLn("")
	term.SendLn("0. Return to Menu")
	term.SendLn("")

	id, err := term.AskInt("Choice", "Please input the id of a listed employee.", func(n int) bool {
		_, ok := byID[n]
		return n == 0 || ok
	})
	if err != nil {
		return Target{}, err
	}

	if id == 0 {
		return To(Menu), nil
	}

	e := byID[id]
	if !s.RemoveMode {
		return ToFile(e), nil
	}

	if c.Directory().RemoveByID(id) {
		c.Record(audit.ActionRemove, e, e.Summary())
		c.Notify(fmt.Sprintf("Removed %s", e.Summary()))
	} else {
		c.Notify(fmt.Sprintf("Could not remove %s", e.Summary()))
	}
	return Stay, nil
}
