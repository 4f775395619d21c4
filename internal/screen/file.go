package screen

import "github.com/notepid/employee_directory/internal/employee"

// FileScreen shows one employee's profile. HR viewers may open the edit
// prompts for anyone but themselves.
type FileScreen struct {
	// Employee is the profile shown; nil shows the logged-in employee.
	Employee *employee.Employee
}

func (s *FileScreen) Name() string { return File }

func (s *FileScreen) target(c Context) *employee.Employee {
	if s.Employee != nil {
		return s.Employee
	}
	return c.Current()
}

func (s *FileScreen) own(c Context) bool {
	cur := c.Current()
	return cur != nil && s.target(c).ID == cur.ID
}

func (s *FileScreen) canEdit(c Context) bool {
	cur := c.Current()
	return cur != nil && !s.own(c) && cur.HasPermission(employee.HR)
}

func (s *FileScreen) Header(c Context) string {
	if s.own(c) {
		return "Your File"
	}
	return "Employee File"
}

func (s *FileScreen) Body(c Context) string {
	return s.target(c).Profile()
}

func (s *FileScreen) Interact(c Context) (Target, error) {
	term := c.Terminal()
	editable := s.canEdit(c)

	term.SendLn("0. Return to Menu")
	if editable {
		term.SendLn("1. Edit Employee")
	}
	term.SendLn("")

	choice, err := term.AskInt("Choice", "Please input a valid option.", func(n int) bool {
		return n == 0 || (n == 1 && editable)
	})
	if err != nil {
		return Target{}, err
	}

	if choice == 1 {
		return ToEdit(s.target(c)), nil
	}
	return To(Menu), nil
}
