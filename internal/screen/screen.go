package screen

import (
	"github.com/notepid/employee_directory/internal/directory"
	"github.com/notepid/employee_directory/internal/employee"
	"github.com/notepid/employee_directory/internal/terminal"
)

// Screen names.
const (
	Login  = "login"
	Menu   = "menu"
	List   = "list"
	Remove = "remove"
	Search = "search"
	Add    = "add"
	Edit   = "edit"
	File   = "file"

	// Exit ends the application.
	Exit = "exit"
)

// Target is a navigation decision returned by a screen. The zero Target
// means "stay": the same screen is displayed again.
type Target struct {
	Name string

	// Employee is the record shown by File or changed by Edit. Nil on File
	// means the logged-in employee.
	Employee *employee.Employee

	// Seeded List targets show Results instead of the whole directory.
	Seeded  bool
	Query   string
	Results []*employee.Employee
}

// Stay redisplays the active screen.
var Stay = Target{}

// To navigates to a named screen.
func To(name string) Target {
	return Target{Name: name}
}

// ToFile shows e's profile.
func ToFile(e *employee.Employee) Target {
	return Target{Name: File, Employee: e}
}

// ToEdit opens the edit prompts for e.
func ToEdit(e *employee.Employee) Target {
	return Target{Name: Edit, Employee: e}
}

// ToResults shows a list limited to the results of a search.
func ToResults(query string, results []*employee.Employee) Target {
	return Target{Name: List, Seeded: true, Query: query, Results: results}
}

// IsStay reports whether t redisplays the active screen.
func (t Target) IsStay() bool {
	return t.Name == ""
}

// Context is the part of the application a screen may use during one
// display. Screens never keep it beyond that.
type Context interface {
	Terminal() *terminal.Terminal
	Directory() *directory.Directory
	HeaderWidth() int

	// Current returns the logged-in employee, or nil before login.
	Current() *employee.Employee

	// Login authenticates and, on success, becomes the logged-in identity.
	Login(username, password string) bool

	// Notify queues a message for the next displayed screen.
	Notify(msg string)
	TakeNotice() string

	// Record notes a change to the directory in the activity log.
	Record(action string, target *employee.Employee, detail string)
}

// Screen is one interactive unit of the console.
type Screen interface {
	Name() string
	Header(c Context) string
	Body(c Context) string
	Interact(c Context) (Target, error)
}

// Display clears the console, renders the header box, any pending notice
// and the body, then runs the interactive prompts.
func Display(s Screen, c Context) (Target, error) {
	term := c.Terminal()

	term.Cls()
	term.Send(terminal.Header(s.Header(c), c.HeaderWidth()))
	if msg := c.TakeNotice(); msg != "" {
		term.SendLn(msg)
		term.SendLn("")
	}
	if body := s.Body(c); body != "" {
		term.SendLn(body)
	}

	return s.Interact(c)
}
