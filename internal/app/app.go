package app

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/notepid/employee_directory/internal/audit"
	"github.com/notepid/employee_directory/internal/directory"
	"github.com/notepid/employee_directory/internal/employee"
	"github.com/notepid/employee_directory/internal/screen"
	"github.com/notepid/employee_directory/internal/terminal"
)

// Recorder stores activity log entries.
type Recorder interface {
	Record(ev audit.Event) error
}

// Options holds the settings the controller needs from configuration.
type Options struct {
	HeaderWidth int
}

type factory func(t screen.Target) screen.Screen

// App owns the directory, the logged-in identity and the screen registry,
// and runs the navigation loop. It is driven by a single goroutine.
type App struct {
	term     *terminal.Terminal
	dir      *directory.Directory
	recorder Recorder
	opts     Options

	sessionID string
	current   *employee.Employee
	notice    string

	screens map[string]factory
	active  screen.Screen
}

// New creates an application. recorder may be nil to disable the
// activity log.
func New(term *terminal.Terminal, dir *directory.Directory, recorder Recorder, opts Options) *App {
	a := &App{
		term:      term,
		dir:       dir,
		recorder:  recorder,
		opts:      opts,
		sessionID: uuid.NewString(),
	}
	a.loadScreens()
	return a
}

func (a *App) loadScreens() {
	a.screens = map[string]factory{
		screen.Login: func(screen.Target) screen.Screen { return screen.LoginScreen{} },
		screen.Menu:  func(screen.Target) screen.Screen { return screen.MenuScreen{} },
		screen.List: func(t screen.Target) screen.Screen {
			return &screen.ListScreen{Seeded: t.Seeded, Query: t.Query, Results: t.Results}
		},
		screen.Remove: func(screen.Target) screen.Screen { return &screen.ListScreen{RemoveMode: true} },
		screen.Search: func(screen.Target) screen.Screen { return screen.SearchScreen{} },
		screen.Add:    func(screen.Target) screen.Screen { return screen.AddScreen{} },
		screen.Edit: func(t screen.Target) screen.Screen {
			return &screen.EditScreen{Employee: t.Employee}
		},
		screen.File: func(t screen.Target) screen.Screen { return &screen.FileScreen{Employee: t.Employee} },
	}
}

// Run shows the login screen and follows navigation until the menu exit
// is chosen or input is closed.
func (a *App) Run() error {
	if !a.NavigateTo(screen.To(screen.Login)) {
		return errors.New("login screen not registered")
	}

	for {
		next, err := screen.Display(a.active, a)
		if err != nil {
			if errors.Is(err, terminal.ErrInputClosed) {
				log.Printf("Input closed, leaving %s screen", a.active.Name())
				return nil
			}
			return err
		}

		if next.Name == screen.Exit {
			a.term.SendLn("Goodbye!")
			return nil
		}
		if !a.NavigateTo(next) {
			log.Printf("Unknown screen %q, returning to menu", next.Name)
			a.NavigateTo(screen.To(screen.Menu))
		}
	}
}

// NavigateTo makes the screen for t active. A stay target keeps the
// active screen. Screens that need a login fall back to the login screen.
// It returns false when no screen is registered under t.Name.
func (a *App) NavigateTo(t screen.Target) bool {
	if t.IsStay() && a.active != nil {
		return true
	}

	if t.Name != screen.Login && a.current == nil {
		t = screen.To(screen.Login)
	}
	if t.Name == screen.Edit && t.Employee == nil {
		return false
	}

	f, ok := a.screens[t.Name]
	if !ok {
		return false
	}
	a.active = f(t)
	return true
}

// Active returns the screen that will be displayed next.
func (a *App) Active() screen.Screen {
	return a.active
}

// SessionID identifies this run in the activity log.
func (a *App) SessionID() string {
	return a.sessionID
}

// Terminal implements screen.Context.
func (a *App) Terminal() *terminal.Terminal {
	return a.term
}

// Directory implements screen.Context.
func (a *App) Directory() *directory.Directory {
	return a.dir
}

// HeaderWidth implements screen.Context.
func (a *App) HeaderWidth() int {
	return a.opts.HeaderWidth
}

// Current returns the logged-in employee, or nil.
func (a *App) Current() *employee.Employee {
	return a.current
}

// Login authenticates against the directory and records the outcome.
func (a *App) Login(username, password string) bool {
	e := a.dir.Authenticate(username, password)
	if e == nil {
		a.record(audit.Event{Action: audit.ActionLoginFailed, Detail: username})
		return false
	}

	a.current = e
	a.dir.SetCurrentID(e.ID)
	log.Printf("Employee %d (%s) logged in", e.ID, e.Username)
	a.Record(audit.ActionLogin, e, "")
	return true
}

// Notify queues a message for the next displayed screen.
func (a *App) Notify(msg string) {
	if a.notice != "" {
		a.notice += "\n" + msg
		return
	}
	a.notice = msg
}

// TakeNotice returns and clears the queued message.
func (a *App) TakeNotice() string {
	msg := a.notice
	a.notice = ""
	return msg
}

// Record adds an activity log entry for an action by the logged-in employee.
func (a *App) Record(action string, target *employee.Employee, detail string) {
	ev := audit.Event{Action: action, Detail: detail}
	if a.current != nil {
		ev.ActorID = a.current.ID
	}
	if target != nil {
		ev.TargetID = target.ID
	}
	a.record(ev)
}

func (a *App) record(ev audit.Event) {
	if a.recorder == nil {
		return
	}
	ev.SessionID = a.sessionID
	if err := a.recorder.Record(ev); err != nil {
		log.Printf("Activity log: %v", err)
	}
}
