package app

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/notepid/employee_directory/internal/audit"
	"github.com/notepid/employee_directory/internal/config"
	"github.com/notepid/employee_directory/internal/db"
	"github.com/notepid/employee_directory/internal/directory"
	"github.com/notepid/employee_directory/internal/employee"
	"github.com/notepid/employee_directory/internal/logging"
)

// App holds what the operator console works on: the same employee
// directory and activity log the console program uses.
type App struct {
	ConfigPath string
	Config     *config.Config

	Directory *directory.Directory
	DB        *db.DB      // nil when the activity log is disabled
	Activity  *audit.Repo // nil when the activity log is disabled

	SessionID string
}

func New(configPath string) (*App, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	closeLog, err := logging.Setup(cfg.Logging.File)
	if err != nil {
		return nil, nil, err
	}

	dir, err := directory.Load(cfg.Storage.Dir, directory.Seed{
		Username:  cfg.Bootstrap.Username,
		Password:  cfg.Bootstrap.Password,
		FirstName: cfg.Bootstrap.FirstName,
		LastName:  cfg.Bootstrap.LastName,
	})
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("load employees: %w", err)
	}

	a := &App{
		ConfigPath: configPath,
		Config:     cfg,
		Directory:  dir,
		SessionID:  "admin-" + uuid.NewString(),
	}

	if database := db.OpenOptional(cfg.Audit.Database); database != nil {
		a.DB = database
		a.Activity = audit.NewRepo(database.DB)
	}

	cleanup := func() {
		if a.DB != nil {
			_ = a.DB.Close()
		}
		closeLog()
	}

	return a, cleanup, nil
}

// Record adds an activity log entry for a change made from the console.
// Operator changes have no acting employee.
func (a *App) Record(action string, target *employee.Employee, detail string) {
	if a.Activity == nil {
		return
	}
	ev := audit.Event{SessionID: a.SessionID, Action: action, Detail: detail}
	if target != nil {
		ev.TargetID = target.ID
	}
	if err := a.Activity.Record(ev); err != nil {
		log.Printf("Activity log: %v", err)
	}
}
