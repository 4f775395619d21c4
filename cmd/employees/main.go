package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/notepid/employee_directory/internal/app"
	"github.com/notepid/employee_directory/internal/audit"
	"github.com/notepid/employee_directory/internal/config"
	"github.com/notepid/employee_directory/internal/db"
	"github.com/notepid/employee_directory/internal/directory"
	"github.com/notepid/employee_directory/internal/logging"
	"github.com/notepid/employee_directory/internal/terminal"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := logging.Setup(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Printf("Starting employee directory (storage: %s)", cfg.Storage.Dir)

	var recorder app.Recorder
	if database := db.OpenOptional(cfg.Audit.Database); database != nil {
		defer database.Close()
		recorder = audit.NewRepo(database.DB)
	}

	dir, err := directory.Load(cfg.Storage.Dir, directory.Seed{
		Username:  cfg.Bootstrap.Username,
		Password:  cfg.Bootstrap.Password,
		FirstName: cfg.Bootstrap.FirstName,
		LastName:  cfg.Bootstrap.LastName,
	})
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}

	term := terminal.New(os.Stdin, os.Stdout, cfg.Display.ANSI)
	a := app.New(term, dir, recorder, app.Options{HeaderWidth: cfg.Display.HeaderWidth})

	if err := a.Run(); err != nil {
		return err
	}

	log.Printf("Session %s ended", a.SessionID())
	return nil
}
