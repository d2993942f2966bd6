package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridsmith/internal/app/studio"
	"github.com/alexisbeaulieu97/gridsmith/internal/config"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/design"
	"github.com/alexisbeaulieu97/gridsmith/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/gridsmith/internal/logger"
	"github.com/alexisbeaulieu97/gridsmith/internal/project"
)

// AppContext bundles the settings and services shared by every command.
type AppContext struct {
	Settings    *config.Settings
	Log         *logger.Logger
	Publisher   *events.LoggingPublisher
	ProjectPath string
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	settings, err := config.LoadSettings(flags.configPath)
	if err != nil {
		return newCommandError("load settings", "reading gridsmith settings", err,
			"Fix the settings file or unset the GRIDSMITH_* environment variables.")
	}

	level := settings.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: settings.HumanLogs,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return newCommandError("create logger", "configuring logging", err, "Use one of trace, debug, info, warn or error.")
	}

	a.Settings = settings
	a.Log = log.WithFields(logger.Fields{"command": cmd.Name()})
	a.Publisher = events.NewLoggingPublisher(a.Log)
	a.ProjectPath = flags.project
	if a.ProjectPath == "" {
		a.ProjectPath = settings.Project
	}
	return nil
}

// studioOptions wires settings, logging and events into a session.
func (a *AppContext) studioOptions() []studio.Option {
	opts := []studio.Option{
		studio.WithLogger(a.Log),
		studio.WithPublisher(a.Publisher),
		studio.WithStoreOptions(design.WithHistoryDepth(a.Settings.HistoryDepth)),
	}
	if a.Settings.Seed != 0 {
		opts = append(opts, studio.WithRandomSource(color.NewSource(a.Settings.Seed)))
	}
	return opts
}

// open resumes the session stored in the project file.
func (a *AppContext) open(operation string) (*studio.Service, error) {
	svc, err := project.Open(a.ProjectPath, a.studioOptions()...)
	if err != nil {
		if errors.Is(err, project.ErrNotExist) {
			return nil, newCommandError(operation, fmt.Sprintf("opening project %s", a.ProjectPath), err,
				"Run 'gridsmith new' to create a project or pass --project.")
		}
		return nil, newCommandError(operation, fmt.Sprintf("opening project %s", a.ProjectPath), err,
			"Fix the project file or recreate it with 'gridsmith new --force'.")
	}
	return svc, nil
}

// save writes the session back to the project file.
func (a *AppContext) save(operation string, svc *studio.Service) error {
	if err := project.Save(a.ProjectPath, svc.State()); err != nil {
		return newCommandError(operation, fmt.Sprintf("saving project %s", a.ProjectPath), err,
			"Check that the project directory is writable.")
	}
	a.Log.Debug("project saved", logger.Fields{"path": a.ProjectPath})
	return nil
}

// mutate opens the project, applies fn and saves the result when fn succeeds.
func (a *AppContext) mutate(operation string, fn func(*studio.Service) error) error {
	svc, err := a.open(operation)
	if err != nil {
		return err
	}
	if err := fn(svc); err != nil {
		return err
	}
	return a.save(operation, svc)
}
