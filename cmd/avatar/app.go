package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/amberesque/internal/character"
	"github.com/lawnchairsociety/amberesque/internal/config"
	"github.com/lawnchairsociety/amberesque/internal/logger"
	"github.com/lawnchairsociety/amberesque/internal/powers"
	"github.com/lawnchairsociety/amberesque/internal/savefile"
	"github.com/lawnchairsociety/amberesque/internal/sheet"
	"github.com/lawnchairsociety/amberesque/internal/skills"
)

// app is the state shared by every command once flags are parsed.
type app struct {
	configPath  string
	loggingPath string
	noColor     bool

	cfg    *config.AppConfig
	skills *skills.Registry
	powers *powers.Registry
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logConfig, err := logger.LoadConfig(a.loggingPath)
	if err != nil {
		return err
	}
	if err := logger.Initialize(logConfig); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	a.cfg, err = config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.noColor {
		a.cfg.Output.Color = false
	}

	a.skills = skills.NewRegistry()
	if err := a.skills.LoadFromYAML(a.cfg.Catalog.SkillsPath); err != nil {
		return fmt.Errorf("failed to load skills: %w", err)
	}
	a.powers = powers.NewRegistry()
	if err := a.powers.LoadFromYAML(a.cfg.Catalog.PowersPath); err != nil {
		return fmt.Errorf("failed to load powers: %w", err)
	}

	logger.Debug("Catalogs loaded", "command", cmd.Name(), "skills", a.skills.Count(), "powers", a.powers.Count())
	return nil
}

func (a *app) catalog() sheet.Catalog {
	return sheet.Catalog{Skills: a.skills, Powers: a.powers}
}

// load reads, migrates and validates a character file.
func (a *app) load(path string) (character.Input, error) {
	in, err := savefile.Load(path)
	if err != nil {
		return character.Input{}, err
	}
	in = savefile.Migrate(in, a.powers)
	if err := character.Validate(in, a.skills, a.powers); err != nil {
		return character.Input{}, fmt.Errorf("%s is not a valid character:\n%w", path, err)
	}
	return in, nil
}

// compute loads path and derives its snapshot.
func (a *app) compute(path string) (character.Snapshot, error) {
	in, err := a.load(path)
	if err != nil {
		return character.Snapshot{}, err
	}
	snap := character.Compute(in)
	if snap.Overspent() {
		logger.Info("Character is overspent", "name", snap.Name, "stuff", snap.Stuff)
	}
	return snap, nil
}
