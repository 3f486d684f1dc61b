package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// AppConfig holds the calculator's configuration settings.
type AppConfig struct {
	Catalog   CatalogConfig   `yaml:"catalog"`
	Character CharacterConfig `yaml:"character"`
	Output    OutputConfig    `yaml:"output"`
}

// CatalogConfig locates the skill and power catalogs.
type CatalogConfig struct {
	SkillsPath string `yaml:"skills_path" env:"AVATAR_SKILLS_PATH"`
	PowersPath string `yaml:"powers_path" env:"AVATAR_POWERS_PATH"`
}

// CharacterConfig holds the defaults for new characters.
type CharacterConfig struct {
	// CampaignLimit is the point limit of a new character (default: 100).
	CampaignLimit int `yaml:"campaign_limit" env:"AVATAR_CAMPAIGN_LIMIT"`

	// Icon is the avatar icon of a new character.
	Icon string `yaml:"icon" env:"AVATAR_ICON"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color enables good/bad stuff colouring on the text sheet.
	Color bool `yaml:"color" env:"AVATAR_COLOR"`
}

// DefaultConfig returns an AppConfig pointing at the bundled catalogs.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Catalog: CatalogConfig{
			SkillsPath: "data/skills.yaml",
			PowersPath: "data/powers.yaml",
		},
		Character: CharacterConfig{
			CampaignLimit: 100,
			Icon:          "ei_light",
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file, then applies AVATAR_*
// environment overrides. A missing file means defaults.
func LoadConfig(path string) (*AppConfig, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return config, err
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return DefaultConfig(), fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := ParseEnv(config); err != nil {
		return config, err
	}

	return config, nil
}

// ParseEnv overlays environment variables onto target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
