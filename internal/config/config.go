package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/room-ranker/pkg/core/availability"
)

// ConfigFileName is the file searched for when no explicit path is given
const ConfigFileName = "room_ranker_config.yaml"

// Preferences are the attribute values the user would like
type Preferences struct {
	Outlets      bool   `yaml:"outlets"`
	Windows      bool   `yaml:"windows"`
	RoomCategory string `yaml:"roomCategory" validate:"required,oneof=Lecture Lab Classroom"`
	Printer      bool   `yaml:"printer"`
	DeskType     string `yaml:"deskType" validate:"required,oneof=SmallDesk LargeDesk Table"`
}

// Room is a catalog entry
type Room struct {
	ID           int    `yaml:"id"`
	Outlets      bool   `yaml:"outlets"`
	Windows      bool   `yaml:"windows"`
	RoomCategory string `yaml:"roomCategory" validate:"required,oneof=Lecture Lab Classroom"`
	Printer      bool   `yaml:"printer"`
	DeskType     string `yaml:"deskType" validate:"required,oneof=SmallDesk LargeDesk Table"`
	Building     string `yaml:"building" validate:"required"`
	FreeOn       string `yaml:"freeOn,omitempty"`
}

// Config represents the application configuration
type Config struct {
	PreferredBuilding string      `yaml:"preferredBuilding,omitempty"`
	Variety           int         `yaml:"variety" validate:"min=0,max=4"`
	Seed              *int64      `yaml:"seed,omitempty"`
	ImportanceOrder   []string    `yaml:"importanceOrder" validate:"len=5,unique,dive,oneof=outlets windows classType printer tableType"`
	Preferences       Preferences `yaml:"preferences"`
	History           []int       `yaml:"history" validate:"len=10"`
	Rooms             []Room      `yaml:"rooms" validate:"required,min=1,unique=ID,dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from room_ranker_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the availability rules and
// the history references
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	known := make(map[int]bool, len(cfg.Rooms))
	for i, room := range cfg.Rooms {
		if err := availability.ValidateRule(room.FreeOn); err != nil {
			return fmt.Errorf("rooms[%d]: %w", i, err)
		}
		known[room.ID] = true
	}

	for i, id := range cfg.History {
		if !known[id] {
			return fmt.Errorf("history[%d] references unknown room %d", i, id)
		}
	}

	return nil
}

// findConfigFile searches for room_ranker_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, ConfigFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
