package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		PreferredBuilding: "Building B",
		Variety:           2,
		ImportanceOrder:   []string{"windows", "outlets", "tableType", "classType", "printer"},
		Preferences: Preferences{
			Outlets:      true,
			RoomCategory: "Lecture",
			Printer:      true,
			DeskType:     "SmallDesk",
		},
		History: []int{101, 101, 102, 101, 102, 101, 102, 101, 102, 101},
		Rooms: []Room{
			{ID: 101, Outlets: true, RoomCategory: "Lecture", DeskType: "SmallDesk", Building: "Building B"},
			{ID: 102, Windows: true, RoomCategory: "Lab", DeskType: "Table", Building: "Building A", FreeOn: "FREQ=WEEKLY;BYDAY=MO,WE"},
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_EmptyPreferredBuilding(t *testing.T) {
	cfg := validConfig()
	cfg.PreferredBuilding = ""
	assert.NoError(t, Validate(cfg))
}

func TestValidate_StructErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"variety too high", func(cfg *Config) { cfg.Variety = 5 }},
		{"variety negative", func(cfg *Config) { cfg.Variety = -1 }},
		{"order too short", func(cfg *Config) { cfg.ImportanceOrder = cfg.ImportanceOrder[:4] }},
		{"order duplicate", func(cfg *Config) { cfg.ImportanceOrder[4] = "windows" }},
		{"order unknown key", func(cfg *Config) { cfg.ImportanceOrder[4] = "building" }},
		{"unknown preferred category", func(cfg *Config) { cfg.Preferences.RoomCategory = "Gym" }},
		{"unknown preferred desk", func(cfg *Config) { cfg.Preferences.DeskType = "BigDesk" }},
		{"short history", func(cfg *Config) { cfg.History = cfg.History[:9] }},
		{"no rooms", func(cfg *Config) { cfg.Rooms = nil }},
		{"room without building", func(cfg *Config) { cfg.Rooms[0].Building = "" }},
		{"room unknown desk", func(cfg *Config) { cfg.Rooms[1].DeskType = "Bench" }},
		{"duplicate room id", func(cfg *Config) { cfg.Rooms[1].ID = 101 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidate_ZeroRoomID(t *testing.T) {
	cfg := validConfig()
	cfg.Rooms[0].ID = 0
	for i, id := range cfg.History {
		if id == 101 {
			cfg.History[i] = 0
		}
	}

	assert.NoError(t, Validate(cfg))
}

func TestValidate_UnanchoredRRule(t *testing.T) {
	cfg := validConfig()
	cfg.Rooms[1].FreeOn = "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rooms[1]")
	assert.Contains(t, err.Error(), "DTSTART")
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := validConfig()
	cfg.Rooms[1].FreeOn = "INVALID_RRULE_SYNTAX"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rooms[1]")
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestValidate_UnknownHistoryRoom(t *testing.T) {
	cfg := validConfig()
	cfg.History[9] = 999

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "history[9] references unknown room 999")
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validYAML := `
preferredBuilding: "Building B"
variety: 3
seed: 42
importanceOrder: [windows, outlets, tableType, classType, printer]
preferences:
  outlets: true
  windows: false
  roomCategory: Lecture
  printer: true
  deskType: SmallDesk
history: [101, 101, 102, 101, 102, 101, 102, 101, 102, 101]
rooms:
  - id: 101
    outlets: true
    windows: false
    roomCategory: Lecture
    printer: false
    deskType: SmallDesk
    building: "Building B"
  - id: 102
    outlets: true
    windows: true
    roomCategory: Lecture
    printer: false
    deskType: LargeDesk
    building: "Building A"
    freeOn: "FREQ=WEEKLY;BYDAY=MO,WE"
`

	err := os.WriteFile(configPath, []byte(validYAML), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "Building B", cfg.PreferredBuilding)
	assert.Equal(t, 3, cfg.Variety)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, []string{"windows", "outlets", "tableType", "classType", "printer"}, cfg.ImportanceOrder)
	assert.True(t, cfg.Preferences.Outlets)
	assert.False(t, cfg.Preferences.Windows)
	assert.Equal(t, "Lecture", cfg.Preferences.RoomCategory)
	assert.True(t, cfg.Preferences.Printer)
	assert.Equal(t, "SmallDesk", cfg.Preferences.DeskType)
	assert.Len(t, cfg.History, 10)

	require.Len(t, cfg.Rooms, 2)
	assert.Equal(t, 102, cfg.Rooms[1].ID)
	assert.Equal(t, "LargeDesk", cfg.Rooms[1].DeskType)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO,WE", cfg.Rooms[1].FreeOn)
	assert.Empty(t, cfg.Rooms[0].FreeOn)
}

func TestLoadFromPath_NoSeed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "no_seed.yaml")

	yamlData := `
variety: 0
importanceOrder: [outlets, windows, classType, printer, tableType]
preferences:
  roomCategory: Lab
  deskType: Table
history: [1, 1, 1, 1, 1, 1, 1, 1, 1, 1]
rooms:
  - id: 1
    roomCategory: Lab
    deskType: Table
    building: "Science"
`

	err := os.WriteFile(configPath, []byte(yamlData), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Nil(t, cfg.Seed)
	assert.Empty(t, cfg.PreferredBuilding)
}

func TestLoadFromPath_InvalidRRule(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_rrule.yaml")

	invalidConfig := `
importanceOrder: [outlets, windows, classType, printer, tableType]
preferences:
  roomCategory: Lab
  deskType: Table
history: [1, 1, 1, 1, 1, 1, 1, 1, 1, 1]
rooms:
  - id: 1
    roomCategory: Lab
    deskType: Table
    building: "Science"
    freeOn: "INVALID_RRULE_SYNTAX"
`

	err := os.WriteFile(configPath, []byte(invalidConfig), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
preferredBuilding: "Building B"
  invalid indentation
variety: 2
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
