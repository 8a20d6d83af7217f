package services

import (
	"fmt"

	"github.com/jakechorley/room-ranker/internal/config"
	"github.com/jakechorley/room-ranker/pkg/core/model"
	"github.com/jakechorley/room-ranker/pkg/core/ranker"
)

// CatalogFromConfig converts the configured rooms into catalog entries
func CatalogFromConfig(cfg *config.Config) ([]CatalogRoom, error) {
	catalog := make([]CatalogRoom, 0, len(cfg.Rooms))

	for _, r := range cfg.Rooms {
		room, err := model.NewRoom(r.ID, r.Outlets, r.Windows, r.RoomCategory, r.Printer, r.DeskType, r.Building)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog room: %w", err)
		}
		catalog = append(catalog, CatalogRoom{Room: room, FreeOn: r.FreeOn})
	}

	return catalog, nil
}

// RequestFromConfig builds a recommendation request from the configured
// profile. Date is left unset.
func RequestFromConfig(cfg *config.Config) (RecommendationRequest, error) {
	category, err := model.ParseRoomCategory(cfg.Preferences.RoomCategory)
	if err != nil {
		return RecommendationRequest{}, fmt.Errorf("invalid preferences: %w", err)
	}
	desk, err := model.ParseDeskType(cfg.Preferences.DeskType)
	if err != nil {
		return RecommendationRequest{}, fmt.Errorf("invalid preferences: %w", err)
	}

	order := make([]ranker.Attribute, len(cfg.ImportanceOrder))
	for i, name := range cfg.ImportanceOrder {
		order[i] = ranker.Attribute(name)
	}

	history := make([]int, len(cfg.History))
	copy(history, cfg.History)

	return RecommendationRequest{
		Preferences: ranker.Preferences{
			Outlets:  cfg.Preferences.Outlets,
			Windows:  cfg.Preferences.Windows,
			Printer:  cfg.Preferences.Printer,
			Category: category,
			Desk:     desk,
		},
		ImportanceOrder:   order,
		PreferredBuilding: cfg.PreferredBuilding,
		HistoryIDs:        history,
		Variety:           cfg.Variety,
		Seed:              cfg.Seed,
	}, nil
}
