package services

import (
	"github.com/jakechorley/room-ranker/pkg/core/model"
	"github.com/jakechorley/room-ranker/pkg/core/ranker"
)

// DemoVariety is the variety the demo scenario runs with unless overridden
const DemoVariety = 4

// Scenario is a catalog plus a request against it
type Scenario struct {
	Catalog []CatalogRoom
	Request RecommendationRequest
}

// DemoScenario returns the fixed demonstration: six rooms, one preference
// set and a ten-room history
func DemoScenario() Scenario {
	rooms := []model.Room{
		{ID: 101, HasOutlets: true, HasWindows: false, Category: model.CategoryLecture, HasPrinter: false, Desk: model.DeskSmall, Building: "Building B"},
		{ID: 102, HasOutlets: true, HasWindows: true, Category: model.CategoryLecture, HasPrinter: false, Desk: model.DeskLarge, Building: "Building A"},
		{ID: 103, HasOutlets: false, HasWindows: true, Category: model.CategoryLab, HasPrinter: true, Desk: model.DeskTable, Building: "Building C"},
		{ID: 104, HasOutlets: true, HasWindows: false, Category: model.CategoryLecture, HasPrinter: true, Desk: model.DeskSmall, Building: "Building C"},
		{ID: 105, HasOutlets: false, HasWindows: false, Category: model.CategoryClassroom, HasPrinter: true, Desk: model.DeskLarge, Building: "Building B"},
		{ID: 106, HasOutlets: true, HasWindows: true, Category: model.CategoryClassroom, HasPrinter: false, Desk: model.DeskSmall, Building: "Building A"},
	}

	catalog := make([]CatalogRoom, len(rooms))
	for i, room := range rooms {
		catalog[i] = CatalogRoom{Room: room}
	}

	return Scenario{
		Catalog: catalog,
		Request: RecommendationRequest{
			Preferences: ranker.Preferences{
				Outlets:  true,
				Windows:  false,
				Category: model.CategoryLecture,
				Printer:  true,
				Desk:     model.DeskSmall,
			},
			ImportanceOrder: []ranker.Attribute{
				ranker.AttributeWindows,
				ranker.AttributeOutlets,
				ranker.AttributeTableType,
				ranker.AttributeClassType,
				ranker.AttributePrinter,
			},
			PreferredBuilding: "Building B",
			HistoryIDs:        []int{101, 101, 102, 101, 105, 104, 103, 106, 102, 101},
			Variety:           DemoVariety,
		},
	}
}
