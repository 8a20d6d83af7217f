package ranker

import "github.com/jakechorley/room-ranker/pkg/core/model"

// Fixture rooms mirroring the demo scenario
var (
	room101 = model.Room{ID: 101, HasOutlets: true, HasWindows: false, Category: model.CategoryLecture, HasPrinter: false, Desk: model.DeskSmall, Building: "Building B"}
	room102 = model.Room{ID: 102, HasOutlets: true, HasWindows: true, Category: model.CategoryLecture, HasPrinter: false, Desk: model.DeskLarge, Building: "Building A"}
	room103 = model.Room{ID: 103, HasOutlets: false, HasWindows: true, Category: model.CategoryLab, HasPrinter: true, Desk: model.DeskTable, Building: "Building C"}
	room104 = model.Room{ID: 104, HasOutlets: true, HasWindows: false, Category: model.CategoryLecture, HasPrinter: true, Desk: model.DeskSmall, Building: "Building C"}
	room105 = model.Room{ID: 105, HasOutlets: false, HasWindows: false, Category: model.CategoryClassroom, HasPrinter: true, Desk: model.DeskLarge, Building: "Building B"}
	room106 = model.Room{ID: 106, HasOutlets: true, HasWindows: true, Category: model.CategoryClassroom, HasPrinter: false, Desk: model.DeskSmall, Building: "Building A"}
)

func demoInput(variety int) Input {
	return Input{
		Candidates: []model.Room{room101, room102, room103, room104, room105, room106},
		ImportanceOrder: []Attribute{
			AttributeWindows,
			AttributeOutlets,
			AttributeTableType,
			AttributeClassType,
			AttributePrinter,
		},
		Preferences: Preferences{
			Outlets:  true,
			Windows:  false,
			Category: model.CategoryLecture,
			Printer:  true,
			Desk:     model.DeskSmall,
		},
		PreferredBuilding: "Building B",
		History: []model.Room{
			room101, room101, room102, room101, room105,
			room104, room103, room106, room102, room101,
		},
		Variety: variety,
	}
}

func roomIDs(scored []ScoredRoom) []int {
	ids := make([]int, len(scored))
	for i, s := range scored {
		ids[i] = s.Room.ID
	}
	return ids
}

// neutralHistory returns HistorySize copies of a room that triggers no
// history weight adjustment
func neutralHistory() []model.Room {
	mixed := []model.Room{
		{HasOutlets: true, HasWindows: true, HasPrinter: true, Category: model.CategoryLab, Desk: model.DeskSmall, Building: "X"},
		{HasOutlets: false, HasWindows: false, HasPrinter: false, Category: model.CategoryLecture, Desk: model.DeskLarge, Building: "X"},
	}
	history := make([]model.Room, 0, HistorySize)
	for i := 0; i < HistorySize; i++ {
		history = append(history, mixed[i%2])
	}
	return history
}
