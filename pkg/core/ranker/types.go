package ranker

import (
	"math/rand"

	"github.com/jakechorley/room-ranker/pkg/core/model"
)

// Attribute names a room attribute the user can put in their importance order
type Attribute string

const (
	AttributeOutlets   Attribute = "outlets"
	AttributeWindows   Attribute = "windows"
	AttributeClassType Attribute = "classType"
	AttributePrinter   Attribute = "printer"
	AttributeTableType Attribute = "tableType"
)

// DefaultImportanceOrder returns every orderable attribute in canonical order
func DefaultImportanceOrder() []Attribute {
	return []Attribute{
		AttributeOutlets,
		AttributeWindows,
		AttributeClassType,
		AttributePrinter,
		AttributeTableType,
	}
}

func (a Attribute) IsValid() bool {
	switch a {
	case AttributeOutlets, AttributeWindows, AttributeClassType, AttributePrinter, AttributeTableType:
		return true
	}
	return false
}

// Preferences are the attribute values the user would like their room to have
type Preferences struct {
	Outlets  bool
	Windows  bool
	Printer  bool
	Category model.RoomCategory
	Desk     model.DeskType
}

// Input holds everything needed for a single ranking
type Input struct {
	// Candidates are the free rooms to rank. Order is irrelevant.
	Candidates []model.Room

	// ImportanceOrder lists the five attributes, first is most important
	ImportanceOrder []Attribute

	Preferences Preferences

	// PreferredBuilding may be empty
	PreferredBuilding string

	// History is the user's last HistorySize rooms
	History []model.Room

	// Variety ranges from 0 (routine, deterministic) to MaxVariety (most random)
	Variety int

	// Rand is the source of the variety perturbation. When nil a generator
	// seeded from the wall clock is created for the call.
	Rand *rand.Rand
}

// ScoredRoom is one entry of a ranking
type ScoredRoom struct {
	// Score is the final score after the variety perturbation
	Score float64

	// BaseScore is the score before the variety perturbation
	BaseScore float64

	// OriginalRank is the 1-based position in the pre-randomization ordering
	OriginalRank int

	Room model.Room
}

// Weights holds the per-attribute weights used when matching a room against
// the ideal room
type Weights struct {
	Outlets   float64
	Windows   float64
	ClassType float64
	Printer   float64
	TableType float64
	Building  float64
}

// HistoryCounts is the frequency signal extracted from the history window
type HistoryCounts struct {
	Outlets   int
	Windows   int
	Printer   int
	Lab       int
	Lecture   int
	LargeDesk int
	SmallDesk int
}
