package ranker

// Ranking constants
const (
	// HistorySize is the number of recent rooms the ranker expects
	HistorySize = 10

	// MaxVariety is the highest variety level. It also divides the variety in
	// the history bonus term.
	MaxVariety = 4

	// WeightBuilding is the fixed weight of a preferred building match. It is
	// not affected by the importance order or history.
	WeightBuilding = 1

	// HabitualThreshold is the history count at or above which an attribute
	// value is considered habitual
	HabitualThreshold = 7

	// RareThreshold is the history count at or below which an attribute value
	// is considered rare
	RareThreshold = 3

	// HistoryBoost is added to an attribute weight when the ideal room agrees
	// with the user's habits
	HistoryBoost = 1.0

	// HistoryShrink divides an attribute weight when the ideal room goes
	// against the user's habits
	HistoryShrink = 1.5

	// VarietyBase is raised to the variety level to scale the random
	// perturbation (1.8^4 is roughly 10.5)
	VarietyBase = 1.8
)

// AttributeWeights assigns each attribute its position in the importance
// order plus one. The first listed attribute therefore gets the lowest weight.
// The order must already be validated.
func AttributeWeights(order []Attribute) Weights {
	w := Weights{Building: WeightBuilding}

	for i, attr := range order {
		weight := float64(i + 1)
		switch attr {
		case AttributeOutlets:
			w.Outlets = weight
		case AttributeWindows:
			w.Windows = weight
		case AttributeClassType:
			w.ClassType = weight
		case AttributePrinter:
			w.Printer = weight
		case AttributeTableType:
			w.TableType = weight
		}
	}

	return w
}

// nudge boosts a weight when the ideal room agrees with the history signal
// and shrinks it otherwise
func nudge(weight float64, agrees bool) float64 {
	if agrees {
		return weight + HistoryBoost
	}
	return weight / HistoryShrink
}
