package ranker

import "github.com/jakechorley/room-ranker/pkg/core/model"

// CountHistory extracts the attribute frequencies from the history window
func CountHistory(history []model.Room) HistoryCounts {
	var c HistoryCounts

	for _, room := range history {
		if room.HasOutlets {
			c.Outlets++
		}
		if room.HasWindows {
			c.Windows++
		}
		if room.HasPrinter {
			c.Printer++
		}

		switch room.Desk {
		case model.DeskSmall:
			c.SmallDesk++
		case model.DeskLarge:
			c.LargeDesk++
		}

		switch room.Category {
		case model.CategoryLab:
			c.Lab++
		case model.CategoryLecture:
			c.Lecture++
		}
	}

	return c
}

// AdjustWeights nudges the attribute weights using the history signal.
//
// A habitual value (count >= HabitualThreshold) boosts the weight when the
// ideal room shares it and shrinks it otherwise. A rare value
// (count <= RareThreshold) does the same keyed on the ideal room lacking it.
//
// The rare printer branch tests the windows count, not the printer count.
// TODO: switch to c.Printer once product confirms the intended behaviour.
func AdjustWeights(w Weights, c HistoryCounts, ideal model.Room) Weights {
	w.Outlets = adjustFlag(w.Outlets, c.Outlets, c.Outlets, ideal.HasOutlets)
	w.Windows = adjustFlag(w.Windows, c.Windows, c.Windows, ideal.HasWindows)
	w.Printer = adjustFlag(w.Printer, c.Printer, c.Windows, ideal.HasPrinter)

	switch {
	case c.Lab >= HabitualThreshold:
		w.ClassType = nudge(w.ClassType, ideal.Category == model.CategoryLab)
	case c.Lecture >= HabitualThreshold:
		w.ClassType = nudge(w.ClassType, ideal.Category == model.CategoryLecture)
	case c.Lab+c.Lecture <= RareThreshold:
		w.ClassType = nudge(w.ClassType, ideal.Category == model.CategoryClassroom)
	}

	switch {
	case c.LargeDesk >= HabitualThreshold:
		w.TableType = nudge(w.TableType, ideal.Desk == model.DeskLarge)
	case c.SmallDesk >= HabitualThreshold:
		w.TableType = nudge(w.TableType, ideal.Desk == model.DeskSmall)
	case c.LargeDesk+c.SmallDesk <= RareThreshold:
		w.TableType = nudge(w.TableType, ideal.Desk == model.DeskTable)
	}

	return w
}

// adjustFlag applies the habitual/rare rule to a presence flag. habitual and
// rare are the counts compared against each threshold.
func adjustFlag(weight float64, habitual, rare int, want bool) float64 {
	switch {
	case habitual >= HabitualThreshold:
		return nudge(weight, want)
	case rare <= RareThreshold:
		return nudge(weight, !want)
	}
	return weight
}
