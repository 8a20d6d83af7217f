package ranker

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/jakechorley/room-ranker/pkg/core/model"
)

// Rank scores every candidate against the ideal room built from the user's
// preferences and returns them sorted by descending final score.
//
// The steps are:
//  1. weight each attribute by its position in the importance order
//  2. nudge the weights with the history frequency signal
//  3. score each candidate by summing half the weight of every matching
//     attribute, plus a bonus per history entry equivalent to the candidate
//  4. sort by that base score and record each room's 1-based OriginalRank
//  5. when variety is non-zero add a random perturbation of up to
//     VarietyBase^variety and sort again
//
// Both sorts are stable, so exact ties keep their candidate order.
func Rank(input Input) ([]ScoredRoom, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	if len(input.Candidates) == 0 {
		return []ScoredRoom{}, nil
	}

	ideal := IdealRoom(input.Preferences, input.PreferredBuilding)
	weights := AdjustWeights(AttributeWeights(input.ImportanceOrder), CountHistory(input.History), ideal)

	scored := make([]ScoredRoom, 0, len(input.Candidates))
	for _, room := range input.Candidates {
		base := calculateRoomScore(room, ideal, weights, input.History, input.Variety)
		scored = append(scored, ScoredRoom{
			Score:     base,
			BaseScore: base,
			Room:      room,
		})
	}

	sortByScore(scored, func(s ScoredRoom) float64 { return s.BaseScore })

	rng := input.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	spread := math.Pow(VarietyBase, float64(input.Variety))
	for i := range scored {
		scored[i].OriginalRank = i + 1
		if input.Variety != 0 {
			scored[i].Score += rng.Float64() * spread
		}
	}

	sortByScore(scored, func(s ScoredRoom) float64 { return s.Score })

	return scored, nil
}

// IdealRoom builds the synthetic target room the candidates are matched
// against. It is never returned to callers.
func IdealRoom(prefs Preferences, building string) model.Room {
	return model.Room{
		HasOutlets: prefs.Outlets,
		HasWindows: prefs.Windows,
		HasPrinter: prefs.Printer,
		Category:   prefs.Category,
		Desk:       prefs.Desk,
		Building:   building,
	}
}

// HistoryBonus is added to a candidate's score for every equivalent room in
// the history. It uses integer division, so it is 1 for variety 0 to 3 and
// 0 only at MaxVariety.
func HistoryBonus(variety int) float64 {
	return float64(1 - variety/MaxVariety)
}

// calculateRoomScore computes the pre-randomization score of a room
func calculateRoomScore(room, ideal model.Room, w Weights, history []model.Room, variety int) float64 {
	score := 0.0

	if room.HasOutlets == ideal.HasOutlets {
		score += w.Outlets / 2
	}
	if room.HasWindows == ideal.HasWindows {
		score += w.Windows / 2
	}
	if room.Category == ideal.Category {
		score += w.ClassType / 2
	}
	if room.HasPrinter == ideal.HasPrinter {
		score += w.Printer / 2
	}
	if room.Desk == ideal.Desk {
		score += w.TableType / 2
	}
	if room.Building == ideal.Building {
		score += w.Building / 2
	}

	bonus := HistoryBonus(variety)
	for _, past := range history {
		if past.Equivalent(room) {
			score += bonus
		}
	}

	return score
}

// sortByScore sorts in place, highest key first
func sortByScore(rooms []ScoredRoom, key func(ScoredRoom) float64) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return key(rooms[i]) > key(rooms[j])
	})
}
