package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jakechorley/room-ranker/pkg/core/model"
	"github.com/jakechorley/room-ranker/pkg/core/ranker"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorDim   = "\033[2m"
)

// printRankedRooms prints one block per room in final order
func printRankedRooms(w io.Writer, results []ranker.ScoredRoom) {
	for _, r := range results {
		fmt.Fprintf(w, "\nClassroom %d:\n", r.Room.ID)
		fmt.Fprint(w, r.Room.Details())
		fmt.Fprintf(w, "Weight: %.6g\n", r.Score)
		fmt.Fprintf(w, "Original Position: %d\n", r.OriginalRank)
	}
}

// printRankingSummary prints a compact table showing how far variety moved each room
func printRankingSummary(w io.Writer, results []ranker.ScoredRoom) {
	fmt.Fprintf(w, "\n%-5s %-6s %-8s %-8s %s\n", "Pos", "Room", "Score", "Base", "Moved")
	fmt.Fprintln(w, strings.Repeat("-", 36))

	for i, r := range results {
		moved := rankMovement(r.OriginalRank, i+1)
		fmt.Fprintf(w, "%-5d %-6d %-8.3f %-8.3f %s%s%s\n",
			i+1, r.Room.ID, r.Score, r.BaseScore,
			movementColor(r.OriginalRank, i+1), moved, colorReset)
	}
}

// rankMovement describes the change from the original rank to the final
// position: "+2" means the room moved up two places
func rankMovement(originalRank, finalPosition int) string {
	diff := originalRank - finalPosition
	switch {
	case diff > 0:
		return fmt.Sprintf("+%d", diff)
	case diff < 0:
		return fmt.Sprintf("%d", diff)
	}
	return "="
}

func movementColor(originalRank, finalPosition int) string {
	switch {
	case originalRank > finalPosition:
		return colorGreen
	case originalRank < finalPosition:
		return colorRed
	}
	return colorDim
}

// printRooms prints one line per room
func printRooms(w io.Writer, rooms []model.Room) {
	fmt.Fprintf(w, "\nFound %d rooms:\n\n", len(rooms))
	for _, r := range rooms {
		fmt.Fprintf(w, "- %d %s (%s, %s)%s\n", r.ID, r.Building, r.Category, r.Desk, roomFeatures(r))
	}
}

func roomFeatures(r model.Room) string {
	var features []string
	if r.HasOutlets {
		features = append(features, "outlets")
	}
	if r.HasWindows {
		features = append(features, "windows")
	}
	if r.HasPrinter {
		features = append(features, "printer")
	}
	if len(features) == 0 {
		return ""
	}
	return " - " + strings.Join(features, ", ")
}
