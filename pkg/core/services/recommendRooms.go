package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/room-ranker/pkg/core/availability"
	"github.com/jakechorley/room-ranker/pkg/core/model"
	"github.com/jakechorley/room-ranker/pkg/core/ranker"
)

var (
	ErrUnknownHistoryRoom = errors.New("history references unknown room")
	ErrDuplicateRoomID    = errors.New("duplicate room id in catalog")
)

// CatalogRoom is a room together with the days it is free
type CatalogRoom struct {
	Room model.Room

	// FreeOn is an RRULE describing the days the room is free. Empty means
	// always free.
	FreeOn string
}

// RecommendationRequest describes one user's ranking request
type RecommendationRequest struct {
	Preferences       ranker.Preferences
	ImportanceOrder   []ranker.Attribute
	PreferredBuilding string

	// HistoryIDs are the catalog IDs of the user's last rooms, oldest first
	HistoryIDs []int

	Variety int

	// Date restricts candidates to rooms free on that day. Nil uses the
	// whole catalog.
	Date *time.Time

	// Seed makes the variety perturbation reproducible. Nil seeds from the clock.
	Seed *int64
}

// RecommendationResult is the outcome of a recommendation run
type RecommendationResult struct {
	RunID      string
	Candidates int
	Results    []ranker.ScoredRoom
}

// RecommendRooms filters the catalog to free rooms, resolves the history and
// ranks the candidates
func RecommendRooms(logger *zap.Logger, catalog []CatalogRoom, req RecommendationRequest) (*RecommendationResult, error) {
	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	logger.Debug("Starting recommendation run",
		zap.Int("catalog_size", len(catalog)),
		zap.Int("variety", req.Variety),
		zap.String("preferred_building", req.PreferredBuilding))

	byID, err := indexCatalog(catalog)
	if err != nil {
		return nil, err
	}

	candidates, err := ListRooms(catalog, req.Date)
	if err != nil {
		return nil, err
	}
	if req.Date != nil {
		logger.Debug("Filtered catalog by availability",
			zap.String("date", req.Date.Format("2006-01-02")),
			zap.Int("free_rooms", len(candidates)))
	}

	history, err := resolveHistory(byID, req.HistoryIDs)
	if err != nil {
		return nil, err
	}

	input := ranker.Input{
		Candidates:        candidates,
		ImportanceOrder:   req.ImportanceOrder,
		Preferences:       req.Preferences,
		PreferredBuilding: req.PreferredBuilding,
		History:           history,
		Variety:           req.Variety,
	}
	if req.Seed != nil {
		input.Rand = rand.New(rand.NewSource(*req.Seed))
		logger.Debug("Using fixed seed", zap.Int64("seed", *req.Seed))
	}

	results, err := ranker.Rank(input)
	if err != nil {
		return nil, fmt.Errorf("failed to rank rooms: %w", err)
	}

	if len(results) == 0 {
		logger.Info("No free rooms to rank")
	} else {
		top := results[0]
		logger.Info("Ranked rooms",
			zap.Int("candidates", len(results)),
			zap.Int("top_room", top.Room.ID),
			zap.Float64("top_score", top.Score),
			zap.Int("top_original_rank", top.OriginalRank))
	}

	return &RecommendationResult{
		RunID:      runID,
		Candidates: len(candidates),
		Results:    results,
	}, nil
}

// ListRooms returns the catalog rooms free on date, in catalog order. A nil
// date returns every room.
func ListRooms(catalog []CatalogRoom, date *time.Time) ([]model.Room, error) {
	rooms := make([]model.Room, 0, len(catalog))

	for _, entry := range catalog {
		if date != nil {
			free, err := availability.IsFreeOn(entry.FreeOn, *date)
			if err != nil {
				return nil, fmt.Errorf("room %d: %w", entry.Room.ID, err)
			}
			if !free {
				continue
			}
		}
		rooms = append(rooms, entry.Room)
	}

	return rooms, nil
}

func indexCatalog(catalog []CatalogRoom) (map[int]model.Room, error) {
	byID := make(map[int]model.Room, len(catalog))
	for _, entry := range catalog {
		if _, exists := byID[entry.Room.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateRoomID, entry.Room.ID)
		}
		byID[entry.Room.ID] = entry.Room
	}
	return byID, nil
}

// resolveHistory looks up each history ID in the catalog. Availability does
// not matter here, past rooms may be booked today.
func resolveHistory(byID map[int]model.Room, ids []int) ([]model.Room, error) {
	history := make([]model.Room, 0, len(ids))
	for i, id := range ids {
		room, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: history[%d] = %d", ErrUnknownHistoryRoom, i, id)
		}
		history = append(history, room)
	}
	return history, nil
}
