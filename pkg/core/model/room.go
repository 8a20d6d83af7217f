package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownRoomCategory = errors.New("unknown room category")
	ErrUnknownDeskType     = errors.New("unknown desk type")
)

// RoomCategory is the functional type of a room
type RoomCategory string

const (
	CategoryLecture   RoomCategory = "Lecture"
	CategoryLab       RoomCategory = "Lab"
	CategoryClassroom RoomCategory = "Classroom"
)

func (c RoomCategory) IsValid() bool {
	return c == CategoryLecture || c == CategoryLab || c == CategoryClassroom
}

// ParseRoomCategory converts a raw category name into a RoomCategory
func ParseRoomCategory(s string) (RoomCategory, error) {
	c := RoomCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoomCategory, s)
	}
	return c, nil
}

// DeskType is the furniture found in a room
type DeskType string

const (
	DeskSmall DeskType = "SmallDesk"
	DeskLarge DeskType = "LargeDesk"
	DeskTable DeskType = "Table"
)

func (d DeskType) IsValid() bool {
	return d == DeskSmall || d == DeskLarge || d == DeskTable
}

// ParseDeskType converts a raw desk name into a DeskType
func ParseDeskType(s string) (DeskType, error) {
	d := DeskType(s)
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDeskType, s)
	}
	return d, nil
}

// Room represents one physical room. Rooms are values and are never
// mutated after construction.
type Room struct {
	ID         int // display only, ignored by Equivalent
	HasOutlets bool
	HasWindows bool
	HasPrinter bool
	Category   RoomCategory
	Desk       DeskType
	Building   string
}

// NewRoom builds a Room from raw attribute values, rejecting unknown
// category and desk names
func NewRoom(id int, outlets, windows bool, category string, printer bool, desk string, building string) (Room, error) {
	c, err := ParseRoomCategory(category)
	if err != nil {
		return Room{}, fmt.Errorf("room %d: %w", id, err)
	}
	d, err := ParseDeskType(desk)
	if err != nil {
		return Room{}, fmt.Errorf("room %d: %w", id, err)
	}

	return Room{
		ID:         id,
		HasOutlets: outlets,
		HasWindows: windows,
		HasPrinter: printer,
		Category:   c,
		Desk:       d,
		Building:   building,
	}, nil
}

// Equivalent reports whether two rooms share all six descriptive attributes.
// The ID is not compared.
func (r Room) Equivalent(other Room) bool {
	return r.HasOutlets == other.HasOutlets &&
		r.HasWindows == other.HasWindows &&
		r.Category == other.Category &&
		r.HasPrinter == other.HasPrinter &&
		r.Desk == other.Desk &&
		r.Building == other.Building
}

// Details renders the full attribute dump, one attribute per line
func (r Room) Details() string {
	var b strings.Builder
	b.WriteString("Classroom Details:\n")
	fmt.Fprintf(&b, "Outlets: %s\n", yesNo(r.HasOutlets))
	fmt.Fprintf(&b, "Windows: %s\n", yesNo(r.HasWindows))
	fmt.Fprintf(&b, "Class Type: %s\n", r.Category)
	fmt.Fprintf(&b, "Printer: %s\n", yesNo(r.HasPrinter))
	fmt.Fprintf(&b, "Table Type: %s\n", r.Desk)
	fmt.Fprintf(&b, "Building: %s\n", r.Building)
	fmt.Fprintf(&b, "ID: %d\n", r.ID)
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
