package ranker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is wrapped by every input validation error
	ErrInvalidInput = errors.New("invalid input")

	ErrInvalidPreferenceOrder = fmt.Errorf("%w: invalid preference order", ErrInvalidInput)
	ErrInvalidHistoryLength   = fmt.Errorf("%w: invalid history length", ErrInvalidInput)
	ErrInvalidVariety         = fmt.Errorf("%w: invalid variety", ErrInvalidInput)
	ErrInvalidPreferences     = fmt.Errorf("%w: invalid preferences", ErrInvalidInput)
)

// ValidateInput checks the ranking input. An empty candidate list is valid.
func ValidateInput(input Input) error {
	if err := ValidateImportanceOrder(input.ImportanceOrder); err != nil {
		return err
	}

	if len(input.History) != HistorySize {
		return fmt.Errorf("%w: got %d entries, want %d", ErrInvalidHistoryLength, len(input.History), HistorySize)
	}

	if input.Variety < 0 || input.Variety > MaxVariety {
		return fmt.Errorf("%w: got %d, want 0-%d", ErrInvalidVariety, input.Variety, MaxVariety)
	}

	if !input.Preferences.Category.IsValid() {
		return fmt.Errorf("%w: unknown room category %q", ErrInvalidPreferences, input.Preferences.Category)
	}
	if !input.Preferences.Desk.IsValid() {
		return fmt.Errorf("%w: unknown desk type %q", ErrInvalidPreferences, input.Preferences.Desk)
	}

	return nil
}

// ValidateImportanceOrder checks that the order holds each of the five
// attributes exactly once
func ValidateImportanceOrder(order []Attribute) error {
	expected := len(DefaultImportanceOrder())
	if len(order) != expected {
		return fmt.Errorf("%w: got %d attributes, want %d", ErrInvalidPreferenceOrder, len(order), expected)
	}

	seen := make(map[Attribute]bool, len(order))
	for _, attr := range order {
		if !attr.IsValid() {
			return fmt.Errorf("%w: unknown attribute %q", ErrInvalidPreferenceOrder, attr)
		}
		if seen[attr] {
			return fmt.Errorf("%w: duplicate attribute %q", ErrInvalidPreferenceOrder, attr)
		}
		seen[attr] = true
	}

	return nil
}
