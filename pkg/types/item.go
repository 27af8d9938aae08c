package types

import "github.com/google/uuid"

// Item constrains the entity types the storage contracts operate on.
// Items are plain comparable values: identity lives in the UUID, so
// "mutating" an item means constructing a new value and re-persisting it.
// The identifier is generated client-side at construction time and is the
// sole key used for backend lookup; backends never assign it.
type Item interface {
	comparable

	// ItemID returns the entity's stable identifier.
	ItemID() uuid.UUID

	// Kind returns the entity-type name used in error reporting,
	// e.g. "Task".
	Kind() string
}

// NewID generates a UUID v7 for entity identity. Time-ordered IDs keep
// backend indexes append-friendly.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New()
	}
	return id
}
