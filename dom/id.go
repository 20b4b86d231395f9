package dom

import "github.com/google/uuid"

// ID identifies a node for the lifetime of its tree. IDs are never reused.
type ID uuid.UUID

func NewID() ID {
	return ID(uuid.New())
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}
