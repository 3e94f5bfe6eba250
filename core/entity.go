package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Entity is an opaque handle into the component stores, zero is never issued
type Entity uint64

// PlayerID identifies a contender, the human player is always zero
type PlayerID uint8

// HumanPlayer is the distinguished player whose tile changes feed scoring and audio
const HumanPlayer PlayerID = 0

// MapID is the explicit handle threaded through all map-scoped calls
type MapID struct {
	uuid.UUID
}

// NewMapID issues a random map handle
func NewMapID() MapID {
	return MapID{UUID: uuid.New()}
}

// SeededMapID derives a stable map handle from a match seed and map index
// Replays of the same seed address the same maps
func SeededMapID(seed int64, index int) MapID {
	return MapID{UUID: uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "territory/%d/%d", seed, index))}
}

// IsZero reports whether the handle was never assigned
func (m MapID) IsZero() bool {
	return m.UUID == uuid.Nil
}
