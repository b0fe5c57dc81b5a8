package gqlfetch

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDGenerator allocates opaque subscription identifiers. Implementations
// must not repeat an id within the lifetime of the process.
type IDGenerator interface {
	NewID() string
}

// ULIDGenerator is the default: ids sort by allocation time.
type ULIDGenerator struct{}

var _ IDGenerator = ULIDGenerator{}

func (ULIDGenerator) NewID() string { return ulid.Make().String() }

// UUIDGenerator produces random v4 UUIDs.
type UUIDGenerator struct{}

var _ IDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewID() string { return uuid.New().String() }
