package impl_platform

import (
	"time"

	port_platform "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/platform"
	"github.com/google/uuid"
)

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

var _ port_platform.Clock = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator produces random (version 4) UUIDs.
type UUIDGenerator struct{}

var _ port_platform.IDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewUUID() uuid.UUID {
	return uuid.New()
}
