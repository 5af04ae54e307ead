package port_platform

import "github.com/google/uuid"

// IDGenerator issues the routing codes and receipt numbers attached to
// inbound deposits.
type IDGenerator interface {
	NewUUID() uuid.UUID
}
