package dlkfs

import "slices"

type Capability string

const (
	CapabilityMetadata  Capability = "Metadata"
	CapabilityList      Capability = "List"
	CapabilityCRUD      Capability = "CRUD"
	CapabilityStreaming Capability = "Streaming"
)

// Capabilities describes what an adapter supports. Callers query this instead
// of probing operations and handling not-supported failures.
type Capabilities struct {
	Capabilities []Capability `json:"capabilities"`
}

// Contains checks if a capability is supported.
func (c Capabilities) Contains(cap Capability) bool {
	return slices.Contains(c.Capabilities, cap)
}
