// Package device defines references to fabrication-level device entities.
package device

// PhysicalLayer identifies a fabrication layer of the device (a mold or
// membrane level). The design model only holds and forwards these
// references; it never inspects them.
type PhysicalLayer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
