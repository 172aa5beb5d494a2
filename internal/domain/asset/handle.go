// Package asset defines handles to resources acquired from the resource manager.
package asset

import "fmt"

// Kind is the category of a resource
type Kind int

const (
	KindTexture Kind = iota
	KindFont
	KindMesh
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindTexture:
		return "texture"
	case KindFont:
		return "font"
	case KindMesh:
		return "mesh"
	default:
		return "unknown"
	}
}

// Handle is one acquisition of a resource. Every handle must be released
// exactly once.
type Handle struct {
	ID   uint64
	Kind Kind
	Path string
}

// Valid reports whether the handle came from a successful acquire
func (h Handle) Valid() bool { return h.ID != 0 }

func (h Handle) String() string {
	return fmt.Sprintf("%s#%d(%s)", h.Kind, h.ID, h.Path)
}
