// Package extent provides the geometric extents the engine reasons about: a single
// point, a great circle segment, an open path and a closed region. The kinds form a
// closed set; algorithms select behaviour with a type switch on the concrete pointer
// types rather than through methods on the interface.
package extent

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ecopia-map/geo_extents/pkg/geo"
)

// Kind names the variant of an Extent.
type Kind uint8

const (
	KindPoint Kind = iota + 1
	KindSegment
	KindPath
	KindRegion
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindSegment:
		return "segment"
	case KindPath:
		return "path"
	case KindRegion:
		return "region"
	}
	return "unknown"
}

// ID is an opaque identity token. Two extents are the same extent when their IDs are
// equal. IDs are comparable and can be used as map keys; they carry no ordering.
//
// Views produced while iterating a path or region share the owner of their parent and
// are told apart by kind and position.
type ID struct {
	owner uuid.UUID
	kind  Kind
	pos   int
}

func newID(kind Kind) ID {
	return ID{owner: uuid.New(), kind: kind, pos: -1}
}

func (id ID) view(kind Kind, pos int) ID {
	return ID{owner: id.owner, kind: kind, pos: pos}
}

// Position returns the index of a view inside its parent path or region, or -1 for an
// extent built directly by a caller.
func (id ID) Position() int { return id.pos }

func (id ID) String() string {
	if id.pos < 0 {
		return fmt.Sprintf("%s/%s", id.kind, id.owner)
	}
	return fmt.Sprintf("%s/%s#%d", id.kind, id.owner, id.pos)
}

// Extent is any of *Point, *Segment, *Path or *Region.
type Extent interface {
	// BoundingCircle returns a circle enclosing every defining point of the extent.
	BoundingCircle() geo.BoundingCircle
	// ID returns the identity of the extent.
	ID() ID
	// Kind returns the variant of the extent.
	Kind() Kind

	sealed()
}

// Vertices returns the defining points of any extent, in order. The returned slice must
// not be modified.
func Vertices(e Extent) []geo.Point {
	switch v := e.(type) {
	case *Point:
		return []geo.Point{v.p}
	case *Segment:
		return []geo.Point{v.a, v.b}
	case *Region:
		return v.points
	case *Path:
		return v.points
	}
	return nil
}
