package geom

import "fmt"

// IntersectionKind tells how a line segment meets a DrawnRegion.
type IntersectionKind uint8

const (
	// FullyInside means both endpoints are inside the region.
	FullyInside IntersectionKind = iota
	// FullyOutside means both endpoints are outside and the segment never
	// touches the region.
	FullyOutside
	// Enters means the segment starts outside and ends inside.
	Enters
	// Exits means the segment starts inside and ends outside.
	Exits
	// Crosses means both endpoints are outside but the segment passes
	// through the region.
	Crosses
)

func (k IntersectionKind) String() string {
	switch k {
	case FullyInside:
		return "FullyInside"
	case FullyOutside:
		return "FullyOutside"
	case Enters:
		return "Enters"
	case Exits:
		return "Exits"
	case Crosses:
		return "Crosses"
	}
	return fmt.Sprintf("IntersectionKind(%d)", uint8(k))
}

// LineIntersection is the result of DrawnRegion.FindLineIntersection.
//
// Entrance is set for Enters and Crosses, and is the intersection closest to
// the start of the segment. Exit is set for Exits and Crosses, and is the
// intersection closest to the end of the segment.
type LineIntersection struct {
	Kind     IntersectionKind
	Entrance Point
	Exit     Point
}

func Inside() LineIntersection {
	return LineIntersection{Kind: FullyInside}
}

func Outside() LineIntersection {
	return LineIntersection{Kind: FullyOutside}
}

func Entering(point Point) LineIntersection {
	return LineIntersection{Kind: Enters, Entrance: point}
}

func Exiting(point Point) LineIntersection {
	return LineIntersection{Kind: Exits, Exit: point}
}

func Crossing(entrance, exit Point) LineIntersection {
	return LineIntersection{Kind: Crosses, Entrance: entrance, Exit: exit}
}

// NearlyEqual reports whether li and other have the same kind and nearly
// equal points.
func (li LineIntersection) NearlyEqual(other LineIntersection) bool {
	if li.Kind != other.Kind {
		return false
	}
	switch li.Kind {
	case Enters:
		return li.Entrance.NearlyEqual(other.Entrance)
	case Exits:
		return li.Exit.NearlyEqual(other.Exit)
	case Crosses:
		return li.Entrance.NearlyEqual(other.Entrance) && li.Exit.NearlyEqual(other.Exit)
	}
	return true
}

func (li LineIntersection) String() string {
	switch li.Kind {
	case Enters:
		return fmt.Sprintf("Enters{%v}", li.Entrance)
	case Exits:
		return fmt.Sprintf("Exits{%v}", li.Exit)
	case Crosses:
		return fmt.Sprintf("Crosses{%v, %v}", li.Entrance, li.Exit)
	}
	return li.Kind.String()
}
