package event

import "time"

// ClickKind classifies a press by its proximity to the previous one.
type ClickKind uint8

const (
	ClickSingle ClickKind = iota
	ClickDouble
	ClickTriple
)

func (k ClickKind) String() string {
	switch k {
	case ClickDouble:
		return "double"
	case ClickTriple:
		return "triple"
	default:
		return "single"
	}
}

// next returns the kind that follows k in a consecutive run. A fourth press
// starts over at single.
func (k ClickKind) next() ClickKind {
	switch k {
	case ClickSingle:
		return ClickDouble
	case ClickDouble:
		return ClickTriple
	default:
		return ClickSingle
	}
}

// ClickPolicy holds the thresholds for multi-click detection.
type ClickPolicy struct {
	Interval time.Duration // Max time between presses
	Distance float32       // Max distance between presses
}

// DefaultClickPolicy returns the standard multi-click thresholds.
func DefaultClickPolicy() ClickPolicy {
	return ClickPolicy{
		Interval: 300 * time.Millisecond,
		Distance: 5.0,
	}
}

// Click records a press so the next one can be classified.
type Click struct {
	Position Point
	At       time.Time
	Kind     ClickKind
}

// NewClick classifies a press at pos against the previous click, if any.
func NewClick(pos Point, at time.Time, previous *Click, policy ClickPolicy) Click {
	kind := ClickSingle
	if previous != nil && previous.isConsecutive(pos, at, policy) {
		kind = previous.Kind.next()
	}
	return Click{Position: pos, At: at, Kind: kind}
}

func (c *Click) isConsecutive(pos Point, at time.Time, policy ClickPolicy) bool {
	elapsed := at.Sub(c.At)
	if elapsed < 0 || elapsed > policy.Interval {
		return false
	}
	dx := pos.X - c.Position.X
	dy := pos.Y - c.Position.Y
	return dx*dx+dy*dy <= policy.Distance*policy.Distance
}
