package visual

import (
	"time"
)

// Clock supplies the current instant to visual nodes.
type Clock func() time.Time

// Bounds records where layout last placed a node, in terminal rows.
type Bounds struct {
	Top    int
	Height int
}

// Bottom returns the first row below the node.
func (b Bounds) Bottom() int {
	return b.Top + b.Height
}

// Contains reports whether row falls inside the node.
func (b Bounds) Contains(row int) bool {
	return row >= b.Top && row < b.Bottom()
}

// Node is the smallest rendered unit: something with a position, a size and
// an opacity that can be faded over time.
type Node struct {
	name  string
	clock Clock

	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	easing   Easing

	bounds    Bounds
	retargets int
}

// NewNode returns a node resting at the supplied opacity.
func NewNode(name string, clock Clock, opacity float64) *Node {
	if clock == nil {
		clock = time.Now
	}
	opacity = clamp(opacity)
	return &Node{
		name:  name,
		clock: clock,
		from:  opacity,
		to:    opacity,
	}
}

// Name returns the diagnostic name given at construction.
func (n *Node) Name() string {
	return n.name
}

// Opacity evaluates the in-flight transition at the current clock instant.
func (n *Node) Opacity() float64 {
	return n.opacityAt(n.clock())
}

func (n *Node) opacityAt(now time.Time) float64 {
	if n.duration <= 0 {
		return n.to
	}
	elapsed := now.Sub(n.start)
	if elapsed <= 0 {
		return n.from
	}
	if elapsed >= n.duration {
		return n.to
	}
	progress := n.easing.Apply(float64(elapsed) / float64(n.duration))
	return n.from + (n.to-n.from)*progress
}

// Target returns the opacity the node is heading towards.
func (n *Node) Target() float64 {
	return n.to
}

// FadeTo starts a transition from the present opacity to target. A request
// for the target already in flight is ignored; anything else interrupts the
// running transition and retargets it.
func (n *Node) FadeTo(target float64, duration time.Duration, easing Easing) {
	target = clamp(target)
	if target == n.to {
		return
	}
	now := n.clock()
	n.from = n.opacityAt(now)
	n.to = target
	n.start = now
	n.duration = duration
	n.easing = easing
	n.retargets++
}

// Animating reports whether a transition is still running.
func (n *Node) Animating() bool {
	if n.duration <= 0 {
		return false
	}
	return n.clock().Sub(n.start) < n.duration
}

// Visible reports whether the node is, or is about to be, drawn at all.
func (n *Node) Visible() bool {
	return n.to > 0 || n.Opacity() > 0
}

// Retargets counts how many transitions have been started on the node.
func (n *Node) Retargets() int {
	return n.retargets
}

// SetBounds is called by layout once the node has been placed.
func (n *Node) SetBounds(b Bounds) {
	n.bounds = b
}

// Bounds returns the last layout placement.
func (n *Node) Bounds() Bounds {
	return n.bounds
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
