// Package mouse models the pointers a host reports: their identities, their
// buttons and the state the Application keeps for each of them.
package mouse

import (
	"fmt"
	"math/bits"
)

// Mouse identifies one physical pointer. Desktop hosts usually have a single
// mouse; touch screens report one per finger.
type Mouse uint16

func (m Mouse) String() string {
	return fmt.Sprintf("mouse#%d", uint16(m))
}

// Button is the index of a mouse button.
type Button uint8

const (
	Primary   Button = 0
	Wheel     Button = 1
	Secondary Button = 2
)

// IsPrimary reports whether b is the primary button.
func (b Button) IsPrimary() bool {
	return b == Primary
}

func (b Button) String() string {
	switch b {
	case Primary:
		return "primary"
	case Wheel:
		return "wheel"
	case Secondary:
		return "secondary"
	}
	return fmt.Sprintf("button%d", uint8(b))
}

// PressedButtons is the set of buttons of a mouse that are currently down.
// The zero value is the empty set, and two sets are equal under == exactly
// when they contain the same buttons.
type PressedButtons struct {
	bits [4]uint64
}

// Press adds b to the set. Pressing a button twice is the same as pressing it
// once.
func (p *PressedButtons) Press(b Button) {
	p.bits[b/64] |= 1 << (b % 64)
}

// Release removes b from the set.
func (p *PressedButtons) Release(b Button) {
	p.bits[b/64] &^= 1 << (b % 64)
}

func (p PressedButtons) IsPressed(b Button) bool {
	return p.bits[b/64]&(1<<(b%64)) != 0
}

// Len returns the number of pressed buttons.
func (p PressedButtons) Len() int {
	n := 0
	for _, word := range p.bits {
		n += bits.OnesCount64(word)
	}
	return n
}

// Buttons returns the pressed buttons in ascending order.
func (p PressedButtons) Buttons() []Button {
	buttons := make([]Button, 0, p.Len())
	for i := 0; i < 256; i++ {
		if p.IsPressed(Button(i)) {
			buttons = append(buttons, Button(i))
		}
	}
	return buttons
}

func (p PressedButtons) String() string {
	return fmt.Sprint(p.Buttons())
}
