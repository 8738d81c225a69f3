package models

import (
	"errors"
	"fmt"
	"strings"
)

// BasketLine is one basket entry: a product and how many units were added
type BasketLine struct {
	ProductCode string
	Quantity    int
}

// ReAddPolicy decides what adding an already basketed product does
type ReAddPolicy string

// Re-add policies
const (
	ReAddIncrement ReAddPolicy = "increment"
	ReAddIgnore    ReAddPolicy = "ignore"
)

// Domain errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("not logged in")
	ErrUnknownProduct     = errors.New("unknown product")
	ErrInvalidPolicy      = errors.New("invalid basket re-add policy")
)

// ParseReAddPolicy parses a policy name, defaulting to increment when empty
func ParseReAddPolicy(s string) (ReAddPolicy, error) {
	switch ReAddPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ReAddIncrement:
		return ReAddIncrement, nil
	case ReAddIgnore:
		return ReAddIgnore, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// Basket is an ordered sequence of lines, unique by product code
type Basket struct {
	lines []BasketLine
}

// NewBasket builds a basket from lines, merging duplicates and dropping
// lines with a non-positive quantity. Order of first appearance is kept.
func NewBasket(lines []BasketLine) *Basket {
	b := &Basket{}
	for _, l := range lines {
		if l.Quantity < 1 || l.ProductCode == "" {
			continue
		}
		if i := b.indexOf(l.ProductCode); i >= 0 {
			b.lines[i].Quantity += l.Quantity
			continue
		}
		b.lines = append(b.lines, l)
	}
	return b
}

func (b *Basket) indexOf(code string) int {
	for i, l := range b.lines {
		if l.ProductCode == code {
			return i
		}
	}
	return -1
}

// Add applies the re-add policy for code and reports whether the basket changed
func (b *Basket) Add(code string, policy ReAddPolicy) bool {
	if i := b.indexOf(code); i >= 0 {
		if policy == ReAddIgnore {
			return false
		}
		b.lines[i].Quantity++
		return true
	}
	b.lines = append(b.lines, BasketLine{ProductCode: code, Quantity: 1})
	return true
}

// Clear empties the basket
func (b *Basket) Clear() {
	b.lines = nil
}

// Lines returns a copy of the basket lines in insertion order
func (b *Basket) Lines() []BasketLine {
	out := make([]BasketLine, len(b.lines))
	copy(out, b.lines)
	return out
}

// Quantity returns the quantity held for code, or zero
func (b *Basket) Quantity(code string) int {
	if i := b.indexOf(code); i >= 0 {
		return b.lines[i].Quantity
	}
	return 0
}

// IsEmpty returns true if the basket holds no lines
func (b *Basket) IsEmpty() bool {
	return len(b.lines) == 0
}
