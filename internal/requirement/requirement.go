// Package requirement folds flat capture streams into OR-of-AND chains.
//
// A Chain is satisfied when any one of its groups is, a Group is satisfied
// when all of its items are. Matrícula Web expresses this in two ways: a
// per-row relation marker ("E" keeps the group open, anything else closes
// it) in curriculum chains, and a textual " OU<br>" separator between
// branches in prerequisite listings.
package requirement

import (
	"strings"
)

const (
	// AndMarker is the relation marker that keeps a group open.
	AndMarker = "E"
	// OrSeparator separates the branches of a prerequisite listing.
	OrSeparator = " OU<br>"
)

// Item is a single discipline reference inside a chain.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// Group is an AND of items, it is never empty.
type Group []Item

// Chain is an OR of groups.
type Chain []Group

func (g Group) IDs() []string {
	out := make([]string, len(g))
	for i, item := range g {
		out[i] = item.ID
	}
	return out
}

// IDs returns the ids of every group, in order.
func (c Chain) IDs() [][]string {
	out := make([][]string, len(c))
	for i, g := range c {
		out[i] = g.IDs()
	}
	return out
}

func (c Chain) String() string {
	var b strings.Builder
	for i, g := range c {
		if i > 0 {
			b.WriteString(" OU ")
		}
		if len(g) > 1 {
			b.WriteString("(")
		}
		b.WriteString(strings.Join(g.IDs(), " E "))
		if len(g) > 1 {
			b.WriteString(")")
		}
	}
	return b.String()
}

// Fold is the state of grouping a marked stream: the groups closed so far
// and the one still being accumulated.
type Fold[T any] struct {
	Closed  [][]T
	Current []T
}

// IsAnd reports whether a relation marker keeps the current group open.
// The comparison is case sensitive, surrounding whitespace is ignored.
func IsAnd(marker string) bool {
	return strings.TrimSpace(marker) == AndMarker
}

// Step adds a value to the current group and closes it unless the marker
// is the AND marker. The receiver is not modified.
func (f Fold[T]) Step(value T, marker string) Fold[T] {
	current := make([]T, len(f.Current), len(f.Current)+1)
	copy(current, f.Current)
	current = append(current, value)

	if IsAnd(marker) {
		return Fold[T]{Closed: f.Closed, Current: current}
	}

	closed := make([][]T, len(f.Closed), len(f.Closed)+1)
	copy(closed, f.Closed)
	closed = append(closed, current)
	return Fold[T]{Closed: closed}
}

// Pending returns the values of a group that was never closed. They are
// not part of Result.
func (f Fold[T]) Pending() []T {
	return f.Current
}

// Result returns the closed groups. A trailing group without a closing
// marker is left out, see Pending.
func (f Fold[T]) Result() [][]T {
	return f.Closed
}

// GroupMarked runs the fold over values, reading each value's relation
// marker with markerOf.
func GroupMarked[T any](values []T, markerOf func(T) string) Fold[T] {
	var f Fold[T]
	for _, v := range values {
		f = f.Step(v, markerOf(v))
	}
	return f
}

// SplitOR splits a prerequisite listing on `separator` and extracts the
// identifiers of each branch with `ids`. Branches without identifiers are
// skipped so no group is empty.
func SplitOR(text, separator string, ids func(branch string) []string) Chain {
	if text == "" {
		return Chain{}
	}
	chain := Chain{}
	for _, branch := range strings.Split(text, separator) {
		codes := ids(branch)
		if len(codes) == 0 {
			continue
		}
		g := make(Group, len(codes))
		for i, code := range codes {
			g[i] = Item{ID: code}
		}
		chain = append(chain, g)
	}
	return chain
}
