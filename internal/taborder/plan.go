package taborder

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrCountMismatch is returned when the number of saved paths differs
	// from the number of open tabs.
	ErrCountMismatch = errors.New("saved tab count differs from open tab count")
	// ErrUnmatchedPath is returned when an open tab's path is not in the
	// saved record.
	ErrUnmatchedPath = errors.New("open tab missing from saved record")
)

// Move relocates the tab at From to To, shifting the tabs in between.
type Move struct {
	From, To int
}

// Plan computes the moves that rearrange tabs currently ordered as live into
// the order given by saved. Applying the moves in sequence, each one removing
// the tab at From and reinserting it at To, yields saved. Moves that would
// leave a tab in place are omitted, so identical orders produce no moves.
//
// Every live path must match a distinct saved path. Duplicate paths are
// matched first come, first served.
func Plan(live, saved []string) ([]Move, error) {
	if len(live) != len(saved) {
		return nil, fmt.Errorf("%w: saved %d, open %d", ErrCountMismatch, len(saved), len(live))
	}

	// position[i] tracks the current position of saved entry i.
	position := make([]int, len(saved))
	for i := range position {
		position[i] = -1
	}
	for index, path := range live {
		match := -1
		for i, candidate := range saved {
			if position[i] == -1 && candidate == path {
				match = i
				break
			}
		}
		if match == -1 {
			return nil, fmt.Errorf("%w: %s", ErrUnmatchedPath, path)
		}
		position[match] = index
	}

	// pending holds the saved entries yet to be placed, ordered by their
	// current position.
	pending := make([]int, len(saved))
	for entry, pos := range position {
		pending[pos] = entry
	}

	var moves []Move
	for to := range saved {
		from := position[to]
		k := slices.Index(pending, to)
		// Moving the tab leftwards to its destination shifts every pending
		// tab that sits before it one position to the right.
		for _, entry := range pending[:k] {
			position[entry]++
		}
		pending = slices.Delete(pending, k, k+1)

		if from != to {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves, nil
}

// Apply performs moves on items in place, using the same semantics as a tab
// container's reorder primitive.
func Apply[T any](items []T, moves []Move) {
	for _, mv := range moves {
		item := items[mv.From]
		if mv.From < mv.To {
			copy(items[mv.From:mv.To], items[mv.From+1:mv.To+1])
		} else {
			copy(items[mv.To+1:mv.From+1], items[mv.To:mv.From])
		}
		items[mv.To] = item
	}
}
