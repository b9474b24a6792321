package fantasy

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// RaceEntry is one lineup's computed standing in a race.
type RaceEntry struct {
	LineupID    LineupID
	UserID      UserID
	Points      decimal.Decimal
	Cost        decimal.Decimal
	SubmittedAt time.Time
	Unpriced    []DriverID
	Rank        int
}

// RankRace orders entries by points desc, cost asc, submission time asc and
// lineup id asc, then assigns ranks keyed on points only. Tied entries share
// the rank of the first of them, which is its 1-based position.
func RankRace(entries []RaceEntry) []RaceEntry {
	out := append([]RaceEntry(nil), entries...)
	slices.SortFunc(out, func(a, b RaceEntry) int {
		if c := b.Points.Cmp(a.Points); c != 0 {
			return c
		}
		if c := a.Cost.Cmp(b.Cost); c != 0 {
			return c
		}
		if c := a.SubmittedAt.Compare(b.SubmittedAt); c != 0 {
			return c
		}
		if c := cmp.Compare(a.LineupID, b.LineupID); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})

	assignRanks(out, func(e RaceEntry) decimal.Decimal { return e.Points }, func(e *RaceEntry, rank int) { e.Rank = rank })
	return out
}

// assignRanks walks an already sorted slice. Whenever the key differs from the
// previous entry the rank jumps to the current 1-based position.
func assignRanks[T any](items []T, key func(T) decimal.Decimal, set func(*T, int)) {
	rank := 0
	for i := range items {
		if i == 0 || !key(items[i]).Equal(key(items[i-1])) {
			rank = i + 1
		}
		set(&items[i], rank)
	}
}
