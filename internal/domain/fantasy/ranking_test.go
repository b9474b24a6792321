package fantasy

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)

func TestRankRace_TieOnPointsSortsByCost(t *testing.T) {
	got := RankRace([]RaceEntry{
		{LineupID: 1, UserID: 1, Points: decimal.NewFromInt(40), Cost: decimal.NewFromInt(100), SubmittedAt: baseTime},
		{LineupID: 2, UserID: 2, Points: decimal.NewFromInt(40), Cost: decimal.NewFromInt(90), SubmittedAt: baseTime},
	})

	require.Len(t, got, 2)
	assert.Equal(t, UserID(2), got[0].UserID)
	assert.Equal(t, UserID(1), got[1].UserID)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, 1, got[1].Rank)
}

func TestRankRace_TieBreakChain(t *testing.T) {
	got := RankRace([]RaceEntry{
		{LineupID: 4, UserID: 4, Points: decimal.NewFromInt(10), Cost: decimal.NewFromInt(50), SubmittedAt: baseTime.Add(time.Minute)},
		{LineupID: 3, UserID: 3, Points: decimal.NewFromInt(10), Cost: decimal.NewFromInt(50), SubmittedAt: baseTime},
		{LineupID: 1, UserID: 1, Points: decimal.NewFromInt(30), Cost: decimal.NewFromInt(80), SubmittedAt: baseTime},
		{LineupID: 2, UserID: 2, Points: decimal.NewFromInt(30), Cost: decimal.NewFromInt(80), SubmittedAt: baseTime},
		{LineupID: 5, UserID: 5, Points: decimal.NewFromInt(5), Cost: decimal.NewFromInt(1), SubmittedAt: baseTime},
	})

	ids := make([]LineupID, 0, len(got))
	ranks := make([]int, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.LineupID)
		ranks = append(ranks, e.Rank)
	}
	assert.Equal(t, []LineupID{1, 2, 3, 4, 5}, ids)
	assert.Equal(t, []int{1, 1, 3, 3, 5}, ranks)
}

func TestRankRace_DoesNotMutateInput(t *testing.T) {
	in := []RaceEntry{
		{LineupID: 1, Points: decimal.NewFromInt(1)},
		{LineupID: 2, Points: decimal.NewFromInt(2)},
	}
	_ = RankRace(in)
	assert.Equal(t, LineupID(1), in[0].LineupID)
	assert.Zero(t, in[0].Rank)
}

func TestRankRace_RankInvariantAndDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	entries := make([]RaceEntry, 0, 60)
	for i := 1; i <= 60; i++ {
		entries = append(entries, RaceEntry{
			LineupID:    LineupID(i),
			UserID:      UserID(i),
			Points:      decimal.NewFromInt(int64(rng.Intn(8))),
			Cost:        decimal.NewFromInt(int64(rng.Intn(3))),
			SubmittedAt: baseTime.Add(time.Duration(rng.Intn(4)) * time.Minute),
		})
	}

	want := RankRace(entries)
	for i, e := range want {
		if e.Rank > i+1 {
			t.Fatalf("rank %d exceeds position %d", e.Rank, i+1)
		}
		if i > 0 {
			samePoints := e.Points.Equal(want[i-1].Points)
			if samePoints != (e.Rank == want[i-1].Rank) {
				t.Fatalf("rank equality must follow points equality at %d", i)
			}
		}
	}

	for round := 0; round < 10; round++ {
		shuffled := append([]RaceEntry(nil), entries...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got := RankRace(shuffled)
		require.Equal(t, len(want), len(got))
		for i := range want {
			if want[i].LineupID != got[i].LineupID || want[i].Rank != got[i].Rank {
				t.Fatalf("round %d: output differs at %d", round, i)
			}
		}
	}
}

func TestRankRace_Empty(t *testing.T) {
	assert.Empty(t, RankRace(nil))
}
