package fantasy

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingPoints_BeyondTableIsZero(t *testing.T) {
	table := DecimalTable(25, 18, 14, 10, 6, 3, 1)

	assert.True(t, RankingPoints(table, 1).Equal(decimal.NewFromInt(25)))
	assert.True(t, RankingPoints(table, 7).Equal(decimal.NewFromInt(1)))
	assert.True(t, RankingPoints(table, 8).IsZero())
	assert.True(t, RankingPoints(table, 0).IsZero())
}

func TestScoreRace_ComputesPointsCostAndRank(t *testing.T) {
	rules := RuleSet{
		DriverFinishPoints: DecimalTable(25, 18, 15),
		FastestLapBonus:    decimal.NewFromInt(1),
		DNFPenalty:         decimal.NewFromInt(10),
	}
	in := RaceInput{
		RaceID: 3,
		Results: []RaceResult{
			{DriverID: 1, FinishPosition: intPtr(1)},
			{DriverID: 2, FinishPosition: intPtr(2), FastestLap: true},
			{DriverID: 3, DNF: true},
		},
		Offers: []DriverOffer{
			{DriverID: 1, Price: decimal.NewFromInt(50)},
			{DriverID: 2, Price: decimal.NewFromInt(40)},
			{DriverID: 3, Price: decimal.NewFromInt(10)},
		},
		Lineups: []LineupEntry{
			{LineupID: 10, UserID: 100, DriverIDs: []DriverID{1, 3}, SubmittedAt: baseTime},
			{LineupID: 11, UserID: 101, DriverIDs: []DriverID{2}, SubmittedAt: baseTime},
			{LineupID: 12, UserID: 102, DriverIDs: []DriverID{1, 2, 9}, SubmittedAt: baseTime},
		},
	}

	got := ScoreRace(rules, in)

	require.Equal(t, RaceID(3), got.RaceID)
	require.Len(t, got.Entries, 3)
	assert.Equal(t, UserID(102), got.Entries[0].UserID)
	assert.True(t, got.Entries[0].Points.Equal(decimal.NewFromInt(44)))
	assert.True(t, got.Entries[0].Cost.Equal(decimal.NewFromInt(90)))
	assert.Equal(t, []DriverID{9}, got.Entries[0].Unpriced)
	assert.Equal(t, UserID(101), got.Entries[1].UserID)
	assert.True(t, got.Entries[1].Points.Equal(decimal.NewFromInt(19)))
	assert.Equal(t, UserID(100), got.Entries[2].UserID)
	assert.True(t, got.Entries[2].Points.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, []int{1, 2, 3}, []int{got.Entries[0].Rank, got.Entries[1].Rank, got.Entries[2].Rank})
}

func TestBuildChampionshipStandings_RankBeyondTableEarnsNothing(t *testing.T) {
	table := DecimalTable(25, 18, 14, 10, 6, 3, 1)
	entries := make([]RaceEntry, 0, 8)
	for i := 1; i <= 8; i++ {
		entries = append(entries, RaceEntry{
			LineupID: LineupID(i),
			UserID:   UserID(i),
			Points:   decimal.NewFromInt(int64(100 - i)),
		})
	}
	race := RaceStandings{RaceID: 1, Entries: RankRace(entries)}

	got := BuildChampionshipStandings(table, []RaceStandings{race}, nil)

	last, ok := FindEntry(got, 8)
	require.True(t, ok)
	assert.True(t, last.ChampionshipPoints.IsZero())
	assert.True(t, last.RawPointsSum.Equal(decimal.NewFromInt(92)))
	assert.Equal(t, 8, last.Rank)
	assert.Equal(t, 1, last.RacesScored)
}

func TestBuildChampionshipStandings_ParticipantsWithoutLineups(t *testing.T) {
	table := DecimalTable(25, 18, 14, 10, 6, 3, 1)
	race := ScoreRace(DefaultRuleSet(1), RaceInput{
		RaceID:  1,
		Results: []RaceResult{{DriverID: 1, FinishPosition: intPtr(1)}},
		Offers:  []DriverOffer{{DriverID: 1, Price: decimal.NewFromInt(10)}},
		Lineups: []LineupEntry{{LineupID: 1, UserID: 20, DriverIDs: []DriverID{1}, SubmittedAt: baseTime}},
	})

	got := BuildChampionshipStandings(table, []RaceStandings{race}, []UserID{30, 20, 10})

	require.Len(t, got, 3)
	assert.Equal(t, UserID(20), got[0].UserID)
	assert.True(t, got[0].ChampionshipPoints.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, UserID(10), got[1].UserID)
	assert.Equal(t, UserID(30), got[2].UserID)
	assert.True(t, got[1].ChampionshipPoints.IsZero())
	assert.Equal(t, 2, got[1].Rank)
	assert.Equal(t, 2, got[2].Rank)
}

func TestBuildChampionshipStandings_EveryParticipantExactlyOnce(t *testing.T) {
	participants := []UserID{5, 3, 3, 1}
	got := BuildChampionshipStandings(DecimalTable(25, 18), nil, participants)

	seen := make(map[UserID]int)
	for _, e := range got {
		seen[e.UserID]++
	}
	assert.Equal(t, map[UserID]int{1: 1, 3: 1, 5: 1}, seen)
	assert.Equal(t, []UserID{1, 3, 5}, []UserID{got[0].UserID, got[1].UserID, got[2].UserID})
	for _, e := range got {
		assert.Equal(t, 1, e.Rank)
	}
}

func TestBuildChampionshipStandings_AccumulatesAcrossRaces(t *testing.T) {
	table := DecimalTable(25, 18, 14)
	races := []RaceStandings{
		{RaceID: 1, Entries: RankRace([]RaceEntry{
			{LineupID: 1, UserID: 1, Points: decimal.NewFromInt(50)},
			{LineupID: 2, UserID: 2, Points: decimal.NewFromInt(40)},
		})},
		{RaceID: 2, Entries: RankRace([]RaceEntry{
			{LineupID: 3, UserID: 1, Points: decimal.NewFromInt(10)},
			{LineupID: 4, UserID: 2, Points: decimal.NewFromInt(30)},
		})},
	}

	got := BuildChampionshipStandings(table, races, []UserID{1, 2})

	require.Len(t, got, 2)
	// Both users have 43 championship points, user 2 wins on raw points 70 vs 60.
	assert.Equal(t, UserID(2), got[0].UserID)
	assert.True(t, got[0].ChampionshipPoints.Equal(decimal.NewFromInt(43)))
	assert.True(t, got[0].RawPointsSum.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, UserID(1), got[1].UserID)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, 1, got[1].Rank)
	assert.Equal(t, 2, got[0].RacesScored)
}

func TestBuildChampionshipStandings_TiedRaceRankAwardsSamePoints(t *testing.T) {
	table := DecimalTable(25, 18, 14)
	race := RaceStandings{RaceID: 1, Entries: RankRace([]RaceEntry{
		{LineupID: 1, UserID: 1, Points: decimal.NewFromInt(40), Cost: decimal.NewFromInt(100)},
		{LineupID: 2, UserID: 2, Points: decimal.NewFromInt(40), Cost: decimal.NewFromInt(90)},
		{LineupID: 3, UserID: 3, Points: decimal.NewFromInt(20), Cost: decimal.NewFromInt(90)},
	})}

	got := BuildChampionshipStandings(table, []RaceStandings{race}, nil)

	u1, _ := FindEntry(got, 1)
	u2, _ := FindEntry(got, 2)
	u3, _ := FindEntry(got, 3)
	assert.True(t, u1.ChampionshipPoints.Equal(decimal.NewFromInt(25)))
	assert.True(t, u2.ChampionshipPoints.Equal(decimal.NewFromInt(25)))
	assert.True(t, u3.ChampionshipPoints.Equal(decimal.NewFromInt(14)))
}

func TestBuildChampionshipStandings_FormerParticipantWithLineupStillListed(t *testing.T) {
	race := RaceStandings{RaceID: 1, Entries: RankRace([]RaceEntry{
		{LineupID: 1, UserID: 77, Points: decimal.NewFromInt(5), SubmittedAt: time.Time{}},
	})}

	got := BuildChampionshipStandings(DecimalTable(25), []RaceStandings{race}, []UserID{1})

	require.Len(t, got, 2)
	assert.Equal(t, UserID(77), got[0].UserID)
}

func TestFindEntry_Missing(t *testing.T) {
	_, ok := FindEntry(nil, 1)
	assert.False(t, ok)
}
