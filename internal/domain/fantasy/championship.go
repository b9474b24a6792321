package fantasy

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type LineupEntry struct {
	LineupID    LineupID
	UserID      UserID
	DriverIDs   []DriverID
	SubmittedAt time.Time
}

// RaceInput carries everything needed to score one race of a championship.
type RaceInput struct {
	RaceID  RaceID
	Results []RaceResult
	Offers  []DriverOffer
	Lineups []LineupEntry
}

type RaceStandings struct {
	RaceID  RaceID
	Entries []RaceEntry
}

// ScoreRace computes driver points, lineup totals and the race ranking.
func ScoreRace(rules RuleSet, in RaceInput) RaceStandings {
	points := CalculateDriverPoints(rules, in.Results)
	prices := IndexOffers(in.Offers)

	entries := make([]RaceEntry, 0, len(in.Lineups))
	for _, item := range in.Lineups {
		score := ScoreLineup(item.DriverIDs, points, prices)
		entries = append(entries, RaceEntry{
			LineupID:    item.LineupID,
			UserID:      item.UserID,
			Points:      score.Points,
			Cost:        score.Cost,
			SubmittedAt: item.SubmittedAt,
			Unpriced:    score.Unpriced,
		})
	}

	return RaceStandings{RaceID: in.RaceID, Entries: RankRace(entries)}
}

type ChampionshipEntry struct {
	UserID             UserID
	ChampionshipPoints decimal.Decimal
	RawPointsSum       decimal.Decimal
	RacesScored        int
	Rank               int
}

// RankingPoints returns the championship points awarded for a race rank, zero
// beyond the end of the table.
func RankingPoints(table []decimal.Decimal, rank int) decimal.Decimal {
	if rank < 1 || rank > len(table) {
		return decimal.Zero
	}
	return table[rank-1]
}

// BuildChampionshipStandings accumulates ranking-table points over the given
// races. Every participant is listed, including those without any lineup.
// Final order is championship points desc, raw points desc, user id asc.
func BuildChampionshipStandings(rankingTable []decimal.Decimal, races []RaceStandings, participants []UserID) []ChampionshipEntry {
	totals := make(map[UserID]*ChampionshipEntry, len(participants))
	entryFor := func(userID UserID) *ChampionshipEntry {
		if e, ok := totals[userID]; ok {
			return e
		}
		e := &ChampionshipEntry{
			UserID:             userID,
			ChampionshipPoints: decimal.Zero,
			RawPointsSum:       decimal.Zero,
		}
		totals[userID] = e
		return e
	}

	for _, userID := range participants {
		entryFor(userID)
	}
	for _, race := range races {
		for _, item := range race.Entries {
			e := entryFor(item.UserID)
			e.ChampionshipPoints = e.ChampionshipPoints.Add(RankingPoints(rankingTable, item.Rank))
			e.RawPointsSum = e.RawPointsSum.Add(item.Points)
			e.RacesScored++
		}
	}

	out := make([]ChampionshipEntry, 0, len(totals))
	for _, e := range totals {
		out = append(out, *e)
	}
	slices.SortFunc(out, func(a, b ChampionshipEntry) int {
		if c := b.ChampionshipPoints.Cmp(a.ChampionshipPoints); c != 0 {
			return c
		}
		if c := b.RawPointsSum.Cmp(a.RawPointsSum); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})

	assignRanks(out, func(e ChampionshipEntry) decimal.Decimal { return e.ChampionshipPoints }, func(e *ChampionshipEntry, rank int) { e.Rank = rank })
	return out
}

// FindEntry returns the standing of one user, if listed.
func FindEntry(standings []ChampionshipEntry, userID UserID) (ChampionshipEntry, bool) {
	for _, e := range standings {
		if e.UserID == userID {
			return e, true
		}
	}
	return ChampionshipEntry{}, false
}
