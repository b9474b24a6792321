package httpapi

import (
	"time"

	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-formula/internal/usecase"
	"github.com/shopspring/decimal"
)

type upsertRulesRequest struct {
	FinanceBudget      decimal.Decimal   `json:"finance_budget"`
	MaxRosterSize      int               `json:"max_roster_size" validate:"required,gte=1"`
	DriverFinishPoints []decimal.Decimal `json:"driver_finish_points" validate:"required,min=1"`
	FastestLapBonus    decimal.Decimal   `json:"fastest_lap_bonus"`
	DNFPenalty         decimal.Decimal   `json:"dnf_penalty"`
	RankingPointsTable []decimal.Decimal `json:"ranking_points_table" validate:"required,min=1"`
}

type replaceResultsRequest struct {
	Results []raceResultRequest `json:"results" validate:"required,min=1,dive"`
}

type raceResultRequest struct {
	DriverID         int64 `json:"driver_id" validate:"required,gt=0"`
	FinishPosition   *int  `json:"finish_position" validate:"omitempty,gte=1"`
	StartingPosition *int  `json:"starting_position" validate:"omitempty,gte=1"`
	FastestLap       bool  `json:"fastest_lap"`
	DNF              bool  `json:"dnf"`
	DNS              bool  `json:"dns"`
}

type saveLineupRequest struct {
	DriverIDs  []int64 `json:"drivers" validate:"dive,gt=0"`
	DRSEnabled bool    `json:"drs_enabled"`
}

type rulesDTO struct {
	SeasonID           int64     `json:"season_id"`
	Version            int       `json:"version"`
	FinanceBudget      float64   `json:"finance_budget"`
	MaxRosterSize      int       `json:"max_roster_size"`
	DriverFinishPoints []float64 `json:"driver_finish_points"`
	FastestLapBonus    float64   `json:"fastest_lap_bonus"`
	DNFPenalty         float64   `json:"dnf_penalty"`
	RankingPointsTable []float64 `json:"ranking_points_table"`
	IsDefault          bool      `json:"is_default"`
}

type raceResultDTO struct {
	DriverID         int64 `json:"driver_id"`
	FinishPosition   *int  `json:"finish_position"`
	StartingPosition *int  `json:"starting_position"`
	FastestLap       bool  `json:"fastest_lap"`
	DNF              bool  `json:"dnf"`
	DNS              bool  `json:"dns"`
}

type driverScoreDTO struct {
	DriverID int64   `json:"driver_id"`
	Base     float64 `json:"base"`
	Bonus    float64 `json:"bonus"`
	Penalty  float64 `json:"penalty"`
	Total    float64 `json:"total"`
}

type replacedResultsDTO struct {
	RaceID       int64            `json:"race_id"`
	Stored       int              `json:"stored"`
	DriverPoints []driverScoreDTO `json:"driver_points"`
}

type driverPointsDTO struct {
	RaceID       int64            `json:"race_id"`
	SeasonID     int64            `json:"season_id"`
	RulesVersion int              `json:"rules_version"`
	Drivers      []driverScoreDTO `json:"drivers"`
}

type raceStandingsDTO struct {
	RaceID         int64                   `json:"race_id"`
	ChampionshipID int64                   `json:"championship_id"`
	RulesVersion   int                     `json:"rules_version"`
	HasResults     bool                    `json:"has_results"`
	Lineups        []raceStandingsEntryDTO `json:"lineups"`
}

type raceStandingsEntryDTO struct {
	LineupID        int64     `json:"lineup_id"`
	UserID          int64     `json:"user_id"`
	Points          float64   `json:"points"`
	Cost            float64   `json:"cost"`
	Rank            int       `json:"rank"`
	SubmittedAt     time.Time `json:"submitted_at"`
	UnpricedDrivers []int64   `json:"unpriced_drivers,omitempty"`
}

type savedLineupDTO struct {
	LineupID       int64     `json:"lineup_id"`
	RaceID         int64     `json:"race_id"`
	ChampionshipID int64     `json:"championship_id"`
	Drivers        []int64   `json:"drivers"`
	DRSEnabled     bool      `json:"drs_enabled"`
	TotalCost      float64   `json:"total_cost"`
	Budget         float64   `json:"budget"`
	Remaining      float64   `json:"remaining"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type lineupViewDTO struct {
	LineupID        int64     `json:"lineup_id"`
	UserID          int64     `json:"user_id"`
	RaceID          int64     `json:"race_id"`
	ChampionshipID  int64     `json:"championship_id"`
	Drivers         []int64   `json:"drivers"`
	DRSEnabled      bool      `json:"drs_enabled"`
	SubmittedAt     time.Time `json:"submitted_at"`
	Points          float64   `json:"points"`
	TotalCost       float64   `json:"total_cost"`
	Budget          float64   `json:"budget"`
	UnpricedDrivers []int64   `json:"unpriced_drivers,omitempty"`
}

type championshipStandingsDTO struct {
	ChampionshipID int64                     `json:"championship_id"`
	SeasonID       int64                     `json:"season_id"`
	RulesVersion   int                       `json:"rules_version"`
	ScoredRaces    []int64                   `json:"scored_races"`
	Standings      []championshipStandingDTO `json:"standings"`
	User           *championshipStandingDTO  `json:"user,omitempty"`
}

type championshipStandingDTO struct {
	Position    int     `json:"position"`
	UserID      int64   `json:"user_id"`
	Username    string  `json:"username"`
	Points      float64 `json:"points"`
	RawPoints   float64 `json:"raw_points"`
	RacesScored int     `json:"races_scored"`
}

type myChampionshipDTO struct {
	ChampionshipID int64   `json:"championship_id"`
	SeasonID       int64   `json:"season_id"`
	Name           string  `json:"name"`
	IsActive       bool    `json:"is_active"`
	Participants   int     `json:"participants"`
	Position       int     `json:"position"`
	Points         float64 `json:"points"`
	RawPoints      float64 `json:"raw_points"`
}

func (req upsertRulesRequest) toRuleSet(seasonID fantasy.SeasonID) fantasy.RuleSet {
	return fantasy.RuleSet{
		SeasonID:           seasonID,
		FinanceBudget:      req.FinanceBudget,
		MaxRosterSize:      req.MaxRosterSize,
		DriverFinishPoints: req.DriverFinishPoints,
		FastestLapBonus:    req.FastestLapBonus,
		DNFPenalty:         req.DNFPenalty,
		RankingPointsTable: req.RankingPointsTable,
	}
}

func (req replaceResultsRequest) toResults(raceID fantasy.RaceID) []fantasy.RaceResult {
	out := make([]fantasy.RaceResult, 0, len(req.Results))
	for _, row := range req.Results {
		out = append(out, fantasy.RaceResult{
			RaceID:           raceID,
			DriverID:         fantasy.DriverID(row.DriverID),
			FinishPosition:   row.FinishPosition,
			StartingPosition: row.StartingPosition,
			FastestLap:       row.FastestLap,
			DNF:              row.DNF,
			DNS:              row.DNS,
		})
	}
	return out
}

func floats(values []decimal.Decimal) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		out = append(out, v.InexactFloat64())
	}
	return out
}

func driverIDs(ids []fantasy.DriverID) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}
	return out
}

func toDriverIDs(ids []int64) []fantasy.DriverID {
	out := make([]fantasy.DriverID, 0, len(ids))
	for _, id := range ids {
		out = append(out, fantasy.DriverID(id))
	}
	return out
}

func rulesToDTO(r fantasy.RuleSet) rulesDTO {
	return rulesDTO{
		SeasonID:           int64(r.SeasonID),
		Version:            r.Version,
		FinanceBudget:      r.FinanceBudget.InexactFloat64(),
		MaxRosterSize:      r.MaxRosterSize,
		DriverFinishPoints: floats(r.DriverFinishPoints),
		FastestLapBonus:    r.FastestLapBonus.InexactFloat64(),
		DNFPenalty:         r.DNFPenalty.InexactFloat64(),
		RankingPointsTable: floats(r.RankingPointsTable),
		IsDefault:          r.IsDefault,
	}
}

func raceResultsToDTO(rows []fantasy.RaceResult) []raceResultDTO {
	out := make([]raceResultDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, raceResultDTO{
			DriverID:         int64(row.DriverID),
			FinishPosition:   row.FinishPosition,
			StartingPosition: row.StartingPosition,
			FastestLap:       row.FastestLap,
			DNF:              row.DNF,
			DNS:              row.DNS,
		})
	}
	return out
}

func driverScoresToDTO(scores []fantasy.DriverScore) []driverScoreDTO {
	out := make([]driverScoreDTO, 0, len(scores))
	for _, s := range scores {
		out = append(out, driverScoreDTO{
			DriverID: int64(s.DriverID),
			Base:     s.Base.InexactFloat64(),
			Bonus:    s.Bonus.InexactFloat64(),
			Penalty:  s.Penalty.InexactFloat64(),
			Total:    s.Total.InexactFloat64(),
		})
	}
	return out
}

func raceStandingsToDTO(v usecase.RaceStandingsView) raceStandingsDTO {
	lineups := make([]raceStandingsEntryDTO, 0, len(v.Entries))
	for _, e := range v.Entries {
		entry := raceStandingsEntryDTO{
			LineupID:    int64(e.LineupID),
			UserID:      int64(e.UserID),
			Points:      e.Points.InexactFloat64(),
			Cost:        e.Cost.InexactFloat64(),
			Rank:        e.Rank,
			SubmittedAt: e.SubmittedAt.UTC(),
		}
		if len(e.Unpriced) > 0 {
			entry.UnpricedDrivers = driverIDs(e.Unpriced)
		}
		lineups = append(lineups, entry)
	}
	return raceStandingsDTO{
		RaceID:         int64(v.RaceID),
		ChampionshipID: int64(v.ChampionshipID),
		RulesVersion:   v.RulesVersion,
		HasResults:     v.HasResults,
		Lineups:        lineups,
	}
}

func savedLineupToDTO(v usecase.SavedLineup) savedLineupDTO {
	return savedLineupDTO{
		LineupID:       int64(v.Lineup.ID),
		RaceID:         int64(v.Lineup.RaceID),
		ChampionshipID: int64(v.Lineup.ChampionshipID),
		Drivers:        driverIDs(v.Lineup.DriverIDs),
		DRSEnabled:     v.Lineup.DRSEnabled,
		TotalCost:      v.Selection.Cost.InexactFloat64(),
		Budget:         v.Selection.Budget.InexactFloat64(),
		Remaining:      v.Selection.Remaining.InexactFloat64(),
		SubmittedAt:    v.Lineup.SubmittedAt.UTC(),
	}
}

func lineupViewToDTO(v usecase.LineupView) lineupViewDTO {
	item := lineupBaseDTO(v.Lineup)
	item.Points = v.Points.InexactFloat64()
	item.TotalCost = v.Cost.InexactFloat64()
	item.Budget = v.Budget.InexactFloat64()
	if len(v.Unpriced) > 0 {
		item.UnpricedDrivers = driverIDs(v.Unpriced)
	}
	return item
}

func lineupBaseDTO(l lineup.Lineup) lineupViewDTO {
	return lineupViewDTO{
		LineupID:       int64(l.ID),
		UserID:         int64(l.UserID),
		RaceID:         int64(l.RaceID),
		ChampionshipID: int64(l.ChampionshipID),
		Drivers:        driverIDs(l.DriverIDs),
		DRSEnabled:     l.DRSEnabled,
		SubmittedAt:    l.SubmittedAt.UTC(),
	}
}

func championshipStandingToDTO(s usecase.ChampionshipStanding) championshipStandingDTO {
	return championshipStandingDTO{
		Position:    s.Position,
		UserID:      int64(s.UserID),
		Username:    s.Username,
		Points:      s.Points.InexactFloat64(),
		RawPoints:   s.RawPoints.InexactFloat64(),
		RacesScored: s.RacesScored,
	}
}

func championshipStandingsToDTO(v usecase.ChampionshipStandingsView) championshipStandingsDTO {
	races := make([]int64, 0, len(v.ScoredRaces))
	for _, id := range v.ScoredRaces {
		races = append(races, int64(id))
	}
	standings := make([]championshipStandingDTO, 0, len(v.Standings))
	for _, s := range v.Standings {
		standings = append(standings, championshipStandingToDTO(s))
	}

	out := championshipStandingsDTO{
		ChampionshipID: int64(v.ChampionshipID),
		SeasonID:       int64(v.SeasonID),
		RulesVersion:   v.RulesVersion,
		ScoredRaces:    races,
		Standings:      standings,
	}
	if v.User != nil {
		user := championshipStandingToDTO(*v.User)
		out.User = &user
	}
	return out
}

func myChampionshipsToDTO(items []usecase.MyChampionship) []myChampionshipDTO {
	out := make([]myChampionshipDTO, 0, len(items))
	for _, item := range items {
		out = append(out, myChampionshipDTO{
			ChampionshipID: int64(item.Championship.ID),
			SeasonID:       int64(item.Championship.SeasonID),
			Name:           item.Championship.Name,
			IsActive:       item.Championship.IsActive,
			Participants:   item.Participants,
			Position:       item.Standing.Position,
			Points:         item.Standing.Points.InexactFloat64(),
			RawPoints:      item.Standing.RawPoints.InexactFloat64(),
		})
	}
	return out
}
