package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/domain/lineup"
	qb "github.com/riskibarqy/fantasy-formula/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) GetByUserAndRace(ctx context.Context, userID fantasy.UserID, raceID fantasy.RaceID, championshipID fantasy.ChampionshipID) (lineup.Lineup, bool, error) {
	query, args, err := lineupBaseSelectBuilder().
		Where(
			qb.Eq("l.user_id", int64(userID)),
			qb.Eq("l.race_id", int64(raceID)),
			qb.Eq("l.championship_id", int64(championshipID)),
		).
		ToSQL()
	if err != nil {
		return lineup.Lineup{}, false, fmt.Errorf("build get lineup query: %w", err)
	}

	var row lineupTableModel
	err = retryOnPooledStatement(func() error {
		return r.db.GetContext(ctx, &row, query, args...)
	})
	if err != nil {
		if isNotFound(err) {
			return lineup.Lineup{}, false, nil
		}
		return lineup.Lineup{}, false, crerr.Wrapf(err, "get lineup user_id=%d race_id=%d", userID, raceID)
	}
	return lineupFromRow(row), true, nil
}

func (r *LineupRepository) ListByRace(ctx context.Context, raceID fantasy.RaceID, championshipID fantasy.ChampionshipID) ([]lineup.Lineup, error) {
	query, args, err := lineupBaseSelectBuilder().
		Where(
			qb.Eq("l.race_id", int64(raceID)),
			qb.Eq("l.championship_id", int64(championshipID)),
		).
		OrderBy("l.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineups by race query: %w", err)
	}

	var rows []lineupTableModel
	err = retryOnPooledStatement(func() error {
		rows = rows[:0]
		return r.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, crerr.Wrapf(err, "list lineups race_id=%d", raceID)
	}

	out := make([]lineup.Lineup, 0, len(rows))
	for _, row := range rows {
		out = append(out, lineupFromRow(row))
	}
	return out, nil
}

func (r *LineupRepository) ListRaceIDs(ctx context.Context, championshipID fantasy.ChampionshipID) ([]fantasy.RaceID, error) {
	query, args, err := qb.Select("DISTINCT race_id").
		From("user_race_lineups").
		Where(qb.Eq("championship_id", int64(championshipID))).
		OrderBy("race_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineup races query: %w", err)
	}

	var ids []int64
	err = retryOnPooledStatement(func() error {
		ids = ids[:0]
		return r.db.SelectContext(ctx, &ids, query, args...)
	})
	if err != nil {
		return nil, crerr.Wrapf(err, "list lineup races championship_id=%d", championshipID)
	}

	out := make([]fantasy.RaceID, 0, len(ids))
	for _, id := range ids {
		out = append(out, fantasy.RaceID(id))
	}
	return out, nil
}

// Upsert reads the race offers under FOR SHARE, validates, then replaces the
// lineup row and its selected drivers before committing.
func (r *LineupRepository) Upsert(ctx context.Context, input lineup.UpsertInput, validate lineup.SelectionValidator) (lineup.Lineup, fantasy.ValidatedSelection, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return lineup.Lineup{}, fantasy.ValidatedSelection{}, fmt.Errorf("begin tx upsert lineup: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var offerRows []raceDriverTableModel
	if err := listDriverOffers(ctx, tx, input.RaceID, "FOR SHARE", &offerRows); err != nil {
		return lineup.Lineup{}, fantasy.ValidatedSelection{}, err
	}
	selection, err := validate(offersFromRows(offerRows))
	if err != nil {
		return lineup.Lineup{}, fantasy.ValidatedSelection{}, err
	}

	lineupQuery, lineupArgs, err := qb.InsertModel("user_race_lineups", lineupInsertModel{
		UserID:         int64(input.UserID),
		RaceID:         int64(input.RaceID),
		ChampionshipID: int64(input.ChampionshipID),
		DRSEnabled:     input.DRSEnabled,
		SubmittedAt:    input.SubmittedAt,
	}, `ON CONFLICT (user_id, race_id, championship_id)
DO UPDATE SET
    drs_enabled = EXCLUDED.drs_enabled,
    submitted_at = EXCLUDED.submitted_at
RETURNING id`)
	if err != nil {
		return lineup.Lineup{}, fantasy.ValidatedSelection{}, fmt.Errorf("build upsert lineup query: %w", err)
	}

	var lineupID int64
	if err := tx.QueryRowxContext(ctx, lineupQuery, lineupArgs...).Scan(&lineupID); err != nil {
		return lineup.Lineup{}, fantasy.ValidatedSelection{}, crerr.Wrapf(err, "upsert lineup user_id=%d race_id=%d", input.UserID, input.RaceID)
	}

	deleteQuery, deleteArgs, err := qb.DeleteFrom("user_selected_drivers").
		Where(qb.Eq("lineup_id", lineupID)).
		ToSQL()
	if err != nil {
		return lineup.Lineup{}, fantasy.ValidatedSelection{}, fmt.Errorf("build delete selected drivers query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return lineup.Lineup{}, fantasy.ValidatedSelection{}, crerr.Wrapf(err, "delete selected drivers lineup_id=%d", lineupID)
	}

	drivers := make([]selectedDriverInsertModel, 0, len(selection.DriverIDs))
	for i, driverID := range selection.DriverIDs {
		drivers = append(drivers, selectedDriverInsertModel{LineupID: lineupID, DriverID: int64(driverID), Position: i + 1})
	}
	driverQuery, driverArgs, err := qb.InsertModels("user_selected_drivers", drivers, "")
	if err != nil {
		return lineup.Lineup{}, fantasy.ValidatedSelection{}, fmt.Errorf("build insert selected drivers query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, driverQuery, driverArgs...); err != nil {
		if isUniqueViolation(err) {
			return lineup.Lineup{}, fantasy.ValidatedSelection{}, &fantasy.SelectionError{Field: fantasy.FieldDrivers, Err: fantasy.ErrDuplicateDriver}
		}
		return lineup.Lineup{}, fantasy.ValidatedSelection{}, crerr.Wrapf(err, "insert selected drivers lineup_id=%d", lineupID)
	}

	if err := tx.Commit(); err != nil {
		return lineup.Lineup{}, fantasy.ValidatedSelection{}, fmt.Errorf("commit upsert lineup: %w", err)
	}

	return lineup.Lineup{
		ID:             fantasy.LineupID(lineupID),
		UserID:         input.UserID,
		RaceID:         input.RaceID,
		ChampionshipID: input.ChampionshipID,
		DriverIDs:      append([]fantasy.DriverID(nil), selection.DriverIDs...),
		DRSEnabled:     input.DRSEnabled,
		SubmittedAt:    input.SubmittedAt,
	}, selection, nil
}

func lineupBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"l.id",
		"l.user_id",
		"l.race_id",
		"l.championship_id",
		"l.drs_enabled",
		"l.submitted_at",
		"COALESCE(array_agg(d.driver_id ORDER BY d.position) FILTER (WHERE d.driver_id IS NOT NULL), '{}') AS driver_ids",
	).
		From("user_race_lineups l").
		Join("LEFT JOIN user_selected_drivers d ON d.lineup_id = l.id").
		GroupBy("l.id")
}

func lineupFromRow(row lineupTableModel) lineup.Lineup {
	driverIDs := make([]fantasy.DriverID, 0, len(row.DriverIDs))
	for _, id := range row.DriverIDs {
		driverIDs = append(driverIDs, fantasy.DriverID(id))
	}
	return lineup.Lineup{
		ID:             fantasy.LineupID(row.ID),
		UserID:         fantasy.UserID(row.UserID),
		RaceID:         fantasy.RaceID(row.RaceID),
		ChampionshipID: fantasy.ChampionshipID(row.ChampionshipID),
		DriverIDs:      driverIDs,
		DRSEnabled:     row.DRSEnabled,
		SubmittedAt:    row.SubmittedAt,
	}
}
