package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-formula/internal/domain/race"
	qb "github.com/riskibarqy/fantasy-formula/internal/platform/querybuilder"
)

type RaceRepository struct {
	db *sqlx.DB
}

func NewRaceRepository(db *sqlx.DB) *RaceRepository {
	return &RaceRepository{db: db}
}

func (r *RaceRepository) GetByID(ctx context.Context, raceID fantasy.RaceID) (race.Race, bool, error) {
	query, args, err := qb.Select("id", "season_id", "name", "round", "race_date", "budget_override").
		From("races").
		Where(qb.Eq("id", int64(raceID))).
		ToSQL()
	if err != nil {
		return race.Race{}, false, fmt.Errorf("build get race query: %w", err)
	}

	var row raceTableModel
	err = retryOnPooledStatement(func() error {
		return r.db.GetContext(ctx, &row, query, args...)
	})
	if err != nil {
		if isNotFound(err) {
			return race.Race{}, false, nil
		}
		return race.Race{}, false, crerr.Wrapf(err, "get race id=%d", raceID)
	}

	return race.Race{
		ID:             fantasy.RaceID(row.ID),
		SeasonID:       fantasy.SeasonID(row.SeasonID),
		Name:           row.Name,
		Round:          row.Round,
		RaceDate:       row.RaceDate,
		BudgetOverride: decimalPtr(row.BudgetOverride),
	}, true, nil
}

func (r *RaceRepository) ListDriverOffers(ctx context.Context, raceID fantasy.RaceID) ([]fantasy.DriverOffer, error) {
	var rows []raceDriverTableModel
	err := retryOnPooledStatement(func() error {
		rows = rows[:0]
		return listDriverOffers(ctx, r.db, raceID, "", &rows)
	})
	if err != nil {
		return nil, err
	}
	return offersFromRows(rows), nil
}

func (r *RaceRepository) ListResults(ctx context.Context, raceID fantasy.RaceID) ([]fantasy.RaceResult, error) {
	query, args, err := qb.Select("race_id", "driver_id", "finish_position", "starting_position", "fastest_lap", "dnf", "dns").
		From("race_results").
		Where(qb.Eq("race_id", int64(raceID))).
		OrderBy("finish_position ASC NULLS LAST", "driver_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list race results query: %w", err)
	}

	var rows []raceResultTableModel
	err = retryOnPooledStatement(func() error {
		rows = rows[:0]
		return r.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, crerr.Wrapf(err, "list race results race_id=%d", raceID)
	}

	out := make([]fantasy.RaceResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasy.RaceResult{
			RaceID:           fantasy.RaceID(row.RaceID),
			DriverID:         fantasy.DriverID(row.DriverID),
			FinishPosition:   nullIntPtr(row.FinishPosition),
			StartingPosition: nullIntPtr(row.StartingPosition),
			FastestLap:       row.FastestLap,
			DNF:              row.DNF,
			DNS:              row.DNS,
		})
	}
	return out, nil
}

func (r *RaceRepository) ReplaceResults(ctx context.Context, raceID fantasy.RaceID, results []fantasy.RaceResult) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace race results: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("race_results").
		Where(qb.Eq("race_id", int64(raceID))).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete race results query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return crerr.Wrapf(err, "delete race results race_id=%d", raceID)
	}

	if len(results) > 0 {
		rows := make([]raceResultTableModel, 0, len(results))
		for _, item := range results {
			rows = append(rows, raceResultTableModel{
				RaceID:           int64(raceID),
				DriverID:         int64(item.DriverID),
				FinishPosition:   intPtrToNull(item.FinishPosition),
				StartingPosition: intPtrToNull(item.StartingPosition),
				FastestLap:       item.FastestLap,
				DNF:              item.DNF,
				DNS:              item.DNS,
			})
		}
		insertQuery, insertArgs, err := qb.InsertModels("race_results", rows, "")
		if err != nil {
			return fmt.Errorf("build insert race results query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return crerr.Wrapf(err, "insert race results race_id=%d", raceID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace race results: %w", err)
	}
	return nil
}

// listDriverOffers is shared with the lineup upsert, which reads offers inside
// its transaction with a row lock.
func listDriverOffers(ctx context.Context, q sqlx.QueryerContext, raceID fantasy.RaceID, lock string, dest *[]raceDriverTableModel) error {
	query, args, err := qb.Select("race_id", "driver_id", "constructor_id", "price").
		From("race_drivers").
		Where(qb.Eq("race_id", int64(raceID))).
		OrderBy("driver_id").
		Suffix(lock).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build list driver offers query: %w", err)
	}
	if err := sqlx.SelectContext(ctx, q, dest, query, args...); err != nil {
		return crerr.Wrapf(err, "list driver offers race_id=%d", raceID)
	}
	return nil
}

func offersFromRows(rows []raceDriverTableModel) []fantasy.DriverOffer {
	out := make([]fantasy.DriverOffer, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasy.DriverOffer{
			RaceID:        fantasy.RaceID(row.RaceID),
			DriverID:      fantasy.DriverID(row.DriverID),
			ConstructorID: fantasy.ConstructorID(row.ConstructorID),
			Price:         row.Price,
		})
	}
	return out
}
