package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-formula/internal/domain/championship"
	"github.com/riskibarqy/fantasy-formula/internal/domain/fantasy"
	qb "github.com/riskibarqy/fantasy-formula/internal/platform/querybuilder"
)

type ChampionshipRepository struct {
	db *sqlx.DB
}

func NewChampionshipRepository(db *sqlx.DB) *ChampionshipRepository {
	return &ChampionshipRepository{db: db}
}

func (r *ChampionshipRepository) GetByID(ctx context.Context, championshipID fantasy.ChampionshipID) (championship.Championship, bool, error) {
	query, args, err := championshipSelectBuilder("c").
		Where(qb.Eq("c.id", int64(championshipID))).
		ToSQL()
	if err != nil {
		return championship.Championship{}, false, fmt.Errorf("build get championship query: %w", err)
	}

	var row championshipTableModel
	err = retryOnPooledStatement(func() error {
		return r.db.GetContext(ctx, &row, query, args...)
	})
	if err != nil {
		if isNotFound(err) {
			return championship.Championship{}, false, nil
		}
		return championship.Championship{}, false, crerr.Wrapf(err, "get championship id=%d", championshipID)
	}
	return championshipFromRow(row), true, nil
}

func (r *ChampionshipRepository) ListParticipants(ctx context.Context, championshipID fantasy.ChampionshipID) ([]championship.Participant, error) {
	query, args, err := qb.Select("cp.user_id", "u.username", "cp.joined_at").
		From("championship_participants cp").
		Join("JOIN users u ON u.id = cp.user_id").
		Where(qb.Eq("cp.championship_id", int64(championshipID))).
		OrderBy("cp.user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list participants query: %w", err)
	}

	var rows []championshipParticipantRow
	err = retryOnPooledStatement(func() error {
		rows = rows[:0]
		return r.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, crerr.Wrapf(err, "list participants championship_id=%d", championshipID)
	}

	out := make([]championship.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, championship.Participant{
			UserID:   fantasy.UserID(row.UserID),
			Username: row.Username,
			JoinedAt: row.JoinedAt,
		})
	}
	return out, nil
}

func (r *ChampionshipRepository) ListByUser(ctx context.Context, userID fantasy.UserID) ([]championship.Championship, error) {
	query, args, err := championshipSelectBuilder("c").
		Join("JOIN championship_participants cp ON cp.championship_id = c.id").
		Where(qb.Eq("cp.user_id", int64(userID))).
		OrderBy("c.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list championships by user query: %w", err)
	}

	var rows []championshipTableModel
	err = retryOnPooledStatement(func() error {
		rows = rows[:0]
		return r.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, crerr.Wrapf(err, "list championships user_id=%d", userID)
	}

	out := make([]championship.Championship, 0, len(rows))
	for _, row := range rows {
		out = append(out, championshipFromRow(row))
	}
	return out, nil
}

func (r *ChampionshipRepository) IsAdmin(ctx context.Context, championshipID fantasy.ChampionshipID, userID fantasy.UserID) (bool, error) {
	query, args, err := qb.Select("1").
		From("championship_admins").
		Where(
			qb.Eq("championship_id", int64(championshipID)),
			qb.Eq("user_id", int64(userID)),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build championship admin query: %w", err)
	}

	var found int
	err = retryOnPooledStatement(func() error {
		return r.db.GetContext(ctx, &found, query, args...)
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, crerr.Wrapf(err, "check championship admin championship_id=%d", championshipID)
	}
	return true, nil
}

func championshipSelectBuilder(alias string) *qb.SelectBuilder {
	return qb.Select(alias+".id", alias+".season_id", alias+".name", alias+".is_active").
		From("championships " + alias)
}

func championshipFromRow(row championshipTableModel) championship.Championship {
	return championship.Championship{
		ID:       fantasy.ChampionshipID(row.ID),
		SeasonID: fantasy.SeasonID(row.SeasonID),
		Name:     row.Name,
		IsActive: row.IsActive,
	}
}
