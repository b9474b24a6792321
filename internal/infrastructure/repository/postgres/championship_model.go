package postgres

import "time"

type championshipTableModel struct {
	ID       int64  `db:"id"`
	SeasonID int64  `db:"season_id"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
}

type championshipParticipantRow struct {
	UserID   int64     `db:"user_id"`
	Username string    `db:"username"`
	JoinedAt time.Time `db:"joined_at"`
}
