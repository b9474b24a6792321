package fantasy

// Identifiers are distinct integer types so a user id can never be used as a
// driver id, and aggregation maps always share one canonical key representation.
type (
	UserID         int64
	DriverID       int64
	ConstructorID  int64
	RaceID         int64
	ChampionshipID int64
	SeasonID       int64
	LineupID       int64
)
