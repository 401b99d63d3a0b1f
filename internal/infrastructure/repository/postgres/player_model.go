package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	PublicID     string         `db:"public_id"`
	DivisionID   string         `db:"division_public_id"`
	SeasonID     string         `db:"season_public_id"`
	TeamID       sql.NullString `db:"team_public_id"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	BirthDate    sql.NullTime   `db:"birth_date"`
	Gender       string         `db:"gender"`
	FamilyID     sql.NullString `db:"family_id"`
	DraftNumber  int            `db:"draft_number"`
	TravelPlayer bool           `db:"travel_player"`
	Returning    bool           `db:"returning_player"`
	Volunteers   []byte         `db:"volunteers"`
}

// volunteerJSON is one element of the json_agg volunteers column.
type volunteerJSON struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	FamilyID     string `json:"family_id"`
	DeclaredRole string `json:"declared_role"`
	DerivedRole  string `json:"derived_role"`
}

type teamTableModel struct {
	PublicID           string         `db:"public_id"`
	DivisionID         string         `db:"division_public_id"`
	SeasonID           string         `db:"season_public_id"`
	Name               string         `db:"name"`
	ManagerName        sql.NullString `db:"manager_name"`
	ManagerVolunteerID sql.NullString `db:"manager_volunteer_public_id"`
}

type draftSessionTableModel struct {
	DivisionID string    `db:"division_public_id"`
	SeasonID   string    `db:"season_public_id"`
	Status     string    `db:"status"`
	State      []byte    `db:"state"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type commitCheckpointTableModel struct {
	DivisionID  string    `db:"division_public_id"`
	SeasonID    string    `db:"season_public_id"`
	ManagerID   string    `db:"manager_id"`
	TeamID      string    `db:"team_public_id"`
	CommittedAt time.Time `db:"committed_at"`
}
