package league

import "context"

// Repository defines read-only lookups over league data.
type Repository interface {
	ListTeams(ctx context.Context) ([]*Team, error)
	ListPlayersByTeam(ctx context.Context, teamID int64) ([]*Player, error)
}
