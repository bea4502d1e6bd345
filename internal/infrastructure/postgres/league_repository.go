package postgres

import (
	"context"

	domain "liga/backend/internal/domain/league"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LeagueRepository reads league data from PostgreSQL.
type LeagueRepository struct {
	pool *pgxpool.Pool
}

// NewLeagueRepository constructs a repository.
func NewLeagueRepository(pool *pgxpool.Pool) *LeagueRepository {
	return &LeagueRepository{pool: pool}
}

// ListTeams returns every team ordered by id.
func (r *LeagueRepository) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	const query = `
SELECT id, name
FROM equipos
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		teams = append(teams, &t)
	}
	return teams, rows.Err()
}

// ListPlayersByTeam returns the squad for a team along with each player's
// position name.
func (r *LeagueRepository) ListPlayersByTeam(ctx context.Context, teamID int64) ([]*domain.Player, error) {
	const query = `
SELECT jugadores.name, posiciones.name AS posicion
FROM jugadores
INNER JOIN posiciones ON jugadores.id_posiciones = posiciones.id
WHERE jugadores.id_equipos = $1
`
	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []*domain.Player
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.Name, &p.Position); err != nil {
			return nil, err
		}
		players = append(players, &p)
	}
	return players, rows.Err()
}
