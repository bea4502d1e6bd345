package league

import (
	"context"
	"errors"

	domain "liga/backend/internal/domain/league"
)

// Service exposes read-only league lookups.
type Service struct {
	repo domain.Repository
}

// NewService constructs a league service around the provided repository.
func NewService(repo domain.Repository) *Service {
	return &Service{repo: repo}
}

// ListTeams returns every registered team.
func (s *Service) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	teams, err := s.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []*domain.Team{}
	}
	return teams, nil
}

// ListTeamPlayers returns the squad of the given team with position names.
func (s *Service) ListTeamPlayers(ctx context.Context, teamID int64) ([]*domain.Player, error) {
	if teamID <= 0 {
		return nil, errors.New("team id is required")
	}
	players, err := s.repo.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []*domain.Player{}
	}
	return players, nil
}
