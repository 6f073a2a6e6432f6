package service

import (
	"context"

	"github.com/aidar/teams-directory/internal/domain"
	"github.com/aidar/teams-directory/internal/repository"
)

// TeamService handles queries and ingestion for teams
type TeamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// ListTeams returns every persisted team with its members attached
func (s *TeamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return s.attachMembers(ctx, teams)
}

// GetTeamsByName returns all teams whose name matches the argument exactly.
// Names are not unique, so the result may hold more than one team
func (s *TeamService) GetTeamsByName(ctx context.Context, name string) ([]domain.Team, error) {
	teams, err := s.teamRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return s.attachMembers(ctx, teams)
}

// GetTeamsByCompany returns teams with at least one member in the named company.
// A team appears at most once; no match yields an empty result, not an error
func (s *TeamService) GetTeamsByCompany(ctx context.Context, companyName string) ([]domain.Team, error) {
	teams, err := s.teamRepo.FindByCompanyName(ctx, companyName)
	if err != nil {
		return nil, err
	}

	return s.attachMembers(ctx, teams)
}

// AddTeam converts the inbound document into new entity records and persists
// them in a single transaction. Returns the id of the created team
func (s *TeamService) AddTeam(ctx context.Context, team *domain.NewTeam) (int64, error) {
	return s.teamRepo.CreateWithMembers(ctx, team)
}

// attachMembers loads the member list for each team with an explicit query
// instead of relationship traversal
func (s *TeamService) attachMembers(ctx context.Context, teams []domain.Team) ([]domain.Team, error) {
	for i := range teams {
		members, err := s.userRepo.ListTeamMembers(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].Members = members
	}

	return teams, nil
}
