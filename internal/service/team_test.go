package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aidar/teams-directory/internal/domain"
	"github.com/aidar/teams-directory/internal/repository"
)

type teamRepoMock struct {
	mock.Mock
}

var _ repository.TeamRepository = (*teamRepoMock)(nil)

func (m *teamRepoMock) CreateWithMembers(ctx context.Context, team *domain.NewTeam) (int64, error) {
	args := m.Called(ctx, team)
	return args.Get(0).(int64), args.Error(1)
}

func (m *teamRepoMock) List(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *teamRepoMock) FindByName(ctx context.Context, name string) ([]domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *teamRepoMock) FindByCompanyName(ctx context.Context, companyName string) ([]domain.Team, error) {
	args := m.Called(ctx, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

type userRepoMock struct {
	mock.Mock
}

var _ repository.UserRepository = (*userRepoMock)(nil)

func (m *userRepoMock) ListTeamMembers(ctx context.Context, teamID int64) ([]domain.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

func TestListTeamsAttachesMembers(t *testing.T) {
	teamRepo := new(teamRepoMock)
	userRepo := new(userRepoMock)

	teamRepo.On("List", mock.Anything).Return([]domain.Team{
		{ID: 1, Name: "NWA"},
		{ID: 2, Name: "GFUNK"},
	}, nil)

	nwaMembers := []domain.TeamMember{
		{ID: 1, Name: "Ice Cube", Email: "icecube@gmail.com", Company: domain.Company{ID: 1, Name: "Ruthless_Records"}},
		{ID: 2, Name: "MC Ren", Email: "ren@hotmail.com", Company: domain.Company{ID: 1, Name: "Ruthless_Records"}},
	}
	gfunkMembers := []domain.TeamMember{
		{ID: 3, Name: "Warren G", Email: "warren@gmail.com", Company: domain.Company{ID: 2, Name: "Def_Jam_Records"}},
	}
	userRepo.On("ListTeamMembers", mock.Anything, int64(1)).Return(nwaMembers, nil)
	userRepo.On("ListTeamMembers", mock.Anything, int64(2)).Return(gfunkMembers, nil)

	svc := NewTeamService(teamRepo, userRepo)

	teams, err := svc.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, nwaMembers, teams[0].Members)
	assert.Equal(t, gfunkMembers, teams[1].Members)

	teamRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestGetTeamsByNameNoMatch(t *testing.T) {
	teamRepo := new(teamRepoMock)
	userRepo := new(userRepoMock)

	teamRepo.On("FindByName", mock.Anything, "Ghost").Return([]domain.Team{}, nil)

	svc := NewTeamService(teamRepo, userRepo)

	teams, err := svc.GetTeamsByName(context.Background(), "Ghost")
	require.NoError(t, err)
	assert.Empty(t, teams)

	userRepo.AssertNotCalled(t, "ListTeamMembers", mock.Anything, mock.Anything)
}

func TestGetTeamsByCompanyPropagatesStoreError(t *testing.T) {
	teamRepo := new(teamRepoMock)
	userRepo := new(userRepoMock)

	storeErr := errors.New("connection reset")
	teamRepo.On("FindByCompanyName", mock.Anything, "Ruthless_Records").Return(nil, storeErr)

	svc := NewTeamService(teamRepo, userRepo)

	_, err := svc.GetTeamsByCompany(context.Background(), "Ruthless_Records")
	require.ErrorIs(t, err, storeErr)
}

func TestAddTeamDelegatesToRepository(t *testing.T) {
	teamRepo := new(teamRepoMock)
	userRepo := new(userRepoMock)

	newTeam := &domain.NewTeam{
		Name: "NWA",
		Members: []domain.NewMember{
			{Name: "Ice Cube", Email: "icecube@gmail.com", Company: "Ruthless_Records"},
		},
	}
	teamRepo.On("CreateWithMembers", mock.Anything, newTeam).Return(int64(1), nil)

	svc := NewTeamService(teamRepo, userRepo)

	id, err := svc.AddTeam(context.Background(), newTeam)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	teamRepo.AssertExpectations(t)
}
