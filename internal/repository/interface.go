package repository

import (
	"context"

	"github.com/aidar/teams-directory/internal/domain"
)

// TeamRepository определяет методы для работы с данными команд
type TeamRepository interface {
	// CreateWithMembers сохраняет команду, её новые компании и пользователей
	// в одной транзакции и возвращает id созданной команды
	CreateWithMembers(ctx context.Context, team *domain.NewTeam) (int64, error)

	// List возвращает все команды (без участников)
	List(ctx context.Context) ([]domain.Team, error)

	// FindByName возвращает все команды с точно совпадающим названием
	FindByName(ctx context.Context, name string) ([]domain.Team, error)

	// FindByCompanyName возвращает команды, где хотя бы один участник
	// числится в компании с указанным названием
	FindByCompanyName(ctx context.Context, companyName string) ([]domain.Team, error)
}

// UserRepository определяет методы для работы с данными пользователей
type UserRepository interface {
	// ListTeamMembers возвращает участников команды вместе с их компаниями
	ListTeamMembers(ctx context.Context, teamID int64) ([]domain.TeamMember, error)
}
