package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/teams-directory/internal/domain"
)

// UserRepository реализует repository.UserRepository для PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository создает новый экземпляр UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// ListTeamMembers возвращает участников команды вместе с их компаниями.
// Порядок соответствует порядку вставки (id назначаются хранилищем по возрастанию)
func (r *UserRepository) ListTeamMembers(ctx context.Context, teamID int64) ([]domain.TeamMember, error) {
	query := `
		SELECT u.id, u.name, u.email, c.id, c.name
		FROM users u
		INNER JOIN companies c ON c.id = u.company_id
		WHERE u.team_id = $1
		ORDER BY u.id
	`

	rows, err := r.db.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var member domain.TeamMember
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Email,
			&member.Company.ID,
			&member.Company.Name,
		); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}
