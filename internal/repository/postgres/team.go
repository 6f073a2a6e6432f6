package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/teams-directory/internal/domain"
)

// TeamRepository реализует repository.TeamRepository для PostgreSQL
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository создает новый экземпляр TeamRepository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithMembers сохраняет команду, её новые компании и пользователей
// в одной транзакции. Компании переиспользуются по названию только в рамках
// этого вызова: уже сохраненные ранее компании с тем же названием не ищутся
func (r *TeamRepository) CreateWithMembers(ctx context.Context, team *domain.NewTeam) (int64, error) {
	// Start transaction
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore error as it will fail if transaction was committed
	}()

	// Insert team
	var teamID int64
	err = tx.QueryRow(ctx, `INSERT INTO teams (name) VALUES ($1) RETURNING id`, team.Name).Scan(&teamID)
	if err != nil {
		return 0, err
	}

	companyQuery := `INSERT INTO companies (name) VALUES ($1) RETURNING id`
	userQuery := `
		INSERT INTO users (name, email, team_id, company_id)
		VALUES ($1, $2, $3, $4)
	`

	// Companies created so far in this call, keyed by name
	created := make(map[string]*domain.Company)

	for _, m := range team.Members {
		company, ok := created[m.Company]
		if !ok {
			company = &domain.Company{Name: m.Company}
			if err := tx.QueryRow(ctx, companyQuery, company.Name).Scan(&company.ID); err != nil {
				return 0, err
			}
			created[m.Company] = company
		}

		user := domain.User{
			Name:      m.Name,
			Email:     m.Email,
			TeamID:    teamID,
			CompanyID: company.ID,
		}
		if _, err := tx.Exec(ctx, userQuery, user.Name, user.Email, user.TeamID, user.CompanyID); err != nil {
			return 0, err
		}
	}

	// Commit transaction
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return teamID, nil
}

// List возвращает все команды без участников
func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	query := `SELECT id, name FROM teams ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// FindByName возвращает все команды с точно совпадающим названием.
// Названия не уникальны, поэтому совпадений может быть несколько
func (r *TeamRepository) FindByName(ctx context.Context, name string) ([]domain.Team, error) {
	query := `SELECT id, name FROM teams WHERE name = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// FindByCompanyName возвращает команды, где хотя бы один участник числится
// в компании с указанным названием
func (r *TeamRepository) FindByCompanyName(ctx context.Context, companyName string) ([]domain.Team, error) {
	// EXISTS keeps each team in the result once no matter how many members match
	query := `
		SELECT t.id, t.name
		FROM teams t
		WHERE EXISTS (
			SELECT 1
			FROM users u
			INNER JOIN companies c ON c.id = u.company_id
			WHERE u.team_id = t.id AND c.name = $1
		)
		ORDER BY t.id
	`

	rows, err := r.db.Query(ctx, query, companyName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}
