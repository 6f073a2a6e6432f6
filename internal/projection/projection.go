package projection

import "github.com/aidar/teams-directory/internal/domain"

// TeamDocument представляет команду в формате внешнего API
type TeamDocument struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name"`
	Members []UserDocument `json:"members"`
}

// UserDocument представляет участника команды в формате внешнего API.
// Компания встраивается объектом, а не ссылкой по id
type UserDocument struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Company CompanyDocument `json:"company"`
	Email   string          `json:"email"`
}

// CompanyDocument представляет компанию в формате внешнего API
type CompanyDocument struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

// ProjectCompany преобразует компанию в документ
func ProjectCompany(company domain.Company) CompanyDocument {
	return CompanyDocument{
		Name: company.Name,
		ID:   company.ID,
	}
}

// ProjectMember преобразует участника команды в документ со встроенной компанией
func ProjectMember(member domain.TeamMember) UserDocument {
	return UserDocument{
		ID:      member.ID,
		Name:    member.Name,
		Company: ProjectCompany(member.Company),
		Email:   member.Email,
	}
}

// ProjectTeam преобразует команду в документ. Участники следуют в порядке,
// в котором их вернуло хранилище
func ProjectTeam(team domain.Team) TeamDocument {
	// Empty slice instead of nil so a team without members serializes as []
	members := make([]UserDocument, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, ProjectMember(member))
	}

	return TeamDocument{
		ID:      team.ID,
		Name:    team.Name,
		Members: members,
	}
}

// ProjectTeams преобразует набор команд в документы. Сериализация происходит
// один раз на верхнем уровне, поэтому вложенные документы остаются значениями,
// а не заранее закодированными строками
func ProjectTeams(teams []domain.Team) []TeamDocument {
	// Empty slice instead of nil so a no-match query serializes as []
	documents := make([]TeamDocument, 0, len(teams))
	for _, team := range teams {
		documents = append(documents, ProjectTeam(team))
	}

	return documents
}
