package domain

// User представляет пользователя как хранимую запись с внешними ключами
type User struct {
	ID        int64
	Name      string
	Email     string
	TeamID    int64
	CompanyID int64
}

// TeamMember представляет пользователя в составе команды вместе с его компанией
// (используется в Team.Members)
type TeamMember struct {
	ID      int64
	Name    string
	Email   string
	Company Company
}
