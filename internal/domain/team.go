package domain

// Team представляет команду с участниками
type Team struct {
	ID      int64
	Name    string
	Members []TeamMember
}

// NewTeam представляет входящий документ для создания команды
type NewTeam struct {
	Name    string      `json:"name"`
	Members []NewMember `json:"members"`
}

// NewMember представляет участника во входящем документе (компания задается именем)
type NewMember struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}
