package domain

// Company представляет компанию, в которой числятся пользователи
type Company struct {
	ID   int64
	Name string
}
