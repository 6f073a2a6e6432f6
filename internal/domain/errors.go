package domain

// ErrorCode представляет коды ошибок API
type ErrorCode string

// Коды ошибок API. Отсутствие совпадений ошибкой не считается:
// такие запросы возвращают пустой массив.
const (
	CodeBadRequest ErrorCode = "BAD_REQUEST"    // Некорректное тело запроса
	CodeInternal   ErrorCode = "INTERNAL_ERROR" // Ошибка хранилища или иная внутренняя ошибка
)
