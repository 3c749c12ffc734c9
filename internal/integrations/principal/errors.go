package principal

import "errors"

var (
	// ErrUnauthorized возвращается, когда запрос не содержит валидного сотрудника
	ErrUnauthorized = errors.New("principal: unauthorized")

	// ErrInvalidConfig возвращается при некорректной настройке резолвера
	ErrInvalidConfig = errors.New("principal: invalid resolver config")
)
