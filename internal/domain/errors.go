package domain

import "errors"

// Категории ошибок. Sentinel-ошибки пакетов оборачивают одну из них,
// чтобы вызывающий код мог классифицировать ошибку через errors.Is.
var (
	// ErrValidation нарушение инварианта, о котором сообщаем пользователю (без повторов)
	ErrValidation = errors.New("validation error")

	// ErrNotFound запрошенная сущность не существует
	ErrNotFound = errors.New("not found")

	// ErrPersistence хранилище недоступно или конфликт записи
	ErrPersistence = errors.New("persistence error")

	// ErrUnexpected все остальное
	ErrUnexpected = errors.New("unexpected error")
)
