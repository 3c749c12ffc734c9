package reservations

import (
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("%w: reservation not found", domain.ErrNotFound)

	// ErrInvalidTransition возвращается при переходе статуса вне конечного автомата
	ErrInvalidTransition = fmt.Errorf("%w: invalid status transition", domain.ErrValidation)

	// ErrNotAssignedWorker возвращается, когда статус меняет не назначенный сотрудник
	ErrNotAssignedWorker = fmt.Errorf("%w: reservation is assigned to another worker", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: reservations: internal error", domain.ErrPersistence)
)
