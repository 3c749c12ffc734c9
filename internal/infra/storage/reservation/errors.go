package reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("%w: reservation.repository: reservation not found", domain.ErrNotFound)

	// ErrStatusConflict возвращается, когда статус изменился между чтением и условным обновлением
	ErrStatusConflict = fmt.Errorf("%w: reservation.repository: status changed concurrently", domain.ErrPersistence)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: reservation.repository: failed to execute query", domain.ErrPersistence)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: reservation.repository: failed to scan row", domain.ErrPersistence)
)
