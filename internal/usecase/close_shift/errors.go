package close_shift

import (
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

var (
	// ErrNoOpenSession возвращается, когда за день нет открытой смены
	ErrNoOpenSession = fmt.Errorf("%w: close_shift: no open shift", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: close_shift: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: close_shift: internal error", domain.ErrPersistence)
)
