package shifts

import (
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

var (
	// ErrAlreadyOpen возвращается при попытке открыть уже открытую смену
	ErrAlreadyOpen = fmt.Errorf("%w: shift is already open", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: shifts: internal error", domain.ErrPersistence)
)
