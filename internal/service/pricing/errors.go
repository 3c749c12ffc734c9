package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: pricing: internal error", domain.ErrPersistence)
)
