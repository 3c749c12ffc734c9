package shift

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

var (
	// ErrSessionNotFound возвращается, когда смены за день нет
	ErrSessionNotFound = fmt.Errorf("%w: shift.repository: session not found", domain.ErrNotFound)

	// ErrSessionAlreadyOpen возвращается, когда conditional insert не нашел закрытой смены для переоткрытия
	ErrSessionAlreadyOpen = fmt.Errorf("%w: shift.repository: session already open", domain.ErrValidation)

	// ErrNoOpenSession возвращается, когда conditional update не нашел открытой смены
	ErrNoOpenSession = fmt.Errorf("%w: shift.repository: no open session", domain.ErrValidation)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("shift.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: shift.repository: failed to execute query", domain.ErrPersistence)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: shift.repository: failed to scan row", domain.ErrPersistence)
)
