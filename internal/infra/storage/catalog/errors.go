package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: catalog.repository: failed to execute query", domain.ErrPersistence)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: catalog.repository: failed to scan row", domain.ErrPersistence)
)
