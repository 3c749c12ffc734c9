package pricing

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	ListAll(ctx context.Context) ([]domain.ServiceCatalogEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
