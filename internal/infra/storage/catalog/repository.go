package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShiftService/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll получает все услуги каталога с текущими ценами
func (r *Repository) ListAll(ctx context.Context) ([]domain.ServiceCatalogEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("name", "price").
		From("services").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.ServiceCatalogEntry, 0)
	for rows.Next() {
		var entry domain.ServiceCatalogEntry
		if err := rows.Scan(&entry.Name, &entry.Price); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
