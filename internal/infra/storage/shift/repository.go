package shift

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShiftService/pkg/psqlbuilder"
)

const table = "work_sessions"

var columns = []string{
	"id",
	"worker_id",
	"date_key",
	"opened_at",
	"closed_at",
	"total_count",
	"total_revenue",
	"created_at",
	"updated_at",
}

const returningColumns = "RETURNING id, worker_id, date_key, opened_at, closed_at, total_count, total_revenue, created_at, updated_at"

// Repository репозиторий рабочих смен
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWorkerAndDate получает смену сотрудника за день.
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы закрытие смены
// было сериализовано с параллельными open/close для того же (worker, day).
func (r *Repository) GetByWorkerAndDate(ctx context.Context, workerID int64, dateKey string) (*domain.WorkSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"worker_id": workerID, "date_key": dateKey})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWorkerAndDate - build select query: %v", ErrBuildQuery, err)
	}

	session, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWorkerAndDate - scan session: %v", ErrScanRow, err)
	}

	return session, nil
}

// Open открывает смену одним атомарным запросом:
// - смены нет -> вставляется новая с нулевыми итогами;
// - смена закрыта -> переоткрывается (openedAt = now, closedAt = NULL, итоги обнуляются);
// - смена открыта -> условие WHERE не выполняется, строка не возвращается -> ErrSessionAlreadyOpen.
func (r *Repository) Open(ctx context.Context, workerID int64, dateKey string, openedAt time.Time) (*domain.WorkSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("worker_id", "date_key", "opened_at", "total_count", "total_revenue").
		Values(workerID, dateKey, openedAt, 0, decimal.Zero).
		Suffix("ON CONFLICT (worker_id, date_key) DO UPDATE SET " +
			"opened_at = EXCLUDED.opened_at, closed_at = NULL, total_count = 0, total_revenue = 0, updated_at = NOW() " +
			"WHERE " + table + ".closed_at IS NOT NULL " + returningColumns).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Open - build upsert query: %v", ErrBuildQuery, err)
	}

	session, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionAlreadyOpen
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Open - execute upsert: %v", ErrExecQuery, err)
	}

	return session, nil
}

// Close закрывает открытую смену и сохраняет итоги.
// Обновление условное (closed_at IS NULL): если смену уже закрыли, возвращается ErrNoOpenSession.
func (r *Repository) Close(ctx context.Context, workerID int64, dateKey string, settlement domain.Settlement, closedAt time.Time) (*domain.WorkSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("closed_at", closedAt).
		Set("total_count", settlement.Count).
		Set("total_revenue", settlement.Revenue).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"worker_id": workerID, "date_key": dateKey}).
		Where(squirrel.Eq{"closed_at": nil}).
		Suffix(returningColumns).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Close - build update query: %v", ErrBuildQuery, err)
	}

	session, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoOpenSession
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Close - execute update: %v", ErrExecQuery, err)
	}

	return session, nil
}

// scanSession сканирует одну строку work_sessions
func scanSession(row *sql.Row) (*domain.WorkSession, error) {
	var (
		session              domain.WorkSession
		closedAt             sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&session.ID,
		&session.WorkerID,
		&session.DateKey,
		&session.OpenedAt,
		&closedAt,
		&session.TotalCount,
		&session.TotalRevenue,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if closedAt.Valid {
		t := closedAt.Time
		session.ClosedAt = &t
	}
	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time

	return &session, nil
}
