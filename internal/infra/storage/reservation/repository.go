package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShiftService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"customer_id",
	"worker_id",
	"datetime",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бронирование с позициями.
// Внутри транзакции строка блокируется (FOR UPDATE) до смены статуса.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}

	reservations, err := r.scanReservations(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, ErrReservationNotFound
	}

	if err := r.attachLineItems(ctx, executor, reservations); err != nil {
		return nil, err
	}

	return reservations[0], nil
}

// FindByWorkerAndDateRange получает бронирования сотрудника, у которых datetime
// попадает в [Start, End] включительно. Если Statuses пустой, статус не фильтруется.
func (r *Repository) FindByWorkerAndDateRange(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"worker_id": filter.WorkerID}).
		Where(squirrel.GtOrEq{"datetime": filter.Start}).
		Where(squirrel.LtOrEq{"datetime": filter.End}).
		OrderBy("datetime ASC")

	if len(filter.Statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByWorkerAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByWorkerAndDateRange - execute query: %v", ErrExecQuery, err)
	}

	reservations, err := r.scanReservations(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err := r.attachLineItems(ctx, executor, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// FindVisibleToWorker получает бронирования для панели сотрудника:
// ожидающие и еще не назначенные (их можно принять или отклонить) и назначенные ему.
func (r *Repository) FindVisibleToWorker(ctx context.Context, workerID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Eq{"status": string(domain.StatusPending)},
				squirrel.Eq{"worker_id": nil},
			},
			squirrel.Eq{"worker_id": workerID},
		}).
		OrderBy("datetime ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindVisibleToWorker - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindVisibleToWorker - execute query: %v", ErrExecQuery, err)
	}

	reservations, err := r.scanReservations(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err := r.attachLineItems(ctx, executor, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// UpdateStatus меняет статус, только если текущий статус равен expected (compare-and-swap).
// Если assignTo задан, неназначенное бронирование назначается этому сотруднику
// (уже назначенный сотрудник не перезаписывается).
func (r *Repository) UpdateStatus(ctx context.Context, id int64, expected, next domain.ReservationStatus, assignTo *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", string(next)).
		Set("updated_at", squirrel.Expr("NOW()"))

	if assignTo != nil {
		updateBuilder = updateBuilder.Set("worker_id", squirrel.Expr("COALESCE(worker_id, ?)", *assignTo))
	}

	query, args, err := updateBuilder.
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": string(expected)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// attachLineItems загружает позиции одним запросом для всех бронирований
func (r *Repository) attachLineItems(ctx context.Context, executor DBExecutor, reservations []*domain.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	ids := make([]int64, len(reservations))
	byID := make(map[int64]*domain.Reservation, len(reservations))
	for i, res := range reservations {
		ids[i] = res.ID
		byID[res.ID] = res
		res.LineItems = make([]domain.LineItem, 0)
	}

	query, args, err := psqlbuilder.Select("reservation_id", "service_name", "quantity").
		From("reservation_line_items").
		Where(squirrel.Expr("reservation_id = ANY(?)", pq.Array(ids))).
		OrderBy("reservation_id ASC", "position ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachLineItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachLineItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reservationID int64
			item          domain.LineItem
			quantity      sql.NullInt64
		)

		if err := rows.Scan(&reservationID, &item.ServiceName, &quantity); err != nil {
			return fmt.Errorf("%w: attachLineItems - scan row: %v", ErrScanRow, err)
		}

		// NULL оставляем нулем, значение по умолчанию подставит domain.LineItem
		if quantity.Valid {
			item.Quantity = int(quantity.Int64)
		}

		if res, ok := byID[reservationID]; ok {
			res.LineItems = append(res.LineItems, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachLineItems - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// scanReservations сканирует результаты запроса в слайс бронирований (без позиций)
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var (
			res                  domain.Reservation
			workerID             sql.NullInt64
			status               string
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&res.ID,
			&res.CustomerID,
			&workerID,
			&res.Datetime,
			&status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		if workerID.Valid {
			id := workerID.Int64
			res.WorkerID = &id
		}
		res.Status = domain.ReservationStatus(status)
		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
