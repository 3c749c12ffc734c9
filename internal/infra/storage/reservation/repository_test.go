package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
)

var day = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewRepository(dbmetrics.Wrap(sqlDB, nil, "test")), mock
}

func TestFindByWorkerAndDateRange_WithStatusesAndLineItems(t *testing.T) {
	repo, mock := newRepo(t)
	end := day.Add(24*time.Hour - time.Millisecond)

	mock.ExpectQuery(`SELECT .* FROM reservations WHERE worker_id = \$1 AND datetime >= \$2 AND datetime <= \$3 AND status IN \(\$4,\$5\) ORDER BY datetime ASC`).
		WithArgs(int64(7), day, end, "accepted", "done").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, 100, 7, day.Add(9*time.Hour), "accepted", day, day).
			AddRow(2, 101, 7, day.Add(11*time.Hour), "done", day, day))

	mock.ExpectQuery(`SELECT reservation_id, service_name, quantity FROM reservation_line_items WHERE reservation_id = ANY\(\$1\) ORDER BY reservation_id ASC, position ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"reservation_id", "service_name", "quantity"}).
			AddRow(1, "Wash", 2).
			AddRow(2, "Wax", nil))

	got, err := repo.FindByWorkerAndDateRange(context.Background(), domain.ReservationFilter{
		WorkerID: 7,
		Start:    day,
		End:      end,
		Statuses: domain.SettlementStatuses,
	})

	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, domain.StatusAccepted, got[0].Status)
	require.NotNil(t, got[0].WorkerID)
	assert.Equal(t, int64(7), *got[0].WorkerID)
	assert.Equal(t, []domain.LineItem{{ServiceName: "Wash", Quantity: 2}}, got[0].LineItems)

	assert.Equal(t, []domain.LineItem{{ServiceName: "Wax", Quantity: 0}}, got[1].LineItems)
	assert.Equal(t, 1, got[1].LineItems[0].EffectiveQuantity())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByWorkerAndDateRange_NoStatusFilterNoRows(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .* FROM reservations WHERE worker_id = \$1 AND datetime >= \$2 AND datetime <= \$3 ORDER BY datetime ASC`).
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.FindByWorkerAndDateRange(context.Background(), domain.ReservationFilter{WorkerID: 7, Start: day, End: day})

	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .* FROM reservations WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_Unassigned(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .* FROM reservations WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(42, 100, nil, day, "pending", day, day))
	mock.ExpectQuery(`FROM reservation_line_items`).
		WillReturnRows(sqlmock.NewRows([]string{"reservation_id", "service_name", "quantity"}))

	got, err := repo.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Nil(t, got.WorkerID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Empty(t, got.LineItems)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_AssignsAndChecksExpected(t *testing.T) {
	repo, mock := newRepo(t)
	worker := int64(7)

	mock.ExpectExec(`UPDATE reservations SET status = \$1, updated_at = NOW\(\), worker_id = COALESCE\(worker_id, \$2\) WHERE id = \$3 AND status = \$4`).
		WithArgs("accepted", int64(7), int64(42), "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 42, domain.StatusPending, domain.StatusAccepted, &worker)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Conflict(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE reservations SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 42, domain.StatusAccepted, domain.StatusDone, nil)

	assert.ErrorIs(t, err, ErrStatusConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_ExecError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE reservations`).WillReturnError(errors.New("deadlock detected"))

	err := repo.UpdateStatus(context.Background(), 42, domain.StatusAccepted, domain.StatusDone, nil)

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestFindVisibleToWorker(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .* FROM reservations WHERE \(\(status = \$1 AND worker_id IS NULL\) OR worker_id = \$2\) ORDER BY datetime ASC`).
		WithArgs("pending", int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(5, 100, nil, day, "pending", day, day))
	mock.ExpectQuery(`FROM reservation_line_items`).
		WillReturnRows(sqlmock.NewRows([]string{"reservation_id", "service_name", "quantity"}).AddRow(5, "Wash", 1))

	got, err := repo.FindVisibleToWorker(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Wash", got[0].LineItems[0].ServiceName)
	require.NoError(t, mock.ExpectationsWereMet())
}
