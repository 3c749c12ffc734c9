package close_shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	shiftRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/shift"
)

// UseCase use case для закрытия смены и фиксации итогов
type UseCase struct {
	shiftRepo ShiftRepository
	ledger    ReservationLedger
	pricing   PricingResolver
	txManager TransactionManager
	clock     Clock
	recorder  SettlementRecorder
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shiftRepo ShiftRepository,
	ledger ReservationLedger,
	pricing PricingResolver,
	txManager TransactionManager,
	clock Clock,
	recorder SettlementRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		shiftRepo: shiftRepo,
		ledger:    ledger,
		pricing:   pricing,
		txManager: txManager,
		clock:     clock,
		recorder:  recorder,
		logger:    logger,
	}
}

// Execute закрывает открытую смену сотрудника за текущий день.
// Чтение бронирований, цен и запись итогов выполняются в одной транзакции,
// строка смены заблокирована до коммита.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.WorkerID <= 0 {
		return nil, ErrInvalidInput
	}

	dateKey := uc.clock.Today()
	uc.logger.Info("CloseShift: worker=%d, date=%s", req.WorkerID, dateKey)

	var closed *domain.WorkSession

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Блокируем смену и проверяем, что она открыта
		session, err := uc.shiftRepo.GetByWorkerAndDate(txCtx, req.WorkerID, dateKey)
		if err != nil {
			if errors.Is(err, shiftRepo.ErrSessionNotFound) {
				uc.logger.Warn("CloseShift: no shift for worker=%d, date=%s", req.WorkerID, dateKey)
				return ErrNoOpenSession
			}
			uc.logger.Error("CloseShift: failed to get shift for worker=%d: %v", req.WorkerID, err)
			return fmt.Errorf("%w: failed to get shift: %v", ErrInternal, err)
		}
		if !session.IsOpen() {
			uc.logger.Warn("CloseShift: shift id=%d is already closed", session.ID)
			return ErrNoOpenSession
		}

		// 2. Бронирования, которые идут в расчет
		reservations, err := uc.ledger.FindForWorkerOnDate(txCtx, req.WorkerID, dateKey, domain.SettlementStatuses...)
		if err != nil {
			uc.logger.Error("CloseShift: failed to get reservations for worker=%d: %v", req.WorkerID, err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 3. Цены на момент закрытия
		prices, err := uc.pricing.Snapshot(txCtx)
		if err != nil {
			uc.logger.Error("CloseShift: failed to get price snapshot: %v", err)
			return fmt.Errorf("%w: failed to get prices: %v", ErrInternal, err)
		}

		settlement := domain.Aggregate(reservations, prices)

		// 4. Замораживаем итоги
		closed, err = uc.shiftRepo.Close(txCtx, req.WorkerID, dateKey, settlement, uc.clock.Now())
		if err != nil {
			if errors.Is(err, shiftRepo.ErrNoOpenSession) {
				uc.logger.Warn("CloseShift: shift for worker=%d closed concurrently", req.WorkerID)
				return ErrNoOpenSession
			}
			uc.logger.Error("CloseShift: failed to close shift for worker=%d: %v", req.WorkerID, err)
			return fmt.Errorf("%w: failed to close shift: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	revenue, _ := closed.TotalRevenue.Float64()
	uc.recorder.ObserveSettlement(closed.TotalCount, revenue)

	uc.logger.Info("CloseShift: shift id=%d closed, count=%d, revenue=%s",
		closed.ID, closed.TotalCount, closed.TotalRevenue.String())

	return toResponse(closed), nil
}

func toResponse(s *domain.WorkSession) *Response {
	resp := &Response{
		ID:           s.ID,
		WorkerID:     s.WorkerID,
		DateKey:      s.DateKey,
		OpenedAt:     s.OpenedAt,
		TotalCount:   s.TotalCount,
		TotalRevenue: s.TotalRevenue,
	}
	if s.ClosedAt != nil {
		resp.ClosedAt = *s.ClosedAt
	}
	return resp
}
