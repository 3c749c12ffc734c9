package shifts

import (
	"context"
	"errors"
	"fmt"

	shiftRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/shift"
	"github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
)

// Service управляет открытием смены и сводкой за день.
// Закрытие смены выполняется в usecase close_shift.
type Service struct {
	shiftRepo ShiftRepository
	ledger    ReservationLedger
	clock     Clock
	logger    Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(shiftRepo ShiftRepository, ledger ReservationLedger, clock Clock, logger Logger) *Service {
	return &Service{
		shiftRepo: shiftRepo,
		ledger:    ledger,
		clock:     clock,
		logger:    logger,
	}
}

// Open открывает смену сотрудника за текущий день.
// Закрытая смена переоткрывается с нулевыми итогами, открытая дает ErrAlreadyOpen.
func (s *Service) Open(ctx context.Context, workerID int64) (*models.ShiftResponse, error) {
	dateKey := s.clock.Today()
	s.logger.Info("Open: opening shift for worker=%d, date=%s", workerID, dateKey)

	session, err := s.shiftRepo.Open(ctx, workerID, dateKey, s.clock.Now())
	if err != nil {
		if errors.Is(err, shiftRepo.ErrSessionAlreadyOpen) {
			s.logger.Warn("Open: shift already open for worker=%d, date=%s", workerID, dateKey)
			return nil, ErrAlreadyOpen
		}
		s.logger.Error("Open: repository error for worker=%d, date=%s: %v", workerID, dateKey, err)
		return nil, fmt.Errorf("%w: Open - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Open: shift id=%d opened for worker=%d, date=%s", session.ID, workerID, dateKey)
	return models.FromDomainShift(session), nil
}

// GetSummary возвращает смену за текущий день (если есть) и все бронирования
// сотрудника за этот день в любом статусе. Ничего не изменяет.
func (s *Service) GetSummary(ctx context.Context, workerID int64) (*models.SummaryResponse, error) {
	dateKey := s.clock.Today()

	session, err := s.shiftRepo.GetByWorkerAndDate(ctx, workerID, dateKey)
	if err != nil {
		if !errors.Is(err, shiftRepo.ErrSessionNotFound) {
			s.logger.Error("GetSummary: repository error for worker=%d, date=%s: %v", workerID, dateKey, err)
			return nil, fmt.Errorf("%w: GetSummary - repository error: %v", ErrInternal, err)
		}
		session = nil
	}

	reservations, err := s.ledger.FindForWorkerOnDate(ctx, workerID, dateKey)
	if err != nil {
		s.logger.Error("GetSummary: ledger error for worker=%d, date=%s: %v", workerID, dateKey, err)
		return nil, fmt.Errorf("%w: GetSummary - ledger error: %v", ErrInternal, err)
	}

	return models.NewSummaryResponse(dateKey, session, reservations), nil
}
