package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ShiftService/internal/service/reservations/models"
)

// Service журнал бронирований: владеет конечным автоматом статусов
// и отвечает на запросы по сотруднику и дню
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	clock           Clock
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	clock Clock,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		clock:           clock,
		logger:          logger,
	}
}

// ChangeStatus переводит бронирование в новый статус от имени сотрудника.
// Разрешены только pending->accepted, pending->rejected, accepted->done.
// Менять статус может только назначенный сотрудник; принятие неназначенного
// бронирования назначает его принявшему.
func (s *Service) ChangeStatus(ctx context.Context, req *models.ChangeStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("ChangeStatus: reservation id=%d to status=%s by worker=%d",
		req.ReservationID, req.Status, req.WorkerID)

	next, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("ChangeStatus: invalid status=%s for reservation id=%d", req.Status, req.ReservationID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var updated *domain.Reservation

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("ChangeStatus: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			s.logger.Error("ChangeStatus: repository error for reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: ChangeStatus - repository error: %v", ErrInternal, err)
		}

		if !res.Status.CanTransitionTo(next) {
			s.logger.Warn("ChangeStatus: transition %s -> %s rejected for reservation id=%d",
				res.Status, next, req.ReservationID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, next)
		}

		if err := checkWorkerAccess(res, next, req.WorkerID); err != nil {
			s.logger.Warn("ChangeStatus: worker=%d may not move reservation id=%d to %s",
				req.WorkerID, req.ReservationID, next)
			return err
		}

		var assignTo *int64
		if next == domain.StatusAccepted && !res.IsAssigned() {
			workerID := req.WorkerID
			assignTo = &workerID
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, res.ID, res.Status, next, assignTo); err != nil {
			if errors.Is(err, reservationRepo.ErrStatusConflict) {
				s.logger.Warn("ChangeStatus: reservation id=%d changed concurrently", req.ReservationID)
				return fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
			}
			s.logger.Error("ChangeStatus: repository error for reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: ChangeStatus - repository error: %v", ErrInternal, err)
		}

		res.Status = next
		if assignTo != nil {
			res.WorkerID = assignTo
		}
		updated = res
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("ChangeStatus: reservation id=%d is now %s", updated.ID, updated.Status)
	return models.FromDomainReservation(updated), nil
}

// FindForWorkerOnDate возвращает бронирования сотрудника за день dateKey.
// Без statuses возвращаются бронирования в любом статусе.
func (s *Service) FindForWorkerOnDate(
	ctx context.Context,
	workerID int64,
	dateKey string,
	statuses ...domain.ReservationStatus,
) ([]*domain.Reservation, error) {
	start, end, err := s.clock.DayBounds(dateKey)
	if err != nil {
		s.logger.Warn("FindForWorkerOnDate: invalid date key=%s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reservations, err := s.reservationRepo.FindByWorkerAndDateRange(ctx, domain.ReservationFilter{
		WorkerID: workerID,
		Start:    start,
		End:      end,
		Statuses: statuses,
	})
	if err != nil {
		s.logger.Error("FindForWorkerOnDate: repository error for worker=%d, date=%s: %v", workerID, dateKey, err)
		return nil, fmt.Errorf("%w: FindForWorkerOnDate - repository error: %v", ErrInternal, err)
	}

	return reservations, nil
}

// GetWorkerReservations возвращает бронирования для панели сотрудника
func (s *Service) GetWorkerReservations(ctx context.Context, workerID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("GetWorkerReservations: fetching reservations for worker=%d", workerID)

	reservations, err := s.reservationRepo.FindVisibleToWorker(ctx, workerID)
	if err != nil {
		s.logger.Error("GetWorkerReservations: repository error for worker=%d: %v", workerID, err)
		return nil, fmt.Errorf("%w: GetWorkerReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWorkerReservations: fetched %d reservations for worker=%d", len(reservations), workerID)
	return models.FromDomainReservationList(reservations), nil
}

// checkWorkerAccess проверяет, что сотрудник вправе выполнить переход.
// Чужое бронирование трогать нельзя; завершить можно только свое.
func checkWorkerAccess(res *domain.Reservation, next domain.ReservationStatus, workerID int64) error {
	if res.IsAssigned() && !res.IsAssignedTo(workerID) {
		return ErrNotAssignedWorker
	}
	if next == domain.StatusDone && !res.IsAssignedTo(workerID) {
		return ErrNotAssignedWorker
	}
	return nil
}
