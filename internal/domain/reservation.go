package domain

import "time"

// ReservationStatus статус бронирования с точки зрения сотрудника
type ReservationStatus string

const (
	StatusPending  ReservationStatus = "pending"
	StatusAccepted ReservationStatus = "accepted"
	StatusRejected ReservationStatus = "rejected"
	StatusDone     ReservationStatus = "done"
)

// allowedTransitions единственные разрешенные переходы статусов
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:  {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusDone},
}

// IsValid returns true if the status is one of the known statuses
func (s ReservationStatus) IsValid() bool {
	for _, known := range AllReservationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no transition leaves this status
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusDone
}

// CanTransitionTo проверяет переход по конечному автомату статусов.
// Самопереходы и переходы из терминальных статусов запрещены.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LineItem позиция бронирования: услуга и количество
type LineItem struct {
	ServiceName string
	Quantity    int
}

// EffectiveQuantity возвращает количество с учетом значения по умолчанию
func (li LineItem) EffectiveQuantity() int {
	if li.Quantity <= 0 {
		return DefaultQuantity
	}
	return li.Quantity
}

// Reservation забронированная работа.
// Принадлежность к смене вычисляется по (WorkerID, день Datetime), ссылки на смену нет.
type Reservation struct {
	ID         int64
	CustomerID int64
	WorkerID   *int64 // nil - бронирование еще никому не назначено
	Datetime   time.Time
	Status     ReservationStatus
	LineItems  []LineItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAssigned returns true if a worker is assigned to the reservation
func (r *Reservation) IsAssigned() bool {
	return r.WorkerID != nil
}

// IsAssignedTo returns true if the given worker is assigned to the reservation
func (r *Reservation) IsAssignedTo(workerID int64) bool {
	return r.WorkerID != nil && *r.WorkerID == workerID
}

// ReservationFilter фильтр бронирований сотрудника за период
type ReservationFilter struct {
	WorkerID int64
	Start    time.Time // включительно
	End      time.Time // включительно
	Statuses []ReservationStatus // пустой - все статусы
}
