package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionState состояние рабочей смены за день
type SessionState string

const (
	SessionNone   SessionState = "none"
	SessionOpen   SessionState = "open"
	SessionClosed SessionState = "closed"
)

// WorkSession рабочая смена сотрудника за один календарный день.
// Одна запись на (WorkerID, DateKey); повторное открытие переиспользует запись.
type WorkSession struct {
	ID       int64
	WorkerID int64
	DateKey  string // YYYY-MM-DD в канонической временной зоне
	OpenedAt time.Time
	ClosedAt *time.Time

	// Итоги имеют смысл только после закрытия смены
	TotalCount   int
	TotalRevenue decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true if the session has been opened and not closed yet
func (s *WorkSession) IsOpen() bool {
	return s != nil && s.ClosedAt == nil
}

// IsClosed returns true if the session has a frozen settlement
func (s *WorkSession) IsClosed() bool {
	return s != nil && s.ClosedAt != nil
}

// StateOf возвращает состояние смены; nil означает, что смена за день не открывалась
func StateOf(s *WorkSession) SessionState {
	switch {
	case s == nil:
		return SessionNone
	case s.ClosedAt == nil:
		return SessionOpen
	default:
		return SessionClosed
	}
}
