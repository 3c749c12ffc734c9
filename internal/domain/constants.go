package domain

// DateFormat формат ключа рабочего дня (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// DefaultQuantity количество услуги, если в позиции оно не указано или некорректно
const DefaultQuantity = 1

// SettlementStatuses статусы бронирований, которые учитываются при закрытии смены
var SettlementStatuses = []ReservationStatus{
	StatusAccepted,
	StatusDone,
}

// AllReservationStatuses все допустимые статусы бронирования
var AllReservationStatuses = []ReservationStatus{
	StatusPending,
	StatusAccepted,
	StatusRejected,
	StatusDone,
}
