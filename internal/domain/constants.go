package domain

// Business validation constants
const (
	MobileDigits = 10 // контактный номер — ровно 10 цифр, общий на группу

	MinMemberAge = 1
	MaxMemberAge = 120

	MinTentCapacity = 1

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxBroadcastMessageLength   = 1000

	MinBulkTentQuantity = 1
	MaxBulkTentQuantity = 500
)

// NotificationsPageSize фиксированный размер страницы при чтении уведомлений
const NotificationsPageSize = 30

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронирование занимает места в палатке
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCheckedIn,
}

// TerminalStatuses статусы, из которых нет переходов
var TerminalStatuses = []BookingStatus{
	StatusCheckedOut,
	StatusCancelled,
}
