package create_booking

import "errors"

var (
	// ErrTentNotFound возвращается, когда палатка не найдена
	ErrTentNotFound = errors.New("create_booking: tent not found")

	// ErrInvalidMobile возвращается при некорректном контактном номере
	ErrInvalidMobile = errors.New("create_booking: mobile must be exactly 10 digits")

	// ErrNoMembers возвращается, когда группа пуста
	ErrNoMembers = errors.New("create_booking: booking requires at least one member")

	// ErrInvalidMember возвращается при некорректных данных участника
	ErrInvalidMember = errors.New("create_booking: invalid member data")

	// ErrInvalidDates возвращается, когда дата выезда раньше даты заезда
	ErrInvalidDates = errors.New("create_booking: check-out date is before check-in date")

	// ErrInvalidInput возвращается при прочих некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
