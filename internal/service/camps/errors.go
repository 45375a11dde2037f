package camps

import "errors"

var (
	// ErrSectorNotFound возвращается, когда сектор не найден
	ErrSectorNotFound = errors.New("sector not found")

	// ErrTentNotFound возвращается, когда палатка не найдена
	ErrTentNotFound = errors.New("tent not found")

	// ErrSectorHasTents возвращается при попытке удалить сектор с палатками
	ErrSectorHasTents = errors.New("sector still has tents")

	// ErrTentHasActiveBookings возвращается при попытке удалить палатку с активными бронированиями
	ErrTentHasActiveBookings = errors.New("tent has active bookings")

	// ErrSectorHasActiveBookings возвращается при попытке массово удалить палатки сектора,
	// в котором есть активные бронирования
	ErrSectorHasActiveBookings = errors.New("sector has active bookings")

	// ErrDuplicateTentName возвращается при конфликте имени палатки в секторе
	ErrDuplicateTentName = errors.New("tent name already exists in sector")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("camps service: internal error")
)
