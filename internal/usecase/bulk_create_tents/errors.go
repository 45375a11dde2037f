package bulk_create_tents

import "errors"

var (
	// ErrSectorNotFound - сектор не найден
	ErrSectorNotFound = errors.New("bulk_create_tents: sector not found")
	// ErrDuplicateTentName - имя палатки уже занято в секторе
	ErrDuplicateTentName = errors.New("bulk_create_tents: tent name already exists in sector")
	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("bulk_create_tents: invalid input")
	// ErrInternal - внутренняя ошибка
	ErrInternal = errors.New("bulk_create_tents: internal error")
)
