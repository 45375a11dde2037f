package notifications

import "errors"

var (
	// ErrForbidden возвращается, когда роль не имеет права на запрошенный scope
	ErrForbidden = errors.New("role is not allowed to broadcast to this scope")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications service: internal error")
)
