package camp

import "errors"

var (
	// ErrSectorNotFound возвращается, когда сектор не найден
	ErrSectorNotFound = errors.New("camp.repository: sector not found")

	// ErrTentNotFound возвращается, когда палатка не найдена
	ErrTentNotFound = errors.New("camp.repository: tent not found")

	// ErrDuplicateTentName возвращается при нарушении уникальности имени палатки в секторе
	ErrDuplicateTentName = errors.New("camp.repository: tent name already exists in sector")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("camp.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("camp.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("camp.repository: failed to scan row")
)
