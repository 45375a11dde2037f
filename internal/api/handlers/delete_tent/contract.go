package delete_tent

import "context"

type CampService interface {
	DeleteTent(ctx context.Context, tentID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
