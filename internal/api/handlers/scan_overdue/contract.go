package scan_overdue

import (
	"context"

	scanOverdue "github.com/m04kA/SMC-CampService/internal/usecase/scan_overdue"
)

type ScanOverdueUseCase interface {
	Execute(ctx context.Context) (*scanOverdue.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
