package list_tents

import (
	"context"

	"github.com/m04kA/SMC-CampService/internal/service/camps/models"
)

type CampService interface {
	ListTents(ctx context.Context, sectorID int64) (*models.TentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
