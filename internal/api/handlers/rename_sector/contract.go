package rename_sector

import (
	"context"

	"github.com/m04kA/SMC-CampService/internal/service/camps/models"
)

type CampService interface {
	RenameSector(ctx context.Context, req *models.RenameSectorRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
