package create_tent

import (
	"context"

	"github.com/m04kA/SMC-CampService/internal/service/camps/models"
)

type CampService interface {
	CreateTent(ctx context.Context, req *models.CreateTentRequest) (*models.TentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
