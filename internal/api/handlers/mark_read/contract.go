package mark_read

import (
	"context"

	"github.com/m04kA/SMC-CampService/internal/service/notifications/models"
)

type NotificationService interface {
	MarkRead(ctx context.Context, req *models.MarkReadRequest) (*models.MarkReadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
