package create_broadcast

import (
	"context"

	"github.com/m04kA/SMC-CampService/internal/service/notifications/models"
)

type NotificationService interface {
	Broadcast(ctx context.Context, req *models.BroadcastRequest) (*models.NotificationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
