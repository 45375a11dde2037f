package extend_stay

import (
	"context"

	"github.com/m04kA/SMC-CampService/internal/service/bookings/models"
)

type BookingService interface {
	ExtendStay(ctx context.Context, req *models.ExtendStayRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
