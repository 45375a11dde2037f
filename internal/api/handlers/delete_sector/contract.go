package delete_sector

import "context"

type CampService interface {
	DeleteSector(ctx context.Context, sectorID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
