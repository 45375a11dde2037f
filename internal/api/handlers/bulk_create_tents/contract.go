package bulk_create_tents

import (
	"context"

	bulkCreateTents "github.com/m04kA/SMC-CampService/internal/usecase/bulk_create_tents"
)

type BulkCreateTentsUseCase interface {
	Execute(ctx context.Context, req *bulkCreateTents.Request) (*bulkCreateTents.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
