package bulk_create_tents

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.SectorID <= 0 {
		return fmt.Errorf("%w: sectorId must be positive", ErrInvalidInput)
	}
	if req.Quantity < domain.MinBulkTentQuantity || req.Quantity > domain.MaxBulkTentQuantity {
		return fmt.Errorf("%w: quantity must be between %d and %d", ErrInvalidInput, domain.MinBulkTentQuantity, domain.MaxBulkTentQuantity)
	}
	if req.StartFrom < 0 {
		return fmt.Errorf("%w: startFrom must not be negative", ErrInvalidInput)
	}
	if req.Capacity < domain.MinTentCapacity {
		return fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinTentCapacity)
	}
	pattern := domain.TentNamePattern(req.NamePattern)
	if !domain.IsValidTentNamePattern(pattern) {
		return fmt.Errorf("%w: unknown name pattern %q", ErrInvalidInput, req.NamePattern)
	}
	if pattern != domain.PatternJustNumber && strings.TrimSpace(req.NamePrefix) == "" {
		return fmt.Errorf("%w: namePrefix is required for pattern %s", ErrInvalidInput, pattern)
	}
	return nil
}
