package bulk_create_tents

import (
	"strconv"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

// generateNames строит последовательность имен по выбранной схеме.
// Например prefix="T", quantity=3, startFrom=5, DASH_NUMBER -> T-5, T-6, T-7.
func generateNames(prefix string, pattern domain.TentNamePattern, quantity, startFrom int) []string {
	names := make([]string, 0, quantity)
	for i := 0; i < quantity; i++ {
		names = append(names, formatName(prefix, pattern, startFrom+i))
	}
	return names
}

func formatName(prefix string, pattern domain.TentNamePattern, n int) string {
	num := strconv.Itoa(n)
	switch pattern {
	case domain.PatternDashNumber:
		return prefix + "-" + num
	case domain.PatternSpaceNumber:
		return prefix + " " + num
	case domain.PatternUnderscoreNumber:
		return prefix + "_" + num
	case domain.PatternJustNumber:
		return num
	default:
		return prefix + "-" + num
	}
}
