package bulk_create_tents

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CampService/internal/domain"
)

func TestGenerateNames(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		pattern   domain.TentNamePattern
		quantity  int
		startFrom int
		want      []string
	}{
		{
			name:      "dash number",
			prefix:    "T",
			pattern:   domain.PatternDashNumber,
			quantity:  3,
			startFrom: 5,
			want:      []string{"T-5", "T-6", "T-7"},
		},
		{
			name:      "space number",
			prefix:    "Tent",
			pattern:   domain.PatternSpaceNumber,
			quantity:  2,
			startFrom: 1,
			want:      []string{"Tent 1", "Tent 2"},
		},
		{
			name:      "underscore number",
			prefix:    "A",
			pattern:   domain.PatternUnderscoreNumber,
			quantity:  2,
			startFrom: 10,
			want:      []string{"A_10", "A_11"},
		},
		{
			name:      "just number ignores prefix",
			prefix:    "T",
			pattern:   domain.PatternJustNumber,
			quantity:  3,
			startFrom: 8,
			want:      []string{"8", "9", "10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generateNames(tt.prefix, tt.pattern, tt.quantity, tt.startFrom))
		})
	}
}
