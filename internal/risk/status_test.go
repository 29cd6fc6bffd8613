package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aquaguard/water-monitor/internal/domain"
)

func TestStatusCascadePriority(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.Reading)
		want   domain.PipeStatus
	}{
		{"normal", func(r *domain.Reading) {}, domain.StatusNormal},
		{"leak", func(r *domain.Reading) { r.Pressure = 2.4 }, domain.StatusLeak},
		{"contamination", func(r *domain.Reading) { r.Turbidity = 2.1 }, domain.StatusContamination},
		{"decay", func(r *domain.Reading) { r.Chlorine = 0.35 }, domain.StatusDecay},
		{"stagnation", func(r *domain.Reading) { r.Flow = 0.9 }, domain.StatusStagnation},
		// Low pressure masks everything else; the order is a contract.
		{"leak masks decay", func(r *domain.Reading) { r.Pressure = 2.0; r.Chlorine = 0.2 }, domain.StatusLeak},
		{"contamination masks stagnation", func(r *domain.Reading) { r.Turbidity = 3.0; r.Flow = 0.5 }, domain.StatusContamination},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := neutralReading()
			tc.mutate(&r)
			assert.Equal(t, tc.want, Status(r))
		})
	}
}
