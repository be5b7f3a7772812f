package simulations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanSteel1337/5PT-sub000/internal/config"
	"github.com/DanSteel1337/5PT-sub000/internal/types"
)

func TestDailyScheduleEndsAtTotals(t *testing.T) {
	params := types.SimulationParameters{TimeframeDays: 90, ReinvestmentCycles: 3}
	cycles, _, err := RunCycles(landingPosition(), mustTier(t, 1), config.DefaultRateParameters, params)
	require.NoError(t, err)

	points := DailySchedule(cycles, params)
	require.Len(t, points, 90)

	last := points[len(points)-1]
	assert.Equal(t, 90, last.Day)
	assert.Equal(t, 2, last.Cycle)
	assert.Equal(t, cycles[2].EndPrincipal, last.Principal)
	assert.InDelta(t, sumNet(cycles), last.CumulativeNet, tolerance)
	assert.InDelta(t, last.CumulativeNet, last.CumulativeClaimed+last.CumulativeReinvested, tolerance)

	// Day 30 closes the first cycle; the principal steps up from then on.
	assert.Equal(t, cycles[0].StartPrincipal, points[28].Principal)
	assert.Equal(t, cycles[1].StartPrincipal, points[29].Principal)
	assert.InDelta(t, cycles[0].NetReward, points[29].CumulativeNet, tolerance)

	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i].CumulativeNet, points[i-1].CumulativeNet)
		assert.GreaterOrEqual(t, points[i].Principal, points[i-1].Principal)
	}
}

func TestDailyScheduleFractionalTimeframe(t *testing.T) {
	params := types.SimulationParameters{TimeframeDays: 10.5, ReinvestmentCycles: 2}
	cycles, _, err := RunCycles(landingPosition(), mustTier(t, 1), config.DefaultRateParameters, params)
	require.NoError(t, err)

	points := DailySchedule(cycles, params)
	require.Len(t, points, 11)
	assert.InDelta(t, sumNet(cycles), points[10].CumulativeNet, tolerance)
}

func TestDailyScheduleEmpty(t *testing.T) {
	assert.Nil(t, DailySchedule(nil, types.SimulationParameters{TimeframeDays: 30, ReinvestmentCycles: 1}))
}
