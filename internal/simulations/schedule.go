package simulations

import (
	"math"

	"github.com/DanSteel1337/5PT-sub000/internal/types"
)

// DailySchedule expands cycle results into one point per day for chart consumers.
// Within a cycle the net reward accrues linearly; principal steps up only when a
// cycle completes. The last point always equals the completed totals.
func DailySchedule(cycles []types.CycleResult, params types.SimulationParameters) []types.DailyPoint {
	n := len(cycles)
	if n == 0 || params.TimeframeDays <= 0 {
		return nil
	}

	days := int(math.Ceil(params.TimeframeDays))
	dpc := params.DaysPerCycle()
	points := make([]types.DailyPoint, 0, days)

	for d := 1; d <= days; d++ {
		elapsed := math.Min(float64(d), params.TimeframeDays)

		completed := int(math.Floor(elapsed / dpc))
		if d == days || completed > n {
			completed = n
		}

		point := types.DailyPoint{Day: d}
		for i := 0; i < completed; i++ {
			point.CumulativeNet += cycles[i].NetReward
			point.CumulativeClaimed += cycles[i].ToWallet
			point.CumulativeReinvested += cycles[i].ToReinvest
		}

		if completed < n {
			current := cycles[completed]
			frac := (elapsed - float64(completed)*dpc) / dpc
			point.Cycle = current.CycleIndex
			point.Principal = current.StartPrincipal
			point.CumulativeNet += current.NetReward * frac
			point.CumulativeClaimed += current.ToWallet * frac
			point.CumulativeReinvested += current.ToReinvest * frac
		} else {
			last := cycles[n-1]
			point.Cycle = last.CycleIndex
			point.Principal = last.EndPrincipal
		}

		points = append(points, point)
	}

	return points
}
