/*

This file contains the return metrics of a projection: ROI and effective APR.

*/

package analyzer

import (
	"errors"
	"fmt"
	"math"

	"github.com/DanSteel1337/5PT-sub000/internal/types"
)

// DaysPerYear is the annualization base for effective APR.
const DaysPerYear = 365.0

// CalculateROI returns total rewards as a percentage of the post-tax deposit.
func CalculateROI(totalRewards, depositAfterTax float64) (float64, error) {
	if depositAfterTax == 0 {
		return 0, errors.Join(types.ErrIndeterminate, errors.New("ROI undefined for zero deposit after tax"))
	}
	roi := totalRewards / depositAfterTax * 100
	if math.IsNaN(roi) || math.IsInf(roi, 0) {
		return 0, errors.Join(types.ErrIndeterminate, errors.New("ROI calculation resulted in NaN or Inf"))
	}
	return roi, nil
}

// CalculateEffectiveAPR annualizes the realized growth over the timeframe:
//
//	((finalPrincipal + totalClaimed) / depositAfterTax) ^ (365 / timeframeDays) - 1
//
// expressed as a percentage. finalPrincipal already excludes the withdrawn share, so
// the numerator equals depositAfterTax plus every net reward, counted once.
func CalculateEffectiveAPR(finalPrincipal, totalClaimed, depositAfterTax, timeframeDays float64) (float64, error) {
	if depositAfterTax == 0 {
		return 0, errors.Join(types.ErrIndeterminate, errors.New("effective APR undefined for zero deposit after tax"))
	}
	if timeframeDays == 0 {
		return 0, errors.Join(types.ErrIndeterminate, errors.New("effective APR undefined for zero timeframe"))
	}

	growth := (finalPrincipal + totalClaimed) / depositAfterTax
	if growth < 0 {
		return 0, errors.Join(types.ErrIndeterminate, fmt.Errorf("negative growth factor %f", growth))
	}

	apr := (math.Pow(growth, DaysPerYear/timeframeDays) - 1) * 100
	if math.IsNaN(apr) || math.IsInf(apr, 0) {
		aggregatorLogger.L().Error().
			Float64("growth", growth).
			Float64("timeframeDays", timeframeDays).
			Msg("Effective APR calculation resulted in invalid value")
		return 0, errors.Join(types.ErrIndeterminate, errors.New("effective APR calculation resulted in NaN or Inf"))
	}
	return apr, nil
}
