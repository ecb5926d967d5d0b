// Package pricing implements the hourly and nightly tariff of the suites.
// All functions are pure.
package pricing

import (
	"math"
	"time"

	"github.com/m04kA/DaySeven-BookingService/internal/domain"
)

const day = 24 * time.Hour

// CalculateHourlyRate returns the price of an hourly stay.
// 1-3 hours use fixed tiers, anything else is billed per hour at the
// default rate (so 0 hours costs 0 and negative hours a negative amount).
func CalculateHourlyRate(hours int) float64 {
	switch hours {
	case 1:
		return domain.HourlyRateOneHour
	case 2:
		return domain.HourlyRateTwoHours
	case 3:
		return domain.HourlyRateThreeHours
	default:
		return float64(hours) * domain.DefaultHourlyRate
	}
}

// CalculateStayDuration returns the number of nights in the range.
// A partial day counts as a full night. Returns 0 if either end is missing.
func CalculateStayDuration(dates domain.DateRange) int {
	if !dates.IsComplete() {
		return 0
	}

	elapsed := dates.To.Sub(*dates.From)
	return int(math.Ceil(float64(elapsed) / float64(day)))
}

// CalculateStay prices a stay in the given suite.
// Hourly suites ignore the dates; nightly suites ignore hours.
func CalculateStay(suite domain.Suite, dates domain.DateRange, hours int) domain.StayCalculation {
	if suite.IsHourly {
		h := hours
		return domain.StayCalculation{
			Nights:   0,
			Hours:    &h,
			Rate:     CalculateHourlyRate(hours),
			Discount: 0,
		}
	}

	nights := CalculateStayDuration(dates)
	rate, discount := RateForNights(suite, nights)

	return domain.StayCalculation{
		Nights:   nights,
		Rate:     rate,
		Discount: discount,
	}
}

// RateForNights returns the discounted rate and the discount applied for
// a nightly stay of the given length. The monthly tier takes priority over
// the weekly one. Zero nights price at 0; a reversed range (negative nights)
// falls into the base tier like any other short stay.
func RateForNights(suite domain.Suite, nights int) (rate float64, discount float64) {
	if nights == 0 {
		return 0, 0
	}

	var base float64
	switch {
	case nights >= domain.MonthlyTierNights:
		base = suite.MonthlyRate
		discount = domain.MonthlyDiscount
	case nights >= domain.WeeklyTierNights:
		base = CalculateDailyRate(suite) * float64(nights)
		discount = domain.WeeklyDiscount
	default:
		base = CalculateDailyRate(suite) * float64(nights)
	}

	return base * (1 - discount), discount
}

// CalculateDailyRate returns the undiscounted nightly rate of a suite
func CalculateDailyRate(suite domain.Suite) float64 {
	return suite.WeeklyRate / 7
}

// FirstNonMonotonicNight returns the first stay length in [2, maxNights]
// that costs less than one night shorter, or 0 if pricing never decreases.
func FirstNonMonotonicNight(suite domain.Suite, maxNights int) int {
	prev, _ := RateForNights(suite, 1)
	for n := 2; n <= maxNights; n++ {
		cur, _ := RateForNights(suite, n)
		if cur < prev {
			return n
		}
		prev = cur
	}
	return 0
}
