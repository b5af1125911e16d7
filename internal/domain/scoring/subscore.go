package scoring

import (
	"slotwise/internal/domain/entity"
	"slotwise/internal/domain/geo"
	"slotwise/internal/util"
)

// RouteWindow is how far apart two delivery starts may be to count as
// neighbours for route efficiency.
const RouteWindow = entity.TimeOfDay(120)

func clamp(v float64) float64 {
	return util.Clamp01(v)
}

// CapacityScore is a step function of utilization.
func CapacityScore(booked, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	u := float64(booked) / float64(capacity)

	switch {
	case u >= 0.9:
		return 0.2
	case u >= 0.7:
		return 0.5
	case u >= 0.5:
		return 0.8
	default:
		return 1.0
	}
}

// DistanceScore maps a distance in km linearly onto [0,1], reaching 0 at
// maxDistanceKm.
func DistanceScore(distanceKm, maxDistanceKm float64) float64 {
	if maxDistanceKm <= 0 {
		maxDistanceKm = entity.DefaultMaxDistanceKm
	}

	return clamp(1 - distanceKm/maxDistanceKm)
}

// RouteEfficiencyScore scores a delivery at customer on the slot's date by
// its mean distance to other deliveries starting within RouteWindow. Being
// the first delivery in the window is not penalised.
func RouteEfficiencyScore(slot *entity.Slot, customer entity.Coordinate, scheduled []entity.ScheduledDelivery, maxDistanceKm float64) float64 {
	var (
		total float64
		n     int
	)
	for _, d := range scheduled {
		if !entity.SameDate(d.Date, slot.Date) {
			continue
		}
		gap := d.Start - slot.Start
		if gap < -RouteWindow || gap > RouteWindow {
			continue
		}
		total += geo.DistanceKm(customer, d.Coordinate)
		n++
	}
	if n == 0 {
		return 1.0
	}

	return DistanceScore(util.Round1(total/float64(n)), maxDistanceKm)
}

// SlotPersonalization rewards preferred weekdays and time windows.
func SlotPersonalization(slot *entity.Slot, prefs *entity.CustomerPreferences) float64 {
	var score float64
	if prefs.PrefersDay(slot.Date.Weekday()) {
		score += 0.3
	}
	if prefs.PrefersWindow(slot.Window()) {
		score += 0.2
	}

	return clamp(score)
}

// LocationPersonalization favours locations the customer already knows.
func LocationPersonalization(location *entity.Location, prefs *entity.CustomerPreferences) float64 {
	if prefs.HasUsedLocation(location.ID) || prefs.PrefersLocation(location.ID) {
		return 1.0
	}

	return 0.3
}
