package services

import "time"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// DaysBetween counts whole calendar days from earlier to later. Both
// values are normalized to midnight first, so DST transitions cannot
// skew the count.
func DaysBetween(earlier time.Time, later time.Time, location *time.Location) int {
	start := DateAtLocation(earlier, location)
	end := DateAtLocation(later, location)
	hours := end.Sub(start).Hours()
	days := int(hours / 24)
	if remainder := hours - float64(days)*24; remainder > 12 {
		days++
	} else if remainder < -12 {
		days--
	}
	return days
}
