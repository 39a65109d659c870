package league

import "time"

// How many months ahead NextScheduledGameDate looks before giving up
const scheduleSearchMonths = 3

// NextScheduledGameDate returns the league night on or after today. The league
// meets on the second Thursday of every month. The bool is false when no date
// was found in the search window.
func NextScheduledGameDate(today time.Time) (time.Time, bool) {
	y, m, d := today.Date()
	loc := today.Location()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)

	for i := 0; i < scheduleSearchMonths; i++ {
		day := time.Date(y, m+time.Month(i), 1, 0, 0, 0, 0, loc)
		for day.Weekday() != time.Thursday {
			day = day.AddDate(0, 0, 1)
		}
		second := day.AddDate(0, 0, 7)
		if !second.Before(start) {
			return second, true
		}
	}

	return time.Time{}, false
}
