package model

import "time"

// WeekdayNames is the fixed 7-value weekday vocabulary used by
// station schedules, in display order starting on Monday. Station
// WorkDays entries must come from this set.
var WeekdayNames = []string{"Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim"}

// weekdayByIndex maps the native day-of-week index (0=Sunday ..
// 6=Saturday) to its schedule name. The Sunday-first ordering here
// is load-bearing: it must stay aligned with time.Weekday.
var weekdayByIndex = [7]string{"Dim", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam"}

// WeekdayName returns the schedule name for the weekday of t.
func WeekdayName(t time.Time) string {
	return weekdayByIndex[int(t.Weekday())]
}

// ValidWeekday reports whether s is one of the seven schedule names.
func ValidWeekday(s string) bool {
	for _, d := range WeekdayNames {
		if d == s {
			return true
		}
	}
	return false
}
