package utils

import "time"

// DayInt encodes a time as a YYYYMMDD integer in its own location.
func DayInt(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// MinuteOfDay returns the minutes elapsed since midnight for t.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DayToTime converts a YYYYMMDD day integer plus minutes-since-midnight
// back to a concrete instant in loc.
func DayToTime(day, minute int, loc *time.Location) time.Time {
	year := day / 10000
	month := time.Month(day / 100 % 100)
	d := day % 100
	return time.Date(year, month, d, minute/60, minute%60, 0, 0, loc)
}

// PrevMonth returns the year and month of the calendar month before t.
func PrevMonth(t time.Time) (int, int) {
	prev := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 0, -1)
	return prev.Year(), int(prev.Month())
}

// MonthDayRange returns the inclusive YYYYMMDD bounds of a calendar month.
func MonthDayRange(year, month int) (int, int) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return DayInt(first), DayInt(last)
}
