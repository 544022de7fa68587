package utils

import "time"

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// DisplayLocation adalah zona waktu tampilan (UTC+9 tetap, tanpa DST).
var DisplayLocation = time.FixedZone("JST", 9*60*60)

// DayBounds mengembalikan awal hari dan awal hari berikutnya dari t di zona tampilan.
func DayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(DisplayLocation)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, DisplayLocation)
	return start, start.AddDate(0, 0, 1)
}

// ParseDisplayDate mem-parsing "YYYY-MM-DD" sebagai tengah malam di zona tampilan.
func ParseDisplayDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, DisplayLocation)
}

// DisplayDate memformat t sebagai tanggal kalender di zona tampilan.
func DisplayDate(t time.Time) string {
	return t.In(DisplayLocation).Format(DateLayout)
}
