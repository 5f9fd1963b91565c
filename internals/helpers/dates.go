// file: internals/helpers/dates.go
package helper

import "time"

const ISODate = "2006-01-02"

// Today mengembalikan tanggal hari ini dalam format ISO (YYYY-MM-DD).
func Today() string {
	return time.Now().Format(ISODate)
}

// ParseISODate memvalidasi string tanggal ISO.
func ParseISODate(value string) (time.Time, error) {
	return time.Parse(ISODate, value)
}

// DaysInclusive menghitung jumlah hari antara dua tanggal, inklusif.
// Mengikuti perhitungan form cuti portal: end sebelum start menghasilkan 0.
func DaysInclusive(start, end time.Time) int {
	diff := int(end.Sub(start).Hours()/24) + 1
	if diff < 0 {
		return 0
	}
	return diff
}
