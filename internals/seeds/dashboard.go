// file: internals/seeds/dashboard.go
package seeds

// Data tren statis untuk kartu grafik dashboard.

var MonthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var MonthlyHireTrend = []int{4, 6, 5, 8, 7, 9, 6, 10, 11, 9, 7, 12}

var WeekLabels = []string{"Week 1", "Week 2", "Week 3", "Week 4"}

// persentase kehadiran mingguan
var WeeklyAttendanceTrend = []int{91, 93, 89, 92}
