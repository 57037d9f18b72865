package locale

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// 印尼语（id-ID）的星期与月份名称，与创建端生成展示串所用的一致。
var dayNames = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// DayName 返回给定日期对应的印尼语星期名。
func DayName(t time.Time) string {
	return dayNames[int(t.Weekday())]
}

// FormatDate 将日期渲染为长日期串，例如 "5 Januari 2026"。
// 该串既是展示值，也是按日查找时的比较键。
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[int(t.Month())-1], t.Year())
}

// ParseDisplayDate 解析 FormatDate 生成的长日期串。
// 月份名不区分大小写；无法解析时返回错误。
func ParseDisplayDate(s string) (time.Time, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 3 {
		return time.Time{}, fmt.Errorf("invalid display date: %q", s)
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid display date: %q", s)
	}

	month := 0
	for i, name := range monthNames {
		if strings.EqualFold(name, fields[1]) {
			month = i + 1
			break
		}
	}
	if month == 0 {
		return time.Time{}, fmt.Errorf("invalid display date: %q", s)
	}

	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid display date: %q", s)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// CompareDisplayDates 按真实日期先后比较两个长日期串。
// 无法解析的串排在可解析的之后，两个都无法解析时视为相等。
func CompareDisplayDates(a, b string) int {
	ta, errA := ParseDisplayDate(a)
	tb, errB := ParseDisplayDate(b)

	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	default:
		return 0
	}
}
