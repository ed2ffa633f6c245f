package classifier

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the accepted birth date format
const DateLayout = "2006-01-02"

// Result holds both values derived from a birth date
type Result struct {
	Sign     Sign `json:"zodiac_sign"`
	LifePath int  `json:"life_path_number"`
}

// Classify derives the sign and life path number for a birth date
func Classify(date time.Time) Result {
	return Result{
		Sign:     ZodiacSign(date),
		LifePath: LifePathNumber(date),
	}
}

// ParseDate reads a YYYY-MM-DD civil date. The result is midnight UTC so
// the year, month and day never shift with the host time zone.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse birth date %q: %w", s, err)
	}
	return d, nil
}
