package classifier

import (
	"fmt"
	"time"
)

// IsMasterNumber reports whether n is 11, 22 or 33
func IsMasterNumber(n int) bool {
	return n == 11 || n == 22 || n == 33
}

// LifePathNumber sums the digits of the date written as YYYYMMDD and keeps
// reducing until a single digit or a master number is reached.
func LifePathNumber(date time.Time) int {
	digits := fmt.Sprintf("%04d%02d%02d", date.Year(), int(date.Month()), date.Day())

	sum := 0
	for _, r := range digits {
		sum += int(r - '0')
	}

	for sum > 9 && !IsMasterNumber(sum) {
		sum = digitSum(sum)
	}
	return sum
}

func digitSum(n int) int {
	total := 0
	for n > 0 {
		total += n % 10
		n /= 10
	}
	return total
}
