// Package calibration recovers the calibration values hidden in each line
// of an amended document.
package calibration

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoDigit is returned for a line that contains no digit at all.
var ErrNoDigit = errors.New("line has no digit")

var words = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit that starts at byte offset i of line. With
// spelled set, words such as "seven" count as well.
func digitAt(line string, i int, spelled bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for d, w := range words {
		if strings.HasPrefix(line[i:], w) {
			return d, true
		}
	}
	return 0, false
}

// Value combines the first and last digit of line into a two-digit number.
// Spelled words may overlap, so "eightwo" is 82.
func Value(line string, spelled bool) (int64, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, spelled); ok {
			first = d
			break
		}
	}
	if first < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigit, line)
	}
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, spelled); ok {
			last = d
			break
		}
	}
	return int64(first*10 + last), nil
}
