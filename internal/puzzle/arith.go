package puzzle

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow reports an int64 overflow while combining answers.
var ErrOverflow = errors.New("integer overflow")

// AddChecked returns a+b or ErrOverflow.
func AddChecked(a, b int64) (int64, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return s, nil
}

// MulChecked returns a*b or ErrOverflow.
func MulChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	p := a * b
	if p/b != a {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return p, nil
}

// Sum adds values with overflow checking.
func Sum(values []int64) (int64, error) {
	var total int64
	for _, v := range values {
		var err error
		if total, err = AddChecked(total, v); err != nil {
			return 0, err
		}
	}
	return total, nil
}
