package token

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

func ParseInt(p []byte) (int64, error) {
	v, err := strconv.ParseInt(string(p), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: integer payload %q", ErrMalformedRecord, p)
	}
	return v, nil
}

func ParseFloat(p []byte) (float64, error) {
	v, err := strconv.ParseFloat(string(p), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: float payload %q", ErrMalformedRecord, p)
	}
	return v, nil
}

// ParseBool accepts any decimal integer; non-zero is true.
func ParseBool(p []byte) (bool, error) {
	v, err := ParseInt(p)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ParseTimestamp decodes unix seconds. A fractional value is truncated
// toward zero. Values beyond twice the current unix time are implausible
// and decode as -1, including those too large for an int64.
func ParseTimestamp(p []byte, now time.Time) (int64, error) {
	v, err := strconv.ParseInt(string(p), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(string(p), 64)
		if ferr != nil && !errors.Is(ferr, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: timestamp payload %q", ErrMalformedRecord, p)
		}
		switch {
		case math.IsNaN(f), ferr == nil && math.IsInf(f, 0), f <= math.MinInt64:
			return 0, fmt.Errorf("%w: timestamp payload %q", ErrMalformedRecord, p)
		case f >= math.MaxInt64:
			// beyond int64, so beyond any plausible time
			return -1, nil
		}
		v = int64(f)
	}
	if v > 2*now.Unix() {
		return -1, nil
	}
	return v, nil
}
