package encode

import (
	"fmt"
	"regexp"
	"strconv"
)

var rationalRE = regexp.MustCompile(`^(\d+)/(\d+)$`)

// Rational is an exact fraction, used as the video time base: a pts of 1
// with time base 1/30 is one thirtieth of a second.
type Rational struct {
	Num int
	Den int
}

// ParseRational parses a "N/D" fraction with positive components.
func ParseRational(s string) (Rational, error) {
	m := rationalRE.FindStringSubmatch(s)
	if m == nil {
		return Rational{}, fmt.Errorf("%q is not a fraction of the form N/D", s)
	}
	num, err := strconv.Atoi(m[1])
	if err != nil {
		return Rational{}, fmt.Errorf("fraction numerator: %w", err)
	}
	den, err := strconv.Atoi(m[2])
	if err != nil {
		return Rational{}, fmt.Errorf("fraction denominator: %w", err)
	}
	if num == 0 || den == 0 {
		return Rational{}, fmt.Errorf("fraction %q must have nonzero components", s)
	}
	return Rational{Num: num, Den: den}, nil
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// FPS returns the frame rate implied by using the time base as the
// per-frame pts step.
func (r Rational) FPS() float64 {
	return float64(r.Den) / float64(r.Num)
}
