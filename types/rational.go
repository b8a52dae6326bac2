package types

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	dectofrac "github.com/av-elier/go-decimal-to-rational"
)

// Rational is a time base or a frame rate.
type Rational struct {
	Num int
	Den int
}

func (r Rational) IsZero() bool {
	return r.Num == 0 || r.Den == 0
}

func (r Rational) Reverse() Rational {
	return Rational{
		Num: r.Den,
		Den: r.Num,
	}
}

// Float64 returns 0 for a zero denominator instead of +Inf/NaN.
func (r Rational) Float64() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// IntRatio returns Den/Num in integers, which is the frame rate if r
// is a video time base. Returns 0 if the ratio is undefined.
func (r Rational) IntRatio() int {
	if r.Num == 0 {
		return 0
	}
	return r.Den / r.Num
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func ntscRationalFromFloat64(f float64) *big.Rat {
	num := math.Ceil(f) * 1000
	r := big.NewRat(int64(num), 1001)
	v, _ := r.Float64()
	if math.Abs(f-v) < 1e-2 {
		return r
	}
	return nil
}

// RationalFromApproxFloat64 snaps the value to the closest NTSC rate
// (N*1000/1001) if there is one near enough.
func RationalFromApproxFloat64(f float64) Rational {
	if float64(int(f)) == f {
		return Rational{Num: int(f), Den: 1}
	}
	if rat := ntscRationalFromFloat64(f); rat != nil {
		return Rational{
			Num: int(rat.Num().Int64()),
			Den: int(rat.Denom().Int64()),
		}
	}
	r := Rational{Num: int(f * 1000000), Den: 1000000}
	gcd := big.NewInt(0).GCD(nil, nil, big.NewInt(int64(r.Num)), big.NewInt(int64(r.Den))).Int64()
	r.Num /= int(gcd)
	r.Den /= int(gcd)
	return r
}

func RationalFromFloat64(f float64) Rational {
	if float64(int(f)) == f {
		return Rational{Num: int(f), Den: 1}
	}
	rat := dectofrac.NewRatP(f, 1e-6)
	return Rational{
		Num: int(rat.Num().Int64()),
		Den: int(rat.Denom().Int64()),
	}
}

// ParseRational accepts "N/D", a decimal ("29.97") or an approximate
// decimal ("~29.97").
func ParseRational(s string) (*Rational, error) {
	var r Rational
	s = strings.TrimSpace(s)
	switch {
	case len(s) == 0:
		return nil, fmt.Errorf("unable to parse Rational from empty string")
	case strings.Contains(s, "/"):
		if _, err := fmt.Sscanf(s, "%d/%d", &r.Num, &r.Den); err != nil {
			return nil, fmt.Errorf("unable to parse Rational from %q: %w", s, err)
		}
	case s[0] == '~':
		f, err := strconv.ParseFloat(s[1:], 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse Rational from %q: %w", s, err)
		}
		r = RationalFromApproxFloat64(f)
	default:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse Rational from %q: %w", s, err)
		}
		r = RationalFromFloat64(f)
	}
	if r.Den == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &r, nil
}

func (r Rational) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Rational) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("unable to unmarshal Rational from JSON '%s': %w", b, err)
	}
	return r.UnmarshalText([]byte(s))
}

func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText is also what gopkg.in/yaml.v3 uses for scalars.
func (r *Rational) UnmarshalText(b []byte) error {
	v, err := ParseRational(string(b))
	if err != nil {
		return err
	}
	*r = *v
	return nil
}
