package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value in integer pence. Gateways bill in minor units,
// so all arithmetic happens on pence; the two-decimal string form only exists
// at the wire and seed boundaries.
type Amount int64

// ParseAmount converts a decimal string such as "2.50" into pence. Input with
// more than two fractional digits is rounded half-to-even, matching the
// gateway's rounding of sub-penny amounts.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("parse amount: empty string")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("parse amount %q: negative amounts not allowed", s)
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	major, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("parse amount %q: invalid fraction", s)
		}
	}

	pence := major * 100
	switch {
	case len(fracPart) == 0:
	case len(fracPart) == 1:
		pence += int64(fracPart[0]-'0') * 10
	case len(fracPart) == 2:
		frac, _ := strconv.ParseInt(fracPart, 10, 64)
		pence += frac
	default:
		frac, err := strconv.ParseInt(fracPart[:2], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse amount %q: %w", s, err)
		}
		pence += frac
		pence += roundHalfEven(frac, fracPart[2:])
	}
	return Amount(pence), nil
}

// roundHalfEven decides whether the dropped digits round the last kept penny
// up by one. Ties go to the even penny.
func roundHalfEven(kept int64, dropped string) int64 {
	cmp := strings.Compare(dropped, "5"+strings.Repeat("0", len(dropped)-1))
	switch {
	case cmp > 0:
		return 1
	case cmp < 0:
		return 0
	default:
		if kept%2 == 1 {
			return 1
		}
		return 0
	}
}

// Pence returns the raw minor-unit value.
func (a Amount) Pence() int64 { return int64(a) }

// String renders the amount in major units with two decimals, e.g. "8.00".
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", int64(a)/100, int64(a)%100)
}

// MarshalJSON encodes the amount as a decimal string so clients never see
// floating-point money.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts either a decimal string or a bare JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
