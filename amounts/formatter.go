// Package amounts decodes base-unit token amounts (base-10 integer strings in
// the smallest unit) into human-readable decimal strings and exact decimal
// values, without going through floating point.
package amounts

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// TokenDecimals is the decimal-place count of the traded token
	TokenDecimals = 18
	// TradingPointsDecimals is the decimal-place count of trading scores
	TradingPointsDecimals = 15
)

// ErrInvalidAmount indicates the raw amount was not a valid non-negative
// base-10 integer string, or the decimals argument was out of range
var ErrInvalidAmount = errors.New("invalid base-unit amount")

// Parse converts a raw base-unit amount into its exact decimal value,
// i.e. rawAmount / 10^decimals with no precision loss.
func Parse(rawAmount string, decimals int) (decimal.Decimal, error) {
	if decimals < 1 {
		return decimal.Decimal{}, fmt.Errorf("%w: decimals must be >= 1, got %d", ErrInvalidAmount, decimals)
	}
	// big.Int.SetString tolerates a leading sign, the wire format does not
	if strings.ContainsAny(rawAmount, "+-") {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, rawAmount)
	}
	units, ok := new(big.Int).SetString(rawAmount, 10)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, rawAmount)
	}
	return decimal.NewFromBigInt(units, -int32(decimals)), nil
}

// Format converts a raw base-unit amount into the display string used by the
// board UI: integer part, a decimal separator, then the fractional digits with
// trailing zeros stripped.
//
// When the fractional part strips to nothing the separator is still emitted
// ("1." rather than "1"). The historical formatter behaved this way, the UI
// parses the result with a dangling-dot-tolerant float parser, and the listed
// format fixtures depend on it, so the behavior is kept.
func Format(rawAmount string, decimals int) (string, error) {
	value, err := Parse(rawAmount, decimals)
	if err != nil {
		return "", err
	}

	// decimal.String trims trailing fractional zeros
	s := value.String()
	if !strings.Contains(s, ".") {
		s += "."
	}
	return s, nil
}

// DisplayFloat converts a raw base-unit amount to a float64 for display.
// This is a deliberate precision-loss step for presentation only and must
// never feed back into exact arithmetic.
func DisplayFloat(rawAmount string, decimals int) (float64, error) {
	value, err := Parse(rawAmount, decimals)
	if err != nil {
		return 0, err
	}
	return value.InexactFloat64(), nil
}
