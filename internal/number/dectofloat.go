// Package number converts decimal literals to floating-point values.
package number

import "math"

// Status reports how a conversion went. Conversion always produces a value.
type Status int

const (
	// OK means the number was converted exactly and then rounded.
	OK Status = iota
	// Inexact means the simple algorithm could not convert exactly.
	Inexact
	// Overflow means the magnitude was too large; the result is infinite.
	Overflow
	// Underflow means the magnitude was too small; the result is zero.
	Underflow
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Inexact:
		return "Inexact"
	case Overflow:
		return "Overflow"
	case Underflow:
		return "Underflow"
	}
	return "unknown"
}

const exactPow10 = 22

// Powers of ten with full precision (1e23 is rounded).
var pow10Table = [exactPow10]float64{
	1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11,
	1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// pow10 computes a power of 10; n must be strictly positive.
func pow10(n int) float64 {
	if n <= exactPow10 {
		return pow10Table[n-1]
	}
	x := pow10Table[exactPow10-1]
	n -= exactPow10
	for n > exactPow10 {
		x *= pow10Table[exactPow10-1]
		n -= exactPow10
	}
	return x * pow10Table[n-1]
}

// DecToFloat converts a decimal number to a float64. The digits slice holds
// digit values 0-9, most significant first, and exponent is the power of ten
// applied after the last digit. The result is correctly rounded as long as
// there are at most 15 digits and the scaling exponent stays within +-22;
// outside that range the status is Inexact.
func DecToFloat(digits []byte, exponent int) (float64, Status) {
	pos := 0
	for pos < len(digits) && digits[pos] == 0 {
		pos++
	}
	end := len(digits)
	for pos < end && digits[end-1] == 0 {
		end--
	}
	// Zero cannot overflow or underflow.
	if pos == end {
		return 0, OK
	}
	// Exponent so far out of range the digits cannot matter.
	dexp := len(digits) - pos // Decimal exponent of leading digit.
	if exponent > 308-dexp {
		return math.Inf(1), Overflow
	} else if exponent < 0 && exponent+dexp < -323 {
		return 0, Underflow
	}
	// 15 digits convert to an integer without overflowing 53 bits; truncate
	// the rest.
	const precision = 15
	status := OK
	maxpos := end
	if end > pos+precision {
		maxpos = pos + precision
		status = Inexact
	}
	var ival int64
	for ; pos < maxpos; pos++ {
		ival = ival*10 + int64(digits[pos])
	}
	expval := exponent + (len(digits) - maxpos)
	fval := float64(ival)
	if expval > 0 {
		if expval > exactPow10 {
			status = Inexact
		}
		fval *= pow10(expval)
		if math.IsInf(fval, 0) {
			status = Overflow
		}
	} else if expval < 0 {
		if -expval > exactPow10 {
			status = Inexact
		}
		fval /= pow10(-expval)
		if fval == 0 {
			status = Underflow
		}
	}
	return fval, status
}
