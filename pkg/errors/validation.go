package errors

import "math"

// ValidateDimension checks that a pixel measurement is finite and not negative.
// Zero is allowed: it means "not measured yet" or "use the default".
func ValidateDimension(code Code, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Invalid(code, field, "%s must be a finite number", field)
	}
	if v < 0 {
		return Invalid(code, field, "%s must not be negative: %v", field, v)
	}
	return nil
}

// ValidatePositive checks that v is finite and strictly greater than zero.
func ValidatePositive(code Code, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Invalid(code, field, "%s must be a finite number", field)
	}
	if v <= 0 {
		return Invalid(code, field, "%s must be positive: %v", field, v)
	}
	return nil
}

// ValidateCount checks that a count is not negative.
func ValidateCount(code Code, field string, n int) error {
	if n < 0 {
		return Invalid(code, field, "%s must not be negative: %d", field, n)
	}
	return nil
}

// ValidateCountAtMost checks that a count lies in [0, limit].
func ValidateCountAtMost(code Code, field string, n, limit int) error {
	if err := ValidateCount(code, field, n); err != nil {
		return err
	}
	if n > limit {
		return Invalid(code, field, "%s must not exceed %d: %d", field, limit, n)
	}
	return nil
}

// ValidateRange checks that lo <= hi for a pair of named bounds.
func ValidateRange(code Code, loField, hiField string, lo, hi float64) error {
	if lo > hi {
		return Invalid(code, loField, "%s (%v) must not exceed %s (%v)", loField, lo, hiField, hi)
	}
	return nil
}
