package remit

import "strings"

// checkFieldSize returns val unchanged when it fits within max characters,
// boundary inclusive. record names the source document for the error
// message and may be empty.
func checkFieldSize(val, label string, max int, record string) (string, error) {
	if len(val) > max {
		return "", &FieldTooLongError{Label: label, Limit: max, Record: record}
	}
	return val, nil
}

// checkAmount validates a pre-formatted amount string (two fixed decimals)
// against the bank column's integer-digit capacity.
func checkAmount(formatted string, maxIntDigits int) (string, error) {
	intPart := formatted
	if i := strings.IndexByte(formatted, '.'); i >= 0 {
		intPart = formatted[:i]
	}
	if len(intPart) > maxIntDigits {
		return "", &AmountOverflowError{Limit: maxIntDigits}
	}
	return formatted, nil
}

// requireField rejects empty values with the field name, then applies the
// size check. This replaces the original system's reflective attribute
// lookup with explicit per-field calls.
func requireField(val, field string, max int, record string) (string, error) {
	if val == "" {
		return "", &MissingFieldError{Field: field, Record: record}
	}
	return checkFieldSize(val, field, max, record)
}

// truncate cuts s to at most n bytes. Used only for the few columns the
// bank format truncates instead of rejecting.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
