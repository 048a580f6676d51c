package remit

import (
	"errors"
	"fmt"
)

// ErrNoReferences is returned for a payment order with an empty reference
// list.
var ErrNoReferences = errors.New("payment order has no references")

// FieldTooLongError reports a value that exceeds the bank file's column
// width for its field. Record, when set, points at the source document the
// user has to correct.
type FieldTooLongError struct {
	Label  string
	Limit  int
	Record string
}

func (e *FieldTooLongError) Error() string {
	msg := fmt.Sprintf("%s field is limited to size %d", e.Label, e.Limit)
	if e.Record != "" {
		msg += ", please change the details in " + e.Record
	}
	return msg
}

// AmountOverflowError reports an amount whose integer part does not fit the
// bank file's amount column.
type AmountOverflowError struct {
	Limit int
}

func (e *AmountOverflowError) Error() string {
	return fmt.Sprintf(
		"amount for a single transaction exceeds %d integer digits, create a separate payment order by splitting the transactions",
		e.Limit,
	)
}

// MissingFieldError reports an unset field that the bank mandates.
type MissingFieldError struct {
	Field  string
	Record string
}

func (e *MissingFieldError) Error() string {
	msg := e.Field + " is mandatory for generating remittance payments, set the field and try again"
	if e.Record != "" {
		msg += " (" + e.Record + ")"
	}
	return msg
}

// MissingPrimaryAddressError reports a supplier with no billing or primary
// address on file.
type MissingPrimaryAddressError struct {
	Supplier string
}

func (e *MissingPrimaryAddressError) Error() string {
	return fmt.Sprintf("please assign a billing address for the supplier %s and try again", e.Supplier)
}

// DelimiterError reports a field value that still contains the record
// delimiter after sanitization. Emitting it would silently corrupt the
// file, so generation is rejected instead.
type DelimiterError struct {
	Value string
}

func (e *DelimiterError) Error() string {
	return fmt.Sprintf("field value %q contains the record delimiter %q", e.Value, fieldSeparator)
}
