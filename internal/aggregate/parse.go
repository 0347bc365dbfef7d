package aggregate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyAmount is returned for a blank numeric field.
	ErrEmptyAmount = errors.New("empty amount")
	// ErrMalformedAmount is returned for anything other than digits with
	// optional thousands groups and decimal places.
	ErrMalformedAmount = errors.New("malformed amount")
	// ErrUnknownField is returned when a metric names a field the record
	// does not have.
	ErrUnknownField = errors.New("unknown field")
)

// ParseError reports a field value that could not be read as a number.
type ParseError struct {
	Metric   string
	RecordID int64
	Field    string
	Value    string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Metric != "" {
		return fmt.Sprintf("%s: record %d: %s %q: %v", e.Metric, e.RecordID, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("parsing %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var amountPattern = regexp.MustCompile(`^-?(\d{1,3}(,\d{3})+|\d+)(\.\d+)?$`)

// ParseAmount reads a currency or plain numeric string such as "$2,450",
// "$780.00" or "4.8". One leading currency symbol and comma thousands
// separators are accepted; exponents and anything else are errors.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(s), "$")
	if clean == "" {
		return decimal.Zero, &ParseError{Value: s, Err: ErrEmptyAmount}
	}
	if !amountPattern.MatchString(clean) {
		return decimal.Zero, &ParseError{Value: s, Err: ErrMalformedAmount}
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(clean, ",", ""))
	if err != nil {
		return decimal.Zero, &ParseError{Value: s, Err: err}
	}
	return d, nil
}
