package biddingerrors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Repository-level errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrArtistNotFound  = errors.New("artist not found")
	ErrBidderNotFound  = errors.New("bidder not found")
	ErrStore           = errors.New("store failure")
)

// business logic errors
var (
	ErrInvalidBid        = errors.New("invalid bid")
	ErrInvalidInput      = errors.New("validation failed")
	ErrAuctionClosed     = errors.New("auction closed")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrLinkInconsistency = errors.New("bid committed but not linked to product")
)

// BidTooLowError reports the floor a rejected bid failed to exceed
type BidTooLowError struct {
	Floor float64
}

func (e *BidTooLowError) Error() string {
	return "next bid must be higher than " + FormatAmount(e.Floor)
}

func (e *BidTooLowError) Unwrap() error { return ErrBidTooLow }

// FieldError names a single missing or malformed input field
type FieldError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ValidationError collects every offending field of a catalog write
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Name)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Add records a field failure
func (e *ValidationError) Add(name, message string) {
	e.Fields = append(e.Fields, FieldError{Name: name, Message: message})
}

// OrNil returns nil when no field failed, so callers can return it directly
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// LinkInconsistencyError is raised when a committed bid could not be attached to its
// product. It is logged for reconciliation and never returned to clients.
type LinkInconsistencyError struct {
	BidID     string
	ProductID string
	Err       error
}

func (e *LinkInconsistencyError) Error() string {
	return fmt.Sprintf("bid %s on product %s: %s: %v", e.BidID, e.ProductID, ErrLinkInconsistency, e.Err)
}

func (e *LinkInconsistencyError) Unwrap() []error { return []error{ErrLinkInconsistency, e.Err} }

// StoreError wraps a persistence failure so it matches ErrStore
func StoreError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}

// FormatAmount renders whole amounts without a fractional part
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
