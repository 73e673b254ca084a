package payment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPaymentNotFound means no payment row matches the supplied tx_ref.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrCourseNotFound means the paid-for course no longer exists.
	ErrCourseNotFound = errors.New("course not found")
	// ErrAlreadySettled means the payment already left the pending state, so
	// the delivered event is a duplicate and no side effects were applied.
	ErrAlreadySettled = errors.New("payment already settled")
	// ErrAlreadyEnrolled is returned under the reject duplicate-enrollment policy.
	ErrAlreadyEnrolled = errors.New("user already enrolled in this course")
)

// ValidationError reports required fields missing from a request.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// GatewayError wraps a rejection or transport failure from the payment provider.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return "payment gateway error: " + e.Message
}
