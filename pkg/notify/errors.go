package notify

import (
	"errors"
	"fmt"
)

var (
	ErrNoSender       = errors.New("notify: no email sender configured")
	ErrNoContact      = errors.New("notify: giver has no contact address")
	ErrDeliveryFailed = errors.New("notify: delivery failed")
)

// DeliveryError is a failed send to one giver. It matches ErrDeliveryFailed and
// unwraps to the underlying sender error.
type DeliveryError struct {
	Giver   string
	Address string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("notify: deliver to %s <%s>: %v", e.Giver, e.Address, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func (e *DeliveryError) Is(target error) bool {
	return target == ErrDeliveryFailed
}
