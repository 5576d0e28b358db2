package notification

import "errors"

var (
	// ErrBusClosed is returned when notifying a closed Bus.
	ErrBusClosed = errors.New("notification: bus is closed")

	// ErrDeliveryFailed wraps sink failures reported by MultiSink.
	ErrDeliveryFailed = errors.New("notification: delivery failed")
)
