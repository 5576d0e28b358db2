package assertion

import (
	"time"

	"github.com/dmitrymomot/domainnotify/pkg/notification"
)

// Numeric is the set of types accepted by the numeric comparisons.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// GreaterThan checks that value1 > value2.
func GreaterThan[T Numeric](value1, value2 T, message string) *notification.Notification {
	if !(value1 > value2) {
		return notification.New(notification.CodeGreaterThan, message)
	}
	return nil
}

// GreaterOrEqual checks that value1 >= value2.
func GreaterOrEqual[T Numeric](value1, value2 T, message string) *notification.Notification {
	if !(value1 >= value2) {
		return notification.New(notification.CodeGreaterOrEqual, message)
	}
	return nil
}

// DateGreaterThan checks that value1 is strictly after value2.
func DateGreaterThan(value1, value2 time.Time, message string) *notification.Notification {
	if !value1.After(value2) {
		return notification.New(notification.CodeGreaterThan, message)
	}
	return nil
}

// DateGreaterOrEqual checks that value1 is not before value2.
func DateGreaterOrEqual(value1, value2 time.Time, message string) *notification.Notification {
	if value1.Before(value2) {
		return notification.New(notification.CodeGreaterOrEqual, message)
	}
	return nil
}

// Between checks minimum <= value <= maximum. The bounds are not reordered:
// when minimum > maximum no value passes.
func Between[T Numeric](value, minimum, maximum T, message string) *notification.Notification {
	if value < minimum || value > maximum {
		return notification.New(notification.CodeBetween, message)
	}
	return nil
}

// DateBetween checks that value lies within the two bounds inclusive,
// whichever order they are given in.
func DateBetween(value, bound1, bound2 time.Time, message string) *notification.Notification {
	start, end := bound1, bound2
	if end.Before(start) {
		start, end = end, start
	}
	if value.Before(start) || value.After(end) {
		return notification.New(notification.CodeBetween, message)
	}
	return nil
}
