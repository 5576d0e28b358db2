package assertion

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/dmitrymomot/domainnotify/pkg/notification"
)

// NotNil checks that value is not nil. Typed nil pointers, maps, slices,
// channels, functions and interfaces count as nil.
func NotNil(value any, message string) *notification.Notification {
	if isNil(value) {
		return notification.New(notification.CodeNotNull, message)
	}
	return nil
}

// IsNil checks that value is nil, with the same rules as NotNil.
func IsNil(value any, message string) *notification.Notification {
	if !isNil(value) {
		return notification.New(notification.CodeNull, message)
	}
	return nil
}

// True checks that value is true.
func True(value bool, message string) *notification.Notification {
	if !value {
		return notification.New(notification.CodeTrue, message)
	}
	return nil
}

// UUIDNotEmpty checks that id is not the zero UUID.
func UUIDNotEmpty(id uuid.UUID, message string) *notification.Notification {
	if id == uuid.Nil {
		return notification.New(notification.CodeUUIDEmpty, message)
	}
	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
