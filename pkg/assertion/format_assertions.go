package assertion

import (
	"regexp"

	"github.com/dmitrymomot/domainnotify/pkg/notification"
)

var (
	// \z rather than \Z: a trailing newline is not part of an address.
	emailRegex = regexp.MustCompile(`(?i)\A(?:[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?)\z`)

	// Optional http(s) scheme, dotted host with a 2-6 letter top level
	// label, then an optional path. Path word characters are Unicode
	// letters, marks, digits and connectors so accented paths pass.
	urlRegex = regexp.MustCompile(`(?i)^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\p{L}\p{Mn}\p{Nd}\p{Pc} .-]*)*/?$`)
)

// ValidEmail checks that email is a well formed address.
func ValidEmail(email, message string) *notification.Notification {
	if !emailRegex.MatchString(email) {
		return notification.New(notification.CodeEmailInvalid, message)
	}
	return nil
}

// ValidURL checks the shape of url. An empty url passes; combine with
// NotEmpty when the value is required.
func ValidURL(url, message string) *notification.Notification {
	if url == "" {
		return nil
	}
	if !urlRegex.MatchString(url) {
		return notification.New(notification.CodeURLInvalid, message)
	}
	return nil
}
