package assertion

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/domainnotify/pkg/notification"
)

// Length checks that value, trimmed of surrounding whitespace, has between
// minimum and maximum characters inclusive. Characters are counted after NFC
// normalisation so "é" counts once whether or not it was precomposed.
func Length(value string, minimum, maximum int, message string) *notification.Notification {
	n := utf8.RuneCountInString(norm.NFC.String(strings.TrimSpace(value)))
	if n < minimum || n > maximum {
		return notification.New(notification.CodeLength, message)
	}
	return nil
}

// NotEmpty checks that value contains something other than whitespace.
func NotEmpty(value, message string) *notification.Notification {
	if strings.TrimSpace(value) == "" {
		return notification.New(notification.CodeNotEmpty, message)
	}
	return nil
}

// Equals checks that value equals match.
func Equals[T comparable](value, match T, message string) *notification.Notification {
	if value != match {
		return notification.New(notification.CodeEquals, message)
	}
	return nil
}

// Matches checks value against pattern, case-sensitively.
func Matches(pattern, value, message string) *notification.Notification {
	re, err := compile(pattern)
	if err != nil || !re.MatchString(value) {
		return notification.New(notification.CodeMatches, message)
	}
	return nil
}

// RegexMatch checks value against pattern, ignoring case.
func RegexMatch(value, pattern, message string) *notification.Notification {
	re, err := compile("(?i)" + pattern)
	if err != nil || !re.MatchString(value) {
		return notification.New(notification.CodeRegexNotMatch, message)
	}
	return nil
}
