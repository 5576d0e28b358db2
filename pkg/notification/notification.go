package notification

import "strings"

// Code identifies the assertion that produced a notification.
type Code string

// Codes are part of the wire format and must not change.
const (
	CodeLength         Code = "AssertArgumentLength"
	CodeMatches        Code = "AssertArgumentMatches"
	CodeNotEmpty       Code = "AssertArgumentNotEmpty"
	CodeNotNull        Code = "AssertArgumentNotNull"
	CodeNull           Code = "AssertArgumentNull"
	CodeTrue           Code = "AssertArgumentTrue"
	CodeEquals         Code = "AssertArgumentEquals"
	CodeGreaterThan    Code = "AssertArgumentGreatherThan"
	CodeGreaterOrEqual Code = "AssertArgumentGreatherOrEqualThan"
	CodeBetween        Code = "AssertArgumentBetween"
	CodeRegexNotMatch  Code = "AssertRegexNotMatch"
	CodeUUIDEmpty      Code = "AssertGuidIsEmpty"
	CodeEmailInvalid   Code = "AssertEmailIsInvalid"
	CodeURLInvalid     Code = "AssertUrlIsInvalid"
	CodeCPFInvalid     Code = "AssertCPFIsInvalid"
	CodeCNPJInvalid    Code = "AssertCNPJIsInvalid"
)

// Notification reports a failed assertion.
type Notification struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// New returns a notification for code with the caller supplied message.
func New(code Code, message string) *Notification {
	return &Notification{Code: code, Message: message}
}

func (n Notification) String() string {
	return string(n.Code) + ": " + n.Message
}

// Error lets a notification travel as an error value.
func (n Notification) Error() string {
	return n.String()
}

// Notifications is an ordered list of notifications.
type Notifications []Notification

// Collect drops absent (nil) results and keeps the order of the rest.
func Collect(results ...*Notification) Notifications {
	var out Notifications
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

func (ns Notifications) Error() string {
	if len(ns) == 0 {
		return "assertion failed"
	}

	parts := make([]string, 0, len(ns))
	for _, n := range ns {
		parts = append(parts, n.String())
	}
	return "assertion failed: " + strings.Join(parts, "; ")
}

func (ns Notifications) IsEmpty() bool {
	return len(ns) == 0
}

// Has reports whether any notification carries code.
func (ns Notifications) Has(code Code) bool {
	for _, n := range ns {
		if n.Code == code {
			return true
		}
	}
	return false
}

func (ns Notifications) Codes() []Code {
	codes := make([]Code, 0, len(ns))
	for _, n := range ns {
		codes = append(codes, n.Code)
	}
	return codes
}

func (ns Notifications) Messages() []string {
	messages := make([]string, 0, len(ns))
	for _, n := range ns {
		messages = append(messages, n.Message)
	}
	return messages
}
