package redisbus

import (
	"encoding/json"
	"errors"

	"github.com/dmitrymomot/domainnotify/pkg/notification"
)

// Encode serialises n into the channel payload format.
func Encode(n notification.Notification) ([]byte, error) {
	if n.Code == "" {
		return nil, ErrInvalidPayload
	}
	return json.Marshal(n)
}

// Decode parses a channel payload. Payloads without a code are rejected.
func Decode(data []byte) (notification.Notification, error) {
	var n notification.Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return notification.Notification{}, errors.Join(ErrInvalidPayload, err)
	}
	if n.Code == "" {
		return notification.Notification{}, ErrInvalidPayload
	}
	return n, nil
}
