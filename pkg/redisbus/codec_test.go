package redisbus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/domainnotify/pkg/notification"
	"github.com/dmitrymomot/domainnotify/pkg/redisbus"
)

func TestEncode(t *testing.T) {
	t.Run("json payload", func(t *testing.T) {
		data, err := redisbus.Encode(notification.Notification{
			Code:    notification.CodeCPFInvalid,
			Message: "CPF inválido.",
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"code":"AssertCPFIsInvalid","message":"CPF inválido."}`, string(data))
	})

	t.Run("rejects missing code", func(t *testing.T) {
		_, err := redisbus.Encode(notification.Notification{Message: "orphan"})
		assert.ErrorIs(t, err, redisbus.ErrInvalidPayload)
	})
}

func TestDecode(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		n, err := redisbus.Decode([]byte(`{"code":"AssertUrlIsInvalid","message":"URL inválida"}`))
		require.NoError(t, err)
		assert.Equal(t, notification.CodeURLInvalid, n.Code)
		assert.Equal(t, "URL inválida", n.Message)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := redisbus.Decode([]byte(`{"code":`))
		assert.ErrorIs(t, err, redisbus.ErrInvalidPayload)
	})

	t.Run("missing code", func(t *testing.T) {
		_, err := redisbus.Decode([]byte(`{"message":"no code"}`))
		assert.ErrorIs(t, err, redisbus.ErrInvalidPayload)
	})
}
