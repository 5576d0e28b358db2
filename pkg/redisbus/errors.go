package redisbus

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
	ErrPublishFailed                = errors.New("failed to publish notification")
	ErrSubscribeFailed              = errors.New("failed to subscribe to notification channel")
	ErrInvalidPayload               = errors.New("invalid notification payload")
)
