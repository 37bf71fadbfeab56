package redis

import "errors"

var (
	ErrRedisNotReady     = errors.New("redis did not become ready within the given time period")
	ErrEmptyHost         = errors.New("empty redis host")
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
