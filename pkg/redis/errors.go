package redis

import "errors"

var (
	ErrEmptyURL = errors.New("redis: empty connection URL")
	ErrParseURL = errors.New("redis: invalid connection URL")
	ErrConnect  = errors.New("redis: connection failed")
)
