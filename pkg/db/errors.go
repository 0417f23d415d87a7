package db

import "errors"

var (
	ErrEmptyURL = errors.New("db: empty connection URL")
	ErrParseURL = errors.New("db: invalid connection URL")
	ErrConnect  = errors.New("db: connection failed")
)
