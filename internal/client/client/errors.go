package client

import "errors"

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNoToken       = errors.New("no session token")
	ErrRequestFailed = errors.New("request failed")
)
