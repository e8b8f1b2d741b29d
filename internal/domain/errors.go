package domain

import "errors"

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidItem     = errors.New("item data is required")
	ErrInvalidListKind = errors.New("unknown list kind")
)
