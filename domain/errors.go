package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrWorkOrderExisted = errors.New("work order existed")
	ErrInvalidTarget    = errors.New("invalid target")
	ErrUnknownStatus    = errors.New("unknown status")
)
