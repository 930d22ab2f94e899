package parser

import "errors"

var (
	ErrMissingName       = errors.New("missing unit name")
	ErrMissingModelCount = errors.New("missing model count")
	ErrInvalidModels     = errors.New("invalid number of models")
	ErrInvalidQuality    = errors.New("invalid quality")
	ErrInvalidDefense    = errors.New("invalid defense")
	ErrInvalidPoints     = errors.New("invalid points")
	ErrInvalidWeapons    = errors.New("invalid weapons")

	ErrUnknownAction = errors.New("unknown action")
	ErrNoMatch       = errors.New("no match")
	ErrMissingCost   = errors.New("missing cost")
)
