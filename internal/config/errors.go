package config

import "errors"

var (
	ErrReadFile        = errors.New("config: failed to read config file")
	ErrParseFile       = errors.New("config: failed to parse config file")
	ErrMissingRequired = errors.New("config: required setting is missing")
	ErrInvalidValue    = errors.New("config: invalid setting value")
)
