package config

import (
	"errors"
)

var (
	ErrInvalidValue       = errors.New("config value invalid")
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileInvalid  = errors.New("config file could not be parsed")
	ErrConfigLoadFailed   = errors.New("failed to load configuration")
)
