package errors

import (
	"errors"
	"fmt"
)

var (
	ErrPlatformNotFound     = errors.New("platform not found")
	ErrLaunchNotFound       = errors.New("launch not found")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrEmptyCommand         = errors.New("empty launch command")
	ErrDiscordNotConfigured = errors.New("discord client not configured")
)

type LaunchError struct {
	RomPath string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch of %s failed: %v", e.RomPath, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

func NewLaunchError(romPath string, err error) *LaunchError {
	return &LaunchError{
		RomPath: romPath,
		Err:     err,
	}
}

type ConfigError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value: %v): %s", e.Field, e.Value, e.Message)
}

func NewConfigError(field string, value interface{}, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
