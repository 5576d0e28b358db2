package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be decoded into the struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrEnvFile is returned when an existing dotenv file cannot be read.
	ErrEnvFile = errors.New("failed to load env file")
)
