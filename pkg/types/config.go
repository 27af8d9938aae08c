package types

import "errors"

// Config holds driver selection and parameters for Driver.Attach.
type Config struct {
	Driver  string `json:"driver" yaml:"driver"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Supported driver names.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config validation errors.
var (
	ErrDriverEmpty   = errors.New("driver must not be empty")
	ErrDriverUnknown = errors.New("unknown driver")
)

// knownDrivers lists the drivers that Validate accepts.
var knownDrivers = map[string]bool{
	DriverSQLite: true,
	DriverMemory: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Driver == "" {
		return ErrDriverEmpty
	}
	if !knownDrivers[c.Driver] {
		return ErrDriverUnknown
	}
	return nil
}
