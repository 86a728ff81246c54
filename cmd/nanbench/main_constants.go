package main

import "time"

// Default flag values
const (
	defaultVerbosity = "info"
	defaultMinTime   = 200 * time.Millisecond
	defaultSeed      = 42
)
