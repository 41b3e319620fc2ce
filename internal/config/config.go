package config

import "os"

// Application identity
const (
	AppName = "clipboard"
	Version = "0.1.0"
)

// Environment variables that seed flag defaults
const (
	BackendEnv  = "CLIPBOARD_BACKEND"
	LogLevelEnv = "CLIPBOARD_LOG_LEVEL"
)

// Clipboard backends
const (
	BackendSystem = "system" // github.com/atotto/clipboard
	BackendExec   = "exec"   // platform copy/paste commands

	DefaultBackend = BackendSystem
)

// Logging
const DefaultLogLevel = "warn"

// OutputFileMode matches the permissions a plain create/truncate would use
const OutputFileMode os.FileMode = 0666

// Backends lists every accepted --backend value
func Backends() []string {
	return []string{BackendSystem, BackendExec}
}

// LogLevels lists every accepted --log-level value
func LogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// EnvOrDefault returns the value of the environment variable key, or def when unset or empty
func EnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
