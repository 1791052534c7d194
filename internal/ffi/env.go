package ffi

import (
	"os"
	"strconv"
)

// Environment variables recognized by the binding.
const (
	// EnvDocs skips loading the native library entirely so interface
	// introspection (docs tooling) works without a functioning backend.
	EnvDocs = "SPLA_DOCS"

	// EnvPath overrides the computed artifact path, for debug and custom
	// builds.
	EnvPath = "SPLA_PATH"

	// EnvDebug registers the default diagnostic callback right after a
	// successful initialize.
	EnvDebug = "SPLA_DEBUG"
)

// DocsMode reports whether the docs-generation flag is set.
func DocsMode() bool {
	return os.Getenv(EnvDocs) != ""
}

// PathOverride returns the configured artifact path, or "" when unset.
func PathOverride() string {
	return os.Getenv(EnvPath)
}

// Debug reports whether the debug flag is set to a truthy value.
func Debug() bool {
	v := os.Getenv(EnvDebug)
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n != 0
	}
	return false
}
