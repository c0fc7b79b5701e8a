// Package config holds interpreter-wide constants and defaults.
package config

const (
	// SourceFileExt is the conventional script extension.
	SourceFileExt = ".joy"

	// DefaultRecursionLimit bounds quotation nesting depth.
	DefaultRecursionLimit = 4096

	// DefaultPrompt is the interactive prompt.
	DefaultPrompt = "> "

	// DefaultHistoryFile is the REPL history path relative to the user
	// home directory.
	DefaultHistoryFile = ".joy_history"

	// ConfigFileName is the per-user config looked up under the user
	// config directory.
	ConfigFileName = "joy/config.yaml"
)
