// Package config resolves, parses, validates, and defaults voiceime
// configuration.
package config

// Config is the fully materialized runtime configuration used by voiceime.
type Config struct {
	Locale    LocaleConfig
	Input     InputConfig
	Telemetry TelemetryConfig
	Consent   ConsentConfig
}

// LocaleConfig lists the locales the recognizer supports.
type LocaleConfig struct {
	Supported []string
}

// InputConfig controls how recognized text is inserted and which typed
// characters count as separators for edit accounting.
type InputConfig struct {
	CapitalizeFirstWord bool
	Separators          string
}

// TelemetryConfig controls modification-counter emission.
type TelemetryConfig struct {
	Enable bool
}

// ConsentConfig overrides the consent record location.
type ConsentConfig struct {
	Path string
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Line    int
	Message string
}
