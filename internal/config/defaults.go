package config

// Default returns the canonical runtime configuration used when no file is present.
func Default() Config {
	return Config{
		Locale: LocaleConfig{
			Supported: []string{
				"en-US", "en-GB", "en-AU", "en-IN",
				"de-DE", "fr-FR", "es-ES", "it-IT", "ja-JP",
			},
		},
		Input: InputConfig{
			CapitalizeFirstWord: true,
			Separators:          " .,;:!?\"'()[]{}*&<>+=|\n",
		},
		Telemetry: TelemetryConfig{Enable: true},
		Consent:   ConsentConfig{},
	}
}
