package config

import (
	"fmt"
	"strings"
)

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if len(cfg.Locale.Supported) == 0 {
		return nil, fmt.Errorf("locale.supported must not be empty")
	}

	seen := make(map[string]struct{}, len(cfg.Locale.Supported))
	for _, locale := range cfg.Locale.Supported {
		trimmed := strings.TrimSpace(locale)
		if trimmed == "" {
			return nil, fmt.Errorf("locale.supported contains an empty entry")
		}
		if _, dup := seen[trimmed]; dup {
			warnings = append(warnings, Warning{
				Message: fmt.Sprintf("locale.supported lists %q more than once", trimmed),
			})
			continue
		}
		seen[trimmed] = struct{}{}
	}

	if cfg.Input.Separators == "" {
		return nil, fmt.Errorf("input.separators must not be empty")
	}

	return warnings, nil
}
