// Package doctor runs runtime readiness diagnostics for config and state.
package doctor

import (
	"fmt"
	"strings"

	"github.com/openkbd/voiceime/internal/config"
	"github.com/openkbd/voiceime/internal/consent"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes environment/config checks for a loaded config.
func Run(cfg config.Loaded) Report {
	checks := []Check{}

	checks = append(checks, Check{
		Name:    "config",
		Pass:    true,
		Message: fmt.Sprintf("loaded %q", cfg.Path),
	})

	checks = append(checks, checkSupportedLocales(cfg.Config))
	checks = append(checks, checkConsentStore(cfg.Config))

	return Report{Checks: checks}
}

// checkSupportedLocales validates the recognizer locale list.
func checkSupportedLocales(cfg config.Config) Check {
	if len(cfg.Locale.Supported) == 0 {
		return Check{Name: "locale.supported", Pass: false, Message: "no supported locales configured"}
	}
	return Check{
		Name:    "locale.supported",
		Pass:    true,
		Message: fmt.Sprintf("%d locales configured", len(cfg.Locale.Supported)),
	}
}

// checkConsentStore validates that the consent record location is usable.
func checkConsentStore(cfg config.Config) Check {
	store, err := consent.NewFileStore(cfg.Consent.Path)
	if err != nil {
		return Check{Name: "consent.store", Pass: false, Message: err.Error()}
	}

	rec, err := store.Load()
	if err != nil {
		return Check{Name: "consent.store", Pass: false, Message: err.Error()}
	}

	state := "first use pending"
	if rec.HasUsedVoiceInput {
		state = "consent granted"
	}
	return Check{
		Name:    "consent.store",
		Pass:    true,
		Message: fmt.Sprintf("%s (%s)", store.Path(), state),
	}
}
