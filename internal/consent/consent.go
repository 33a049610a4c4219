// Package consent decides whether a disclosure dialog must precede voice input.
package consent

// Record holds the persisted first-use consent flags. Both flags are
// monotonic: once set they are never cleared for the lifetime of the store.
type Record struct {
	HasUsedVoiceInput                  bool `yaml:"has_used_voice_input"`
	HasUsedVoiceInputUnsupportedLocale bool `yaml:"has_used_voice_input_unsupported_locale"`
}

// NeedsConsent reports whether the warning dialog must be shown before
// listening starts. First use always warns; an unsupported locale warns once
// more even after the generic warning was acknowledged.
func NeedsConsent(rec Record, localeSupported bool) bool {
	return !rec.HasUsedVoiceInput ||
		(!localeSupported && !rec.HasUsedVoiceInputUnsupportedLocale)
}

// Grant returns the record updated for an accepted warning dialog. The
// generic flag is always set; the unsupported-locale flag only when the
// current locale is unsupported.
func Grant(rec Record, localeSupported bool) Record {
	rec.HasUsedVoiceInput = true
	if !localeSupported {
		rec.HasUsedVoiceInputUnsupportedLocale = true
	}
	return rec
}
