package session

// Shell is the session-facing subset of host keyboard behavior.
type Shell interface {
	// IsVoiceMode reports whether the host still considers voice the active
	// input method. A cancel that arrives after the host already switched
	// back to the keyboard needs no further switching.
	IsVoiceMode() bool

	// SwitchToPreviousInput asks the host to return to the prior input method.
	SwitchToPreviousInput()
}

// noopShell preserves session flow when no shell is wired.
type noopShell struct{}

func (noopShell) IsVoiceMode() bool      { return false }
func (noopShell) SwitchToPreviousInput() {}
