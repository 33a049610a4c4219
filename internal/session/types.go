package session

// Action tells the host what must happen after a start request.
type Action string

const (
	ActionNone              Action = "none"
	ActionShowConsentDialog Action = "show_consent_dialog"
	ActionBeginRecognition  Action = "begin_recognition"
)

// FieldContext is an immutable snapshot of the target text field, captured
// when the session starts.
type FieldContext struct {
	FieldIsPassword  bool
	Locale           string
	EnabledLanguages []string
}

// TextEdit describes a document change for the host to apply: insert
// InsertText at the cursor, or delete DeleteChars before it.
type TextEdit struct {
	InsertText  string
	DeleteChars uint32
}

// IsZero reports whether the edit changes nothing.
func (e TextEdit) IsZero() bool {
	return e == TextEdit{}
}
