package session

import "context"

// Recognizer abstracts the external speech recognition engine. Begin must
// return promptly; results and cancellations arrive later as calls to
// OnRecognitionResult / OnCancel on the host's event thread.
type Recognizer interface {
	Begin(context.Context, FieldContext) error
	Cancel(context.Context) error
}

// PlaceholderRecognizer is a no-op placeholder used in tests/fallback wiring.
type PlaceholderRecognizer struct{}

func (PlaceholderRecognizer) Begin(context.Context, FieldContext) error {
	return nil
}

func (PlaceholderRecognizer) Cancel(context.Context) error {
	return nil
}
