// Package session coordinates one voice-input attempt: the consent gate,
// the recognition lifecycle state machine, word alternatives, and edit
// accounting.
//
// A Session is single-threaded by contract: every method must be called
// from the host keyboard's event thread. The external recognizer delivers
// results asynchronously, but the host hands them into this thread before
// calling OnRecognitionResult or OnCancel, so no mutation ever races.
package session

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/openkbd/voiceime/internal/accounting"
	"github.com/openkbd/voiceime/internal/alternatives"
	"github.com/openkbd/voiceime/internal/consent"
	"github.com/openkbd/voiceime/internal/fsm"
)

// Options carries host configuration the session consults at start.
type Options struct {
	// SupportedLocales lists locales the recognizer understands, e.g.
	// "en-US". A field locale outside this list triggers the
	// unsupported-locale consent flow.
	SupportedLocales []string
}

// memoryStore keeps the consent record in memory when no store is wired.
type memoryStore struct {
	rec consent.Record
}

func (s *memoryStore) Load() (consent.Record, error) { return s.rec, nil }
func (s *memoryStore) Save(rec consent.Record) error { s.rec = rec; return nil }

// Session owns the lifecycle state and mutable caches of one voice-input
// attempt, from start request to committed/reverted end.
type Session struct {
	logger     *slog.Logger
	store      consent.Store
	recognizer Recognizer
	shell      Shell
	emitter    Emitter

	supported map[string]struct{}

	state    fsm.State
	cache    *alternatives.Cache
	recorder *accounting.Recorder

	sessionID       string
	field           FieldContext
	record          consent.Record
	localeSupported bool

	afterVoice         bool
	showingSuggestions bool
	insertedText       string
	cursorPos          int
	selectionSpan      int
}

// New constructs a session with safe default fallbacks for nil collaborators.
func New(
	logger *slog.Logger,
	store consent.Store,
	recognizer Recognizer,
	shell Shell,
	emitter Emitter,
	opts Options,
) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if store == nil {
		store = &memoryStore{}
	}
	if recognizer == nil {
		recognizer = PlaceholderRecognizer{}
	}
	if shell == nil {
		shell = noopShell{}
	}
	if emitter == nil {
		emitter = noopEmitter{}
	}

	supported := make(map[string]struct{}, len(opts.SupportedLocales))
	for _, locale := range opts.SupportedLocales {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			continue
		}
		supported[locale] = struct{}{}
	}

	return &Session{
		logger:     logger,
		store:      store,
		recognizer: recognizer,
		shell:      shell,
		emitter:    emitter,
		supported:  supported,
		state:      fsm.StateIdle,
		cache:      alternatives.New(),
		recorder:   accounting.NewRecorder(),
	}
}

// State returns the current lifecycle state snapshot.
func (s *Session) State() fsm.State {
	return s.state
}

// transition applies one FSM event; invalid transitions are ignorable
// protocol violations, logged and dropped without changing state.
func (s *Session) transition(event fsm.Event) bool {
	next, err := fsm.Transition(s.state, event)
	if err != nil {
		s.logger.Debug("ignoring out-of-order event",
			"session_id", s.sessionID,
			"state", string(s.state),
			"event", string(event),
		)
		return false
	}
	s.state = next
	return true
}

// Start requests a new voice session for the given field. It returns the
// action the host must take: show the consent dialog, begin recognition, or
// nothing. Start outside Idle, and on password fields, is refused.
func (s *Session) Start(ctx context.Context, field FieldContext) Action {
	if s.state != fsm.StateIdle {
		s.logger.Debug("start ignored outside idle", "state", string(s.state))
		return ActionNone
	}
	if field.FieldIsPassword {
		s.logger.Debug("start refused for password field")
		return ActionNone
	}

	s.sessionID = uuid.NewString()
	s.field = field
	s.localeSupported = s.localeIsSupported(field.Locale)

	rec, err := s.store.Load()
	if err != nil {
		s.logger.Warn("load consent record failed; assuming first use",
			"session_id", s.sessionID, "error", err.Error())
		rec = consent.Record{}
	}
	s.record = rec

	if consent.NeedsConsent(rec, s.localeSupported) {
		s.transition(fsm.EventConsentRequired)
		s.logger.Info("consent dialog required",
			"session_id", s.sessionID,
			"locale", field.Locale,
			"locale_supported", s.localeSupported,
		)
		return ActionShowConsentDialog
	}

	s.beginListening(ctx)
	return ActionBeginRecognition
}

// OnConsentResult resumes a start request after the consent dialog closes.
func (s *Session) OnConsentResult(ctx context.Context, granted bool) {
	if s.state != fsm.StateAwaitingConsent {
		s.logger.Debug("consent result ignored", "state", string(s.state))
		return
	}

	if !granted {
		s.transition(fsm.EventConsentDenied)
		s.logger.Info("consent denied", "session_id", s.sessionID)
		s.shell.SwitchToPreviousInput()
		return
	}

	s.record = consent.Grant(s.record, s.localeSupported)
	if err := s.store.Save(s.record); err != nil {
		// Best effort: a failed save only risks re-showing the dialog next
		// session, so the in-memory record carries the session forward.
		s.logger.Warn("save consent record failed; continuing",
			"session_id", s.sessionID, "error", err.Error())
	}
	s.beginListening(ctx)
}

// beginListening resets per-session accounting and asks the recognizer to
// start capturing.
func (s *Session) beginListening(ctx context.Context) {
	s.recorder.Reset()
	s.afterVoice = false
	s.showingSuggestions = false
	s.insertedText = ""
	s.cursorPos = 0
	s.selectionSpan = 0

	s.transition(fsm.EventBegin)
	if err := s.recognizer.Begin(ctx, s.field); err != nil {
		s.logger.Warn("recognizer begin failed",
			"session_id", s.sessionID, "error", err.Error())
	}
	s.emitter.EmitSessionStarted()
	s.logger.Info("listening", "session_id", s.sessionID, "locale", s.field.Locale)
}

// OnCancel handles a recognition cancellation from timeout, user, or system.
// Cancels outside Listening are idempotent no-ops.
func (s *Session) OnCancel(ctx context.Context) {
	if s.state != fsm.StateListening {
		s.logger.Debug("cancel ignored outside listening", "state", string(s.state))
		return
	}

	s.transition(fsm.EventCancel)
	if err := s.recognizer.Cancel(ctx); err != nil {
		s.logger.Warn("recognizer cancel failed",
			"session_id", s.sessionID, "error", err.Error())
	}

	if s.shell.IsVoiceMode() {
		s.shell.SwitchToPreviousInput()
	}
	s.logger.Info("recognition cancelled", "session_id", s.sessionID)
}

// End closes the session from any post-recognition state, flushes the
// modification counters to telemetry, and returns the flushed snapshot.
func (s *Session) End() accounting.Counters {
	outcome := s.state

	switch s.state {
	case fsm.StateListening:
		_ = s.recognizer.Cancel(context.Background())
		s.transition(fsm.EventCancel)
	case fsm.StateAwaitingConsent:
		s.transition(fsm.EventConsentDenied)
	case fsm.StateHighlighted, fsm.StateCommitted, fsm.StateReverted:
		s.transition(fsm.EventEnd)
	}

	counters := s.recorder.Flush()
	if outcome != fsm.StateIdle {
		s.emitter.EmitModification(counters)
		s.emitter.EmitSessionEnded(string(outcome))
		s.logger.Info("session ended",
			"session_id", s.sessionID,
			"outcome", string(outcome),
			"inserted_chars", counters.InsertedChars,
			"inserted_punctuation", counters.InsertedPunctuation,
			"deleted_chars", counters.DeletedChars,
		)
	}

	s.cache.Clear()
	s.afterVoice = false
	s.showingSuggestions = false
	s.insertedText = ""
	return counters
}

// localeIsSupported matches the field locale against the configured list,
// falling back to its base language (the part before '-').
func (s *Session) localeIsSupported(locale string) bool {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return false
	}
	if _, ok := s.supported[locale]; ok {
		return true
	}
	if base, _, found := strings.Cut(locale, "-"); found {
		if _, ok := s.supported[base]; ok {
			return true
		}
	}
	return false
}
