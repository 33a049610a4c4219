package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openkbd/voiceime/internal/config"
	"github.com/openkbd/voiceime/internal/recognize"
	"github.com/openkbd/voiceime/internal/session"
)

// commandDemo drives one scripted voice session end to end and prints each
// host-visible step. The consent record stays in memory so a demo run never
// touches the persisted record.
func (r Runner) commandDemo(ctx context.Context, cfg config.Config, logger *slog.Logger) int {
	metrics, err := buildEmitter(cfg)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup telemetry: %v\n", err)
		return 1
	}

	recognizer := recognize.NewScripted(recognize.Result{
		Candidates: []string{"hello world", "yellow whirled"},
		Alternatives: map[string][]string{
			"hello": {"yellow", "jello"},
			"world": {"whirled", "word"},
		},
	})

	var emitter session.Emitter
	if metrics != nil {
		emitter = metrics
	}

	sess := session.New(logger, nil, recognizer, nil, emitter, session.Options{
		SupportedLocales: cfg.Locale.Supported,
	})

	field := session.FieldContext{Locale: firstLocale(cfg)}
	fmt.Fprintf(r.Stdout, "field locale: %s\n", field.Locale)

	action := sess.Start(ctx, field)
	fmt.Fprintf(r.Stdout, "start -> %s (state %s)\n", action, sess.State())
	if action == session.ActionShowConsentDialog {
		fmt.Fprintln(r.Stdout, "consent dialog shown; user accepts")
		sess.OnConsentResult(ctx, true)
		fmt.Fprintf(r.Stdout, "consent granted (state %s)\n", sess.State())
	}

	result := recognizer.Next()
	edit := sess.OnRecognitionResult(result.Candidates, result.Alternatives, cfg.Input.CapitalizeFirstWord)
	fmt.Fprintf(r.Stdout, "recognized %q (state %s)\n", edit.InsertText, sess.State())

	if suggestions, ok := sess.OnCursorWord("world"); ok {
		fmt.Fprintf(r.Stdout, "alternatives for %q: %v\n", "world", suggestions)
		sess.OnSuggestionChosen("world", suggestions[0])
		fmt.Fprintf(r.Stdout, "substituted %q -> %q\n", "world", suggestions[0])
	}

	const typed = "ok!"
	for _, ch := range typed {
		if strings.ContainsRune(cfg.Input.Separators, ch) {
			sess.OnSeparatorTyped()
		} else {
			sess.OnCharacterTyped()
		}
	}
	fmt.Fprintf(r.Stdout, "typed %q (state %s)\n", typed, sess.State())

	counters := sess.End()
	fmt.Fprintf(r.Stdout, "session ended (state %s)\n", sess.State())
	fmt.Fprintf(r.Stdout, "edits: inserted=%d punctuation=%d deleted=%d\n",
		counters.InsertedChars, counters.InsertedPunctuation, counters.DeletedChars)
	return 0
}

// firstLocale picks the demo field locale from config, defaulting to en-US.
func firstLocale(cfg config.Config) string {
	if len(cfg.Locale.Supported) > 0 {
		return cfg.Locale.Supported[0]
	}
	return "en-US"
}
