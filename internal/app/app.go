// Package app wires configuration, logging, and the session core behind the
// voiceime command-line interface.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/openkbd/voiceime/internal/cli"
	"github.com/openkbd/voiceime/internal/config"
	"github.com/openkbd/voiceime/internal/consent"
	"github.com/openkbd/voiceime/internal/doctor"
	"github.com/openkbd/voiceime/internal/logging"
	"github.com/openkbd/voiceime/internal/telemetry"
	"github.com/openkbd/voiceime/internal/version"
)

type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText("voiceime"))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, cli.HelpText("voiceime"))
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	logRuntime, err := logging.New()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("load config failed", "error", err.Error())
		return 1
	}
	for _, w := range cfgLoaded.Warnings {
		msg := w.Message
		if w.Line > 0 {
			msg = fmt.Sprintf("line %d: %s", w.Line, w.Message)
		}
		fmt.Fprintf(r.Stderr, "warning: %s\n", msg)
		logger.Warn("config warning", "line", w.Line, "message", w.Message)
	}

	logger.Info("command start",
		"command", parsed.Command,
		"config", cfgLoaded.Path,
		"log", logRuntime.Path,
	)

	switch parsed.Command {
	case cli.CommandDoctor:
		report := doctor.Run(cfgLoaded)
		fmt.Fprintln(r.Stdout, report.String())
		if report.OK() {
			return 0
		}
		return 1
	case cli.CommandConsent:
		return r.commandConsent(cfgLoaded.Config)
	case cli.CommandDemo:
		return r.commandDemo(ctx, cfgLoaded.Config, logger)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}
}

// commandConsent prints the persisted consent record.
func (r Runner) commandConsent(cfg config.Config) int {
	store, err := consent.NewFileStore(cfg.Consent.Path)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	rec, err := store.Load()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(r.Stdout, "consent record: %s\n", store.Path())
	fmt.Fprintf(r.Stdout, "  has_used_voice_input: %t\n", rec.HasUsedVoiceInput)
	fmt.Fprintf(r.Stdout, "  has_used_voice_input_unsupported_locale: %t\n",
		rec.HasUsedVoiceInputUnsupportedLocale)
	return 0
}

// buildEmitter selects the telemetry emitter for the configured mode. The
// global meter provider is a no-op unless the host installed an exporter.
func buildEmitter(cfg config.Config) (*telemetry.Metrics, error) {
	if !cfg.Telemetry.Enable {
		return nil, nil
	}
	return telemetry.NewMetrics(otel.GetMeterProvider())
}
