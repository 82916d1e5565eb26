package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ghrelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const sentryFlushTimeout = 2 * time.Second

type Sentry struct {
	dsn         string `masq:"secret"`
	environment string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("GHRELEASE_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("GHRELEASE_SENTRY_ENV"),
		},
	}
}

func (x *Sentry) Enabled() bool {
	return x.dsn != ""
}

func (x *Sentry) Configure(ctx context.Context) error {
	if !x.Enabled() {
		logging.From(ctx).Debug("sentry is not configured")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry")
	}

	return nil
}

// Flush waits for buffered events to be sent. The process exits right after a release is published, so events are lost without it.
func (x *Sentry) Flush() {
	if !x.Enabled() {
		return
	}
	sentry.Flush(sentryFlushTimeout)
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("DSN.len", len(x.dsn)),
		slog.String("Environment", x.environment),
	)
}
