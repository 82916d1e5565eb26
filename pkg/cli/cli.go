package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/ghrelease/pkg/cli/config"
	"github.com/m-mizutani/ghrelease/pkg/utils/errutil"
	"github.com/m-mizutani/ghrelease/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	stdout io.Writer
}

type Option func(*CLI)

// WithStdout replaces the writer of the status line printed after a release is added
func WithStdout(w io.Writer) Option {
	return func(x *CLI) {
		x.stdout = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		stdout: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
		sentry    config.Sentry
		github    config.GitHub
	)

	runCtx := context.Background()

	// positional arguments are passed as is, even if notes start with "-"
	stopOnFirstArg := 1

	app := &cli.Command{
		Name:         "ghrelease",
		Usage:        "Publish a GitHub release for a tag",
		ArgsUsage:    "<API token> <owner/repo> <tag> <release notes> | test",
		Writer:       x.stdout,
		StopOnNthArg: &stopOnFirstArg,
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("GHRELEASE_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("GHRELEASE_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("GHRELEASE_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
		}, sentry.Flags(), github.Flags()),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			ctx = logging.WithRequestID(ctx)
			runCtx = ctx

			if err := sentry.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			args := c.Args().Slice()
			if len(args) == 1 && strings.EqualFold(args[0], "test") {
				return runVerifyTagClassifier(ctx)
			}

			return runPublishRelease(ctx, x.stdout, args, &github)
		},
	}

	defer sentry.Flush()

	if err := app.Run(context.Background(), argv); err != nil {
		errutil.HandleError(runCtx, "fatal error", err)
		return err
	}

	return nil
}
