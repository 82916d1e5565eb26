package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/m-mizutani/ghrelease/pkg/cli/config"
	"github.com/m-mizutani/ghrelease/pkg/domain/model"
	"github.com/m-mizutani/ghrelease/pkg/domain/types"
	"github.com/m-mizutani/ghrelease/pkg/infra"
	"github.com/m-mizutani/ghrelease/pkg/usecase"
	"github.com/m-mizutani/ghrelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const publishArgCount = 4

func runPublishRelease(ctx context.Context, stdout io.Writer, args []string, githubConfig *config.GitHub) error {
	if len(args) != publishArgCount {
		// arguments are not echoed because the first one is the API token
		return goerr.Wrap(types.ErrInvalidOption, "unexpected number of arguments",
			goerr.V("given", len(args)),
			goerr.V("expected", publishArgCount),
		)
	}

	input := &model.PublishReleaseInput{
		Token: types.GitHubToken(args[0]),
		Repo:  args[1],
		Tag:   args[2],
		Notes: args[3],
	}

	logging.From(ctx).Debug("Starting publish", slog.Any("github", githubConfig))

	uc := usecase.New(infra.New(
		infra.WithGitHub(githubConfig.New()),
	))

	result, err := uc.PublishRelease(ctx, input)
	if err != nil {
		return goerr.Wrap(err, "failed to publish release",
			goerr.V("repo", input.Repo),
			goerr.V("tag", input.Tag),
		)
	}

	if _, err := fmt.Fprintf(stdout, "Release added: %s\n", result.URL); err != nil {
		return goerr.Wrap(err, "failed to write status")
	}

	return nil
}

func runVerifyTagClassifier(ctx context.Context) error {
	uc := usecase.New(infra.New())
	if err := uc.VerifyTagClassifier(ctx); err != nil {
		return err
	}
	return nil
}
