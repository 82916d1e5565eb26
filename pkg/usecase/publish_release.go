package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ghrelease/pkg/domain/model"
	"github.com/m-mizutani/ghrelease/pkg/domain/types"
	"github.com/m-mizutani/ghrelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// PublishRelease creates a GitHub release for input.Tag with input.Notes as its body. The release is marked as pre-release when the tag has a beta, RC, prerelease or alpha label.
// All inputs are validated before any request is sent. The call is not idempotent: publishing the same tag twice sends two requests and GitHub rejects the second one.
func (x *UseCase) PublishRelease(ctx context.Context, input *model.PublishReleaseInput) (*model.ReleaseResult, error) {
	logging.From(ctx).Info("Publishing release", slog.Any("input", input))

	req, err := model.NewReleaseRequest(input)
	if err != nil {
		return nil, err
	}

	client := x.clients.GitHub()
	if client == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	result, err := client.CreateRelease(ctx, input.Token, req)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Release added",
		slog.String("url", result.URL),
		slog.String("html_url", result.HTMLURL),
		slog.String("name", req.Name),
		slog.Bool("prerelease", req.PreRelease),
	)

	return result, nil
}
