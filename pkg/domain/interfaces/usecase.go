package interfaces

import (
	"context"

	"github.com/m-mizutani/ghrelease/pkg/domain/model"
)

type UseCase interface {
	PublishRelease(ctx context.Context, input *model.PublishReleaseInput) (*model.ReleaseResult, error)
	VerifyTagClassifier(ctx context.Context) error
}
