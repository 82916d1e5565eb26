package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ghrelease/pkg/domain/model"
	"github.com/m-mizutani/ghrelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// VerifyTagClassifier checks model.IsPreRelease against the documented examples
func (x *UseCase) VerifyTagClassifier(ctx context.Context) error {
	return verifyTagClassifier(ctx, model.IsPreRelease, model.PreReleaseExamples)
}

func verifyTagClassifier(ctx context.Context, classify func(string) bool, examples []model.PreReleaseExample) error {
	var failed int
	for _, ex := range examples {
		if actual := classify(ex.Tag); actual != ex.PreRelease {
			failed++
			logging.From(ctx).Error("Unexpected tag classification",
				slog.String("tag", ex.Tag),
				slog.Bool("expected", ex.PreRelease),
				slog.Bool("actual", actual),
			)
		}
	}

	if failed > 0 {
		return goerr.New("tag classifier check failed",
			goerr.V("failed", failed),
			goerr.V("total", len(examples)),
		)
	}

	logging.From(ctx).Info("Tag classifier check passed", slog.Int("total", len(examples)))
	return nil
}
