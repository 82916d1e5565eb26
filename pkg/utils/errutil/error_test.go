package errutil_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/ghrelease/pkg/domain/types"
	"github.com/m-mizutani/ghrelease/pkg/utils/errutil"
	"github.com/m-mizutani/ghrelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestHandleError(t *testing.T) {
	t.Run("log goerr with values", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := logging.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
		err := goerr.Wrap(types.ErrGitHubAPI, "release creation was rejected", goerr.V("repo", "owner/name"))

		errutil.HandleError(ctx, "failed to publish release", err)

		gt.True(t, strings.Contains(buf.String(), "failed to publish release"))
		gt.True(t, strings.Contains(buf.String(), "release creation was rejected"))
	})

	t.Run("handle plain error", func(t *testing.T) {
		// Should not panic
		errutil.HandleError(context.Background(), "test message", errors.New("test error"))
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := logging.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

		errutil.HandleError(ctx, "test message", nil)
		gt.V(t, buf.Len()).Equal(0)
	})
}
