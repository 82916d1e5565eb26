package model_test

import (
	"testing"

	"github.com/m-mizutani/ghrelease/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestIsPreRelease(t *testing.T) {
	for _, ex := range model.PreReleaseExamples {
		t.Run(ex.Tag, func(t *testing.T) {
			gt.V(t, model.IsPreRelease(ex.Tag)).Equal(ex.PreRelease)
		})
	}

	t.Run("empty tag is stable", func(t *testing.T) {
		gt.False(t, model.IsPreRelease(""))
	})

	t.Run("markers are case sensitive", func(t *testing.T) {
		gt.False(t, model.IsPreRelease("1.2.3-BETA"))
		gt.False(t, model.IsPreRelease("1.2.3-rc1"))
		gt.False(t, model.IsPreRelease("1.2.3-Alpha"))
	})

	t.Run("marker matches anywhere in the tag", func(t *testing.T) {
		gt.True(t, model.IsPreRelease("beta-1.2.3"))
		gt.True(t, model.IsPreRelease("1.2.3RC"))
		gt.True(t, model.IsPreRelease("alphabet-1.0"))
	})
}
