package model_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/ghrelease/pkg/domain/model"
	"github.com/m-mizutani/ghrelease/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseGitHubRepo(t *testing.T) {
	t.Run("valid identifier", func(t *testing.T) {
		repo, err := model.ParseGitHubRepo("abbeycode/UnrarKit")
		gt.NoError(t, err)
		gt.V(t, repo.Owner).Equal("abbeycode")
		gt.V(t, repo.Name).Equal("UnrarKit")
		gt.V(t, repo.String()).Equal("abbeycode/UnrarKit")
	})

	testCases := map[string]string{
		"empty":         "",
		"no separator":  "invalidrepo",
		"missing owner": "/name",
		"missing name":  "owner/",
	}
	for title, id := range testCases {
		t.Run(title, func(t *testing.T) {
			_, err := model.ParseGitHubRepo(id)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrValidationFailed))
		})
	}
}

func validInput() model.PublishReleaseInput {
	return model.PublishReleaseInput{
		Token: "T",
		Repo:  "owner/name",
		Tag:   "2.0.0",
		Notes: "Fixes",
	}
}

func TestPublishReleaseInputValidate(t *testing.T) {
	t.Run("valid input passes validation", func(t *testing.T) {
		input := validInput()
		gt.NoError(t, input.Validate())
	})

	testCases := map[string]func(*model.PublishReleaseInput){
		"empty token":        func(x *model.PublishReleaseInput) { x.Token = "" },
		"empty repo":         func(x *model.PublishReleaseInput) { x.Repo = "" },
		"repo w/o separator": func(x *model.PublishReleaseInput) { x.Repo = "invalidrepo" },
		"empty tag":          func(x *model.PublishReleaseInput) { x.Tag = "" },
		"empty notes":        func(x *model.PublishReleaseInput) { x.Notes = "" },
	}
	for title, mutate := range testCases {
		t.Run(title, func(t *testing.T) {
			input := validInput()
			mutate(&input)
			err := input.Validate()
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrValidationFailed))
		})
	}
}

func TestNewReleaseRequest(t *testing.T) {
	t.Run("stable tag", func(t *testing.T) {
		input := validInput()
		req, err := model.NewReleaseRequest(&input)
		gt.NoError(t, err)
		gt.V(t, req.Repo).Equal(model.GitHubRepo{Owner: "owner", Name: "name"})
		gt.V(t, req.TagName).Equal("2.0.0")
		gt.V(t, req.Name).Equal("v2.0.0")
		gt.V(t, req.Body).Equal("Fixes")
		gt.False(t, req.PreRelease)
	})

	t.Run("beta tag", func(t *testing.T) {
		input := validInput()
		input.Tag = "2.0.0-beta"
		req, err := model.NewReleaseRequest(&input)
		gt.NoError(t, err)
		gt.V(t, req.Name).Equal("v2.0.0-beta")
		gt.True(t, req.PreRelease)
	})

	t.Run("invalid input", func(t *testing.T) {
		input := validInput()
		input.Repo = "invalidrepo"
		req, err := model.NewReleaseRequest(&input)
		gt.Error(t, err)
		gt.V(t, req).Equal(nil)
	})
}

func TestPublishReleaseInputLogValue(t *testing.T) {
	input := validInput()
	input.Token = "ghp_very_secret"
	v := input.LogValue()
	gt.False(t, strings.Contains(v.String(), "ghp_very_secret"))
}
