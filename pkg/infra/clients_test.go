package infra_test

import (
	"testing"

	"github.com/m-mizutani/ghrelease/pkg/domain/mock"
	"github.com/m-mizutani/ghrelease/pkg/infra"
	"github.com/m-mizutani/ghrelease/pkg/infra/github"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.GitHub()).Equal(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("WithGitHub accepts the REST client", func(t *testing.T) {
		client := github.New()
		clients := infra.New(infra.WithGitHub(client))
		gt.V(t, clients.GitHub()).Equal(client)
	})
}
