package model

import (
	"log/slog"
	"strings"

	"github.com/m-mizutani/ghrelease/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// GitHubRepo is a repository identified by owner and name
type GitHubRepo struct {
	Owner string
	Name  string
}

// ParseGitHubRepo parses an "owner/name" repository identifier
func ParseGitHubRepo(id string) (GitHubRepo, error) {
	if id == "" {
		return GitHubRepo{}, goerr.Wrap(types.ErrValidationFailed, "no repo given")
	}

	owner, name, ok := strings.Cut(id, "/")
	if !ok {
		return GitHubRepo{}, goerr.Wrap(types.ErrValidationFailed,
			"repo doesn't look like a valid GitHub repo (e.g. owner/name)",
			goerr.V("repo", id),
		)
	}
	if owner == "" || name == "" {
		return GitHubRepo{}, goerr.Wrap(types.ErrValidationFailed,
			"repo owner and name must not be empty",
			goerr.V("repo", id),
		)
	}

	return GitHubRepo{Owner: owner, Name: name}, nil
}

func (x GitHubRepo) String() string {
	return x.Owner + "/" + x.Name
}

type PublishReleaseInput struct {
	Token types.GitHubToken `masq:"secret"`
	Repo  string
	Tag   string
	Notes string
}

func (x *PublishReleaseInput) Validate() error {
	if x.Token == "" {
		return goerr.Wrap(types.ErrValidationFailed, "no API token given")
	}
	if _, err := ParseGitHubRepo(x.Repo); err != nil {
		return err
	}
	if x.Tag == "" {
		return goerr.Wrap(types.ErrValidationFailed, "no tag given")
	}
	if x.Notes == "" {
		return goerr.Wrap(types.ErrValidationFailed, "no notes given")
	}

	return nil
}

func (x PublishReleaseInput) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("token", x.Token),
		slog.String("repo", x.Repo),
		slog.String("tag", x.Tag),
		slog.String("notes", x.Notes),
	)
}

// ReleaseRequest is the payload of a release creation request
type ReleaseRequest struct {
	Repo       GitHubRepo
	TagName    string
	Name       string
	Body       string
	PreRelease bool
}

// NewReleaseRequest builds a release creation payload from the input. The display name is the tag prefixed with "v".
func NewReleaseRequest(input *PublishReleaseInput) (*ReleaseRequest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	repo, err := ParseGitHubRepo(input.Repo)
	if err != nil {
		return nil, err
	}

	return &ReleaseRequest{
		Repo:       repo,
		TagName:    input.Tag,
		Name:       "v" + input.Tag,
		Body:       input.Notes,
		PreRelease: IsPreRelease(input.Tag),
	}, nil
}

type ReleaseResult struct {
	ID      int64
	URL     string
	HTMLURL string
}
