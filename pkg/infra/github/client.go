package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/ghrelease/pkg/domain/interfaces"
	"github.com/m-mizutani/ghrelease/pkg/domain/model"
	"github.com/m-mizutani/ghrelease/pkg/domain/types"
	"github.com/m-mizutani/ghrelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for API requests
func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

// WithBaseURL sets the API endpoint of GitHub Enterprise Server, e.g. https://github.example.com/api/v3/
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func New(options ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{},
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

// tokenTransport sets the token as a bearer Authorization header
type tokenTransport struct {
	token types.GitHubToken
	base  http.RoundTripper
}

func (x *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+string(x.token))
	return x.base.RoundTrip(req)
}

func (x *Client) buildGithubClient(token types.GitHubToken) (*github.Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "token is empty")
	}

	base := x.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	httpClient := *x.httpClient
	httpClient.Transport = &tokenTransport{token: token, base: base}

	if x.baseURL == "" {
		return github.NewClient(&httpClient), nil
	}

	client, err := github.NewEnterpriseClient(x.baseURL, x.baseURL, &httpClient)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL",
			goerr.V("url", x.baseURL),
			goerr.V("cause", err.Error()),
		)
	}
	return client, nil
}

// CreateRelease creates a release for req.TagName. The token is sent only as the Authorization header.
func (x *Client) CreateRelease(ctx context.Context, token types.GitHubToken, req *model.ReleaseRequest) (*model.ReleaseResult, error) {
	client, err := x.buildGithubClient(token)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("Sending CreateRelease request",
		slog.Any("token", token),
		slog.String("repo", req.Repo.String()),
		slog.String("tag", req.TagName),
		slog.Bool("prerelease", req.PreRelease),
	)

	// https://docs.github.com/en/rest/releases/releases?apiVersion=2022-11-28#create-a-release
	release, resp, err := client.Repositories.CreateRelease(ctx, req.Repo.Owner, req.Repo.Name, &github.RepositoryRelease{
		TagName:    github.String(req.TagName),
		Name:       github.String(req.Name),
		Body:       github.String(req.Body),
		Prerelease: github.Bool(req.PreRelease),
	})
	if err != nil {
		return nil, classifyError(err, resp, req)
	}

	if release.GetURL() == "" {
		return nil, goerr.Wrap(types.ErrGitHubAPI, "release URL is not found in response",
			goerr.V("repo", req.Repo.String()),
			goerr.V("tag", req.TagName),
			goerr.V("status", resp.StatusCode),
		)
	}

	logging.From(ctx).Debug("CreateRelease response",
		slog.Int64("id", release.GetID()),
		slog.String("url", release.GetURL()),
		slog.String("html_url", release.GetHTMLURL()),
	)

	return &model.ReleaseResult{
		ID:      release.GetID(),
		URL:     release.GetURL(),
		HTMLURL: release.GetHTMLURL(),
	}, nil
}

func classifyError(err error, resp *github.Response, req *model.ReleaseRequest) error {
	values := []goerr.Option{
		goerr.V("repo", req.Repo.String()),
		goerr.V("tag", req.TagName),
		goerr.V("cause", err.Error()),
	}

	var (
		errResp  *github.ErrorResponse
		rateErr  *github.RateLimitError
		abuseErr *github.AbuseRateLimitError
	)

	switch {
	case errors.As(err, &errResp):
		if errResp.Response != nil {
			values = append(values, goerr.V("status", errResp.Response.StatusCode))
		}
		return goerr.Wrap(types.ErrGitHubAPI, "release creation was rejected", values...)

	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		return goerr.Wrap(types.ErrGitHubAPI, "release creation was rate limited", values...)

	case resp != nil && resp.Response != nil:
		// the request reached GitHub, so the body could not be decoded
		values = append(values, goerr.V("status", resp.StatusCode))
		return goerr.Wrap(types.ErrGitHubAPI, "failed to parse release creation response", values...)

	default:
		return goerr.Wrap(types.ErrTransport, "failed to send release creation request", values...)
	}
}
