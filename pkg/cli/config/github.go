package config

import (
	"log/slog"

	"github.com/m-mizutani/ghrelease/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	apiURL string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub Enterprise Server API URL (e.g. https://github.example.com/api/v3/). github.com is used if not set",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("GHRELEASE_GITHUB_API_URL"),
		},
	}
}

func (x *GitHub) New() *github.Client {
	var options []github.Option
	if x.apiURL != "" {
		options = append(options, github.WithBaseURL(x.apiURL))
	}
	return github.New(options...)
}

func (x *GitHub) LogValue() slog.Value {
	apiURL := x.apiURL
	if apiURL == "" {
		apiURL = "https://api.github.com/"
	}
	return slog.GroupValue(
		slog.String("APIURL", apiURL),
	)
}
