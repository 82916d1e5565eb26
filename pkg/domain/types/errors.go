package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
	ErrTransport        = goerr.New("transport error")
	ErrGitHubAPI        = goerr.New("GitHub API error")
)
