package infra

import (
	"github.com/m-mizutani/ghrelease/pkg/domain/interfaces"
)

type Clients struct {
	github interfaces.GitHub
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}
