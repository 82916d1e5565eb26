package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"

	"github.com/m-mizutani/ghrelease/pkg/domain/model"
	"github.com/m-mizutani/ghrelease/pkg/domain/types"
)

type GitHub interface {
	CreateRelease(ctx context.Context, token types.GitHubToken, req *model.ReleaseRequest) (*model.ReleaseResult, error)
}
