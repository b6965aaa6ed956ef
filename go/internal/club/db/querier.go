package db

import (
	"context"
)

type Querier interface {
	ListAboutAcademy(ctx context.Context) ([]AboutAcademy, error)
	ListAboutCompany(ctx context.Context) ([]AboutCompany, error)
	ListBanners(ctx context.Context) ([]Banner, error)
	ListLeaders(ctx context.Context) ([]Leader, error)
	ListPartners(ctx context.Context) ([]Partner, error)
	ListStadiums(ctx context.Context) ([]Stadium, error)
	SearchLeaders(ctx context.Context, arg SearchLeadersParams) ([]Leader, error)
}

var _ Querier = (*Queries)(nil)
