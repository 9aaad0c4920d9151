package directory_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/inno-lab/innovaid/pkg/repository/memory"
	"github.com/inno-lab/innovaid/pkg/service/directory"
)

func TestResolver_ResolveName(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	gt.NoError(t, repo.User().Put(ctx, &model.User{
		ID:   "user-1",
		Name: "Dana Smith",
		Type: types.UserTypeInnovator,
	})).Required()

	r := directory.NewResolver(repo)

	gt.V(t, r.ResolveName(ctx, "user-1")).Equal("Dana Smith")
	gt.V(t, r.ResolveName(ctx, "")).Equal("")
	gt.V(t, r.ResolveName(ctx, "nobody")).Equal("")
}

func TestResolver_CachesWithinTTL(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	gt.NoError(t, repo.User().Put(ctx, &model.User{
		ID:   "user-1",
		Name: "Before",
		Type: types.UserTypeInnovator,
	})).Required()

	r := directory.NewResolver(repo, directory.WithResolverTTL(time.Hour))
	gt.V(t, r.ResolveName(ctx, "user-1")).Equal("Before")

	gt.NoError(t, repo.User().Put(ctx, &model.User{
		ID:   "user-1",
		Name: "After",
		Type: types.UserTypeInnovator,
	})).Required()

	// Still the cached name until the TTL expires
	gt.V(t, r.ResolveName(ctx, "user-1")).Equal("Before")
}

func TestResolver_UnknownUserNotCached(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	r := directory.NewResolver(repo, directory.WithResolverTTL(time.Hour))

	gt.V(t, r.ResolveName(ctx, "user-1")).Equal("")

	gt.NoError(t, repo.User().Put(ctx, &model.User{
		ID:   "user-1",
		Name: "Dana Smith",
		Type: types.UserTypeInnovator,
	})).Required()

	gt.V(t, r.ResolveName(ctx, "user-1")).Equal("Dana Smith")
}
