package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/connectn/internal/entity"
)

type mockMatchRepo struct {
	mock.Mock
}

func newMockMatchRepo(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockMatchRepo {
	m := &mockMatchRepo{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (that *mockMatchRepo) Create(ctx context.Context, match *entity.Match) error {
	args := that.Called(ctx, match)
	return args.Error(0)
}

func (that *mockMatchRepo) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	args := that.Called(ctx, id)
	match, _ := args.Get(0).(*entity.Match)
	return match, args.Error(1)
}

func (that *mockMatchRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func (that *mockMatchRepo) List(ctx context.Context) ([]*entity.Match, error) {
	args := that.Called(ctx)
	matches, _ := args.Get(0).([]*entity.Match)
	return matches, args.Error(1)
}
