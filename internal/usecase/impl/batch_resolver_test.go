package impl

import (
	"context"
	"testing"

	"foodcart/internal/domain/entity"
	mockUC "foodcart/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBatchResolver_MemoizesSuccessAndFailure(t *testing.T) {
	inner := mockUC.NewMockCoordinateResolver(t)
	resolver := newBatchResolver(inner)
	ctx := context.Background()

	inner.EXPECT().EnsureResolved(mock.Anything, entity.Address("ok")).Return(entity.Coordinates{Lat: 1, Lng: 1}, nil).Once()
	inner.EXPECT().EnsureResolved(mock.Anything, entity.Address("bad")).Return(entity.Coordinates{}, providerFailure("bad")).Once()

	resolver.Prefetch(ctx, []entity.Address{"ok", "bad", "ok", "bad"}, 2)

	coords, err := resolver.EnsureResolved(ctx, "ok")
	assert.NoError(t, err)
	assert.Equal(t, entity.Coordinates{Lat: 1, Lng: 1}, coords)

	_, err = resolver.EnsureResolved(ctx, "bad")
	assert.Error(t, err)
}
