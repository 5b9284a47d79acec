package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fete/config"
	"fete/infras/otel/mocks"
	vendorMocks "fete/internal/domains/vendors/mocks"
	"fete/internal/domains/vendors/model"
	"fete/internal/domains/vendors/service"
	"fete/shared/cache"
	cacheMocks "fete/shared/cache/mocks"
	"fete/shared/failure"
)

func newService(t *testing.T) (service.Vendor, *vendorMocks.MockVendor, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := vendorMocks.NewMockVendor(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	// Cache writes run on a background goroutine and are not the
	// behavior under test.
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(repo, &config.Config{}, redisCache, mocks.NewOtel()), repo, redisCache
}

func TestVendorService_Get(t *testing.T) {
	svc, repo, redisCache := newService(t)

	redisCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.CacheNil)

	repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Vendor{
			ID:           "vendor-1",
			BusinessName: "Nada Irama Entertainment",
			Email:        "booking@nadairama.example.com",
			Category:     "dj",
			City:         "Jakarta",
			Active:       true,
		}, nil)

	res, err := svc.Get(context.Background(), "vendor-1")

	assert.NoError(t, err)
	assert.Equal(t, "vendor-1", res.ID)
	assert.Equal(t, "Nada Irama Entertainment", res.BusinessName)
	assert.True(t, res.Active)
}

func TestVendorService_Get_NotFound(t *testing.T) {
	svc, repo, redisCache := newService(t)

	redisCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.CacheNil)

	repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Vendor{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestVendorService_Get_RepositoryError(t *testing.T) {
	svc, repo, redisCache := newService(t)

	redisCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.CacheNil)

	repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Vendor{}, errors.New("connection reset"))

	_, err := svc.Get(context.Background(), "vendor-1")

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
