package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"fete/config"
	"fete/infras/otel"
	"fete/internal/domains/vendors/model"
	"fete/internal/domains/vendors/model/dto"
	"fete/internal/domains/vendors/repository"
	"fete/shared"
	"fete/shared/cache"
	"fete/shared/constant"
	"fete/shared/failure"
)

const (
	cacheGetVendor = "vendor:get"
)

type Vendor interface {
	Get(ctx context.Context, id string) (dto.VendorResponse, error)
}

type serviceImpl struct {
	repo  repository.Vendor
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Vendor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Vendor {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VendorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetVendor")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetVendor, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vendor")

		return res, nil
	}

	vendor, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vendor")

		return res, fmt.Errorf("failed to get vendor: %w", err)
	}

	if vendor.ID == constant.Empty {
		return res, failure.NotFound("vendor not found") // nolint:wrapcheck
	}

	res.FromModel(vendor)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vendor to cache")
		}
	}()

	return res, nil
}
