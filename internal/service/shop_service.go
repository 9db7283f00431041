package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/events"
	"github.com/spec-kit/marketplace-service/internal/persistence"
	"github.com/spec-kit/marketplace-service/internal/repository"
	apperrors "github.com/spec-kit/marketplace-service/pkg/util"
)

const shopCatalogCacheKey = "shops:catalog"

// ShopService manages storefronts and their embedded product catalogs.
type ShopService struct {
	shops      repository.ShopRepository
	cache      *persistence.Redis
	cacheTTL   time.Duration
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewShopService builds the service.
func NewShopService(shops repository.ShopRepository, cache *persistence.Redis, cacheTTL time.Duration, dispatcher events.Dispatcher, logger *zap.Logger) *ShopService {
	return &ShopService{
		shops:      shops,
		cache:      cache,
		cacheTTL:   cacheTTL,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CreateShop persists a shop with its products.
func (s *ShopService) CreateShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	if shop.Name == "" {
		return nil, apperrors.NewValidationError("shop name is required", nil)
	}
	if shop.Products == nil {
		shop.Products = []domain.Product{}
	}

	if err := s.shops.Create(ctx, shop); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.invalidateCatalog(ctx)

	s.publishEvent(ctx, events.EventShopCreated, shop.ID, events.ShopCreatedPayload{
		Name:         shop.Name,
		ProductCount: len(shop.Products),
	})
	return shop, nil
}

// ListShops returns the full catalog, served from cache when fresh.
func (s *ShopService) ListShops(ctx context.Context) ([]domain.Shop, error) {
	if cached, ok := s.catalogFromCache(ctx); ok {
		return cached, nil
	}

	shops, err := s.shops.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.storeCatalog(ctx, shops)
	return shops, nil
}

// GetShop fetches one shop with its products.
func (s *ShopService) GetShop(ctx context.Context, id string) (*domain.Shop, error) {
	shop, err := s.shops.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("shop", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return shop, nil
}

// ShopProducts lists a shop's products annotated with shop identity.
func (s *ShopService) ShopProducts(ctx context.Context, shopID string) ([]domain.Product, error) {
	shop, err := s.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, len(shop.Products))
	for i, product := range shop.Products {
		product.ShopID = shop.ID
		product.ShopName = shop.Name
		products[i] = product
	}
	return products, nil
}

// AddProduct appends a product to a shop's catalog.
func (s *ShopService) AddProduct(ctx context.Context, shopID string, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, apperrors.NewValidationError("product name is required", nil)
	}
	if _, err := s.GetShop(ctx, shopID); err != nil {
		return nil, err
	}

	if err := s.shops.AddProduct(ctx, shopID, product); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.invalidateCatalog(ctx)
	return product, nil
}

// RemoveProduct strips a product from a shop's catalog.
func (s *ShopService) RemoveProduct(ctx context.Context, shopID, productID string) error {
	if err := s.shops.RemoveProduct(ctx, shopID, productID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("product", map[string]any{"shopId": shopID, "productId": productID})
		}
		return apperrors.NewInternalError(err)
	}
	s.invalidateCatalog(ctx)

	s.publishEvent(ctx, events.EventProductRemoved, shopID, events.ProductRemovedPayload{
		ShopID:    shopID,
		ProductID: productID,
	})
	return nil
}

func (s *ShopService) catalogFromCache(ctx context.Context) ([]domain.Shop, bool) {
	if s.cache == nil || s.cache.Client == nil || s.cacheTTL <= 0 {
		return nil, false
	}
	raw, err := s.cache.Client.Get(ctx, shopCatalogCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var shops []domain.Shop
	if err := json.Unmarshal(raw, &shops); err != nil {
		return nil, false
	}
	return shops, true
}

func (s *ShopService) storeCatalog(ctx context.Context, shops []domain.Shop) {
	if s.cache == nil || s.cache.Client == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(shops)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, shopCatalogCacheKey, raw, s.cacheTTL).Err(); err != nil && s.logger != nil {
		s.logger.Warn("shop catalog cache write failed", zap.Error(err))
	}
}

func (s *ShopService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	if err := s.cache.Client.Del(ctx, shopCatalogCacheKey).Err(); err != nil && s.logger != nil {
		s.logger.Warn("shop catalog cache invalidation failed", zap.Error(err))
	}
}

func (s *ShopService) publishEvent(ctx context.Context, eventType events.EventType, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
