package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Juan171109/automation-task/internal/models"
	"github.com/Juan171109/automation-task/internal/pricing"
	"github.com/Juan171109/automation-task/internal/storage"
)

// ProductCatalog is the read side of the catalog the basket needs
type ProductCatalog interface {
	Lookup(code string) (models.Product, bool)
}

// BasketService handles basket business logic for one client
type BasketService interface {
	Add(ctx context.Context, productCode string) (models.NotificationEvent, error)
	Clear(ctx context.Context) (models.NotificationEvent, error)
	Contents(ctx context.Context) ([]models.BasketLine, error)
	IsEmpty(ctx context.Context) (bool, error)
	Summary(ctx context.Context) (pricing.Summary, error)
	Records(ctx context.Context) ([]storage.BasketRecord, error)
}

// BasketServiceImpl implements BasketService
type BasketServiceImpl struct {
	store   storage.Store
	session SessionService
	catalog ProductCatalog
	policy  models.ReAddPolicy
}

// NewBasketService creates a new basket service
func NewBasketService(store storage.Store, session SessionService, catalog ProductCatalog, policy models.ReAddPolicy) BasketService {
	return &BasketServiceImpl{
		store:   store,
		session: session,
		catalog: catalog,
		policy:  policy,
	}
}

// Add puts one unit of productCode in the basket, subject to the re-add policy
func (s *BasketServiceImpl) Add(ctx context.Context, productCode string) (models.NotificationEvent, error) {
	if !s.session.IsAuthenticated(ctx) {
		return models.NotificationEvent{}, models.ErrUnauthenticated
	}

	product, ok := s.catalog.Lookup(productCode)
	if !ok {
		return models.NotificationEvent{}, fmt.Errorf("%w: %s", models.ErrUnknownProduct, productCode)
	}

	basket, err := s.load(ctx)
	if err != nil {
		return models.NotificationEvent{}, err
	}

	if !basket.Add(product.Code, s.policy) {
		return models.UnchangedNotification(product), nil
	}

	if err := s.save(ctx, basket); err != nil {
		return models.NotificationEvent{}, err
	}

	zap.S().Debugw("product added to basket", "productCode", product.Code, "quantity", basket.Quantity(product.Code))
	return models.AddedNotification(product), nil
}

// Clear empties the basket, keeping the stored key as an empty array
func (s *BasketServiceImpl) Clear(ctx context.Context) (models.NotificationEvent, error) {
	if !s.session.IsAuthenticated(ctx) {
		return models.NotificationEvent{}, models.ErrUnauthenticated
	}

	if err := s.save(ctx, models.NewBasket(nil)); err != nil {
		return models.NotificationEvent{}, err
	}

	return models.ClearedNotification(), nil
}

// Contents returns the basket lines in insertion order
func (s *BasketServiceImpl) Contents(ctx context.Context) ([]models.BasketLine, error) {
	basket, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return basket.Lines(), nil
}

// IsEmpty returns true if the basket holds no lines
func (s *BasketServiceImpl) IsEmpty(ctx context.Context) (bool, error) {
	basket, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	return basket.IsEmpty(), nil
}

// Summary prices the current basket
func (s *BasketServiceImpl) Summary(ctx context.Context) (pricing.Summary, error) {
	lines, err := s.Contents(ctx)
	if err != nil {
		return pricing.Summary{}, err
	}
	return pricing.Compute(lines, s.catalog), nil
}

// Records returns the basket in its persisted shape
func (s *BasketServiceImpl) Records(ctx context.Context) ([]storage.BasketRecord, error) {
	basket, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.toRecords(basket), nil
}

// load rehydrates the basket from storage. A missing key is an empty
// basket; a corrupt value is logged and also treated as empty. Lines for
// products that are no longer in the catalog are dropped.
func (s *BasketServiceImpl) load(ctx context.Context) (*models.Basket, error) {
	data, err := s.store.Get(ctx, storage.KeyBasket)
	if errors.Is(err, storage.ErrNotFound) {
		return models.NewBasket(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read basket: %w", err)
	}

	records, err := storage.UnmarshalBasket(data)
	if err != nil {
		zap.S().Warnw("discarding corrupt basket", "error", err)
		return models.NewBasket(nil), nil
	}

	lines := make([]models.BasketLine, 0, len(records))
	for _, r := range records {
		if _, ok := s.catalog.Lookup(r.ProductCode); !ok {
			zap.S().Warnw("dropping basket line for unknown product", "productCode", r.ProductCode)
			continue
		}
		lines = append(lines, models.BasketLine{ProductCode: r.ProductCode, Quantity: r.Quantity})
	}

	return models.NewBasket(lines), nil
}

func (s *BasketServiceImpl) save(ctx context.Context, basket *models.Basket) error {
	data, err := storage.MarshalBasket(s.toRecords(basket))
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, storage.KeyBasket, data); err != nil {
		return fmt.Errorf("failed to write basket: %w", err)
	}
	return nil
}

func (s *BasketServiceImpl) toRecords(basket *models.Basket) []storage.BasketRecord {
	lines := basket.Lines()
	records := make([]storage.BasketRecord, 0, len(lines))
	for _, l := range lines {
		p, _ := s.catalog.Lookup(l.ProductCode)
		records = append(records, storage.BasketRecord{
			ProductCode: l.ProductCode,
			Description: p.Description,
			Quantity:    l.Quantity,
		})
	}
	return records
}
