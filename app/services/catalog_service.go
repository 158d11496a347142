package services

import (
	"context"
	"errors"
	"sort"

	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/repositories"
)

var (
	ErrDuplicateCombination = errors.New("an active variation with this option combination already exists")
	ErrOptionTypeConflict   = errors.New("combination selects more than one option of the same variation type")
	ErrForeignVariant       = errors.New("default variant does not belong to this product")
)

// CatalogService holds the write-side invariants the schema alone cannot
// express: option-combination uniqueness per product, one option per
// variation type, and default-variant ownership.
type CatalogService struct {
	products   repositories.ProductRepositoryImpl
	variations repositories.VariationRepositoryImpl
}

func NewCatalogService(products repositories.ProductRepositoryImpl, variations repositories.VariationRepositoryImpl) *CatalogService {
	return &CatalogService{products: products, variations: variations}
}

// ValidateCombination rejects a variation write whose option set repeats a
// variation type or matches another active variation of the same product.
func (s *CatalogService) ValidateCombination(ctx context.Context, productID, variationID string, options []models.VariationOption) error {
	typesSeen := map[string]bool{}
	optionIDs := make([]string, 0, len(options))
	for _, option := range options {
		if typesSeen[option.VariationTypeID] {
			return ErrOptionTypeConflict
		}
		typesSeen[option.VariationTypeID] = true
		optionIDs = append(optionIDs, option.ID)
	}

	existing, err := s.variations.ActiveCombinations(ctx, productID, variationID)
	if err != nil {
		return err
	}
	key := combinationKey(optionIDs)
	for _, combination := range existing {
		if combinationKey(combination) == key {
			return ErrDuplicateCombination
		}
	}
	return nil
}

// ValidateDefaultVariant checks that the designated default belongs to the
// product; this is a model convention, not a schema constraint.
func (s *CatalogService) ValidateDefaultVariant(ctx context.Context, productID, variantID string) error {
	variation, err := s.variations.GetByID(ctx, variantID)
	if err != nil {
		return err
	}
	if variation == nil || variation.ProductID != productID {
		return ErrForeignVariant
	}
	return nil
}

func combinationKey(optionIDs []string) string {
	sorted := make([]string, len(optionIDs))
	copy(sorted, optionIDs)
	sort.Strings(sorted)
	key := ""
	for _, id := range sorted {
		key += id + "|"
	}
	return key
}
