// Package product
package product

import (
	"context"

	"storefront/internal/domain"
)

type Service struct {
	repo domain.ProductRepository
}

func NewService(repo domain.ProductRepository) domain.ProductService {
	return &Service{repo: repo}
}

// Create persists a product owned by the authenticated user. The owner is
// always the durable user id resolved from the credential, never anything
// taken from the request body.
func (s *Service) Create(ctx context.Context, req domain.ProductCreateRequest, userID string) (*domain.Product, error) {
	data := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		UserID:      userID,
	}

	if err := s.repo.Create(ctx, data); err != nil {
		return nil, err
	}

	return data, nil
}
