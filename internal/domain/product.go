package domain

import (
	"context"
	"time"
)

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
}

type ProductService interface {
	Create(ctx context.Context, req ProductCreateRequest, userID string) (*Product, error)
}
