package usecase

import (
	"context"

	"posterstore/internal/domain/entity"
)

// PosterInput carries the fields for creating or updating a poster.
type PosterInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Image       string  `json:"image"`
	Category    string  `json:"category" validate:"required,oneof=art landscape urban space"`
}

// AdminUsecase defines the interface for catalog administration.
type AdminUsecase interface {
	// CreatePoster appends a new poster with a generated ID.
	CreatePoster(ctx context.Context, input *PosterInput) (*entity.Poster, error)

	// UpdatePoster overwrites the identified poster's fields.
	UpdatePoster(ctx context.Context, id string, input *PosterInput) (*entity.Poster, error)

	// DeletePoster removes the identified poster from the catalog.
	DeletePoster(ctx context.Context, id string) error
}
