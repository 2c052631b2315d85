package kv

import (
	"context"

	"posterstore/internal/domain/constants"
	"posterstore/internal/domain/entity"
	"posterstore/internal/domain/repository"
	"posterstore/internal/infra/kvstore"
)

// orderRepository implements the repository.OrderRepository interface over the keyspace.
type orderRepository struct {
	store kvstore.Store
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store kvstore.Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (repo *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	orders := []entity.Order{}
	if _, err := loadJSON(ctx, repo.store, constants.KeyOrders, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	orders, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (repo *orderRepository) Append(ctx context.Context, order *entity.Order) error {
	orders, err := repo.List(ctx)
	if err != nil {
		return err
	}

	orders = append(orders, *order)

	return saveJSON(ctx, repo.store, constants.KeyOrders, orders)
}
