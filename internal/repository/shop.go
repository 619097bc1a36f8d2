package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lockshop/invoicer/gen/ent"
	"github.com/lockshop/invoicer/gen/ent/shop"
	"github.com/lockshop/invoicer/internal/entity"
	"github.com/lockshop/invoicer/internal/utils"
)

type ShopRepository interface {
	Create(ctx context.Context, name string) (*entity.Shop, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*entity.Shop, error)
}

type shopRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewShopRepository(client *ent.Client, logger *slog.Logger) ShopRepository {
	return &shopRepository{client: client, logger: logger}
}

func (r *shopRepository) Create(ctx context.Context, name string) (*entity.Shop, error) {
	s, err := r.client.Shop.Create().SetName(name).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create shop", "name", name, "error", err)
		return nil, err
	}
	return utils.ToShop(s), nil
}

func (r *shopRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	s, err := r.client.Shop.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToShop(s), nil
}

func (r *shopRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.Shop.Query().Where(shop.ID(id)).Exist(ctx)
}

func (r *shopRepository) List(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := r.client.Shop.Query().Order(shop.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list shops", "error", err)
		return nil, err
	}
	result := make([]*entity.Shop, len(shops))
	for i, s := range shops {
		result[i] = utils.ToShop(s)
	}
	return result, nil
}
