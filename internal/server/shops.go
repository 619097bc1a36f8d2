package server

import (
	"context"
	"log/slog"
	"strings"

	invoicerpb "github.com/lockshop/invoicer/gen/proto/invoicer/v1"
	"github.com/lockshop/invoicer/internal/common"
	"github.com/lockshop/invoicer/internal/repository"
	"github.com/lockshop/invoicer/internal/utils"
)

type ShopService struct {
	invoicerpb.UnimplementedShopServiceServer
	shops  repository.ShopRepository
	logger *slog.Logger
}

func NewShopService(shops repository.ShopRepository, logger *slog.Logger) *ShopService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShopService{shops: shops, logger: logger}
}

func (s *ShopService) CreateShop(ctx context.Context, req *invoicerpb.CreateShopRequest) (*invoicerpb.CreateShopResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	shop, err := s.shops.Create(ctx, name)
	if err != nil {
		s.logger.Warn("create shop failed", "name", name, "error", err)
		return nil, common.InternalError("create shop failed")
	}
	return &invoicerpb.CreateShopResponse{Shop: utils.ToPBShop(shop)}, nil
}

func (s *ShopService) ListShops(ctx context.Context, _ *invoicerpb.ListShopsRequest) (*invoicerpb.ListShopsResponse, error) {
	shops, err := s.shops.List(ctx)
	if err != nil {
		s.logger.Warn("list shops failed", "error", err)
		return nil, common.InternalError("list shops failed")
	}
	out := make([]*invoicerpb.Shop, len(shops))
	for i, sh := range shops {
		out[i] = utils.ToPBShop(sh)
	}
	return &invoicerpb.ListShopsResponse{Shops: out}, nil
}
