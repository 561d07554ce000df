package service

import (
	"context"
	"strings"

	"github.com/mocklab/corpmock/internal/core/domain"
	"github.com/mocklab/corpmock/internal/core/ports"
)

// CatalogService serves the open users/products/orders collections.
type CatalogService struct {
	repo ports.CatalogRepository
	rand ports.Rand
}

func NewCatalogService(repo ports.CatalogRepository, rand ports.Rand) *CatalogService {
	return &CatalogService{repo: repo, rand: rand}
}

func (s *CatalogService) RandomUser(_ context.Context) (domain.User, error) {
	return PickRandom(s.rand, s.repo.Users())
}

func (s *CatalogService) AllUsers(_ context.Context) []domain.User {
	return s.repo.Users()
}

func (s *CatalogService) UserByID(_ context.Context, id int) (domain.User, error) {
	for _, u := range s.repo.Users() {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (s *CatalogService) RandomProduct(_ context.Context) (domain.Product, error) {
	return PickRandom(s.rand, s.repo.Products())
}

func (s *CatalogService) AllProducts(_ context.Context) []domain.Product {
	return s.repo.Products()
}

func (s *CatalogService) ProductsByCategory(_ context.Context, category string) []domain.Product {
	return Keep(s.repo.Products(), func(p domain.Product) bool {
		return strings.EqualFold(p.Category, category)
	})
}

func (s *CatalogService) RandomOrder(_ context.Context) (domain.Order, error) {
	return PickRandom(s.rand, s.repo.Orders())
}

func (s *CatalogService) AllOrders(_ context.Context) []domain.Order {
	return s.repo.Orders()
}

func (s *CatalogService) OrdersByUser(_ context.Context, userID int) []domain.Order {
	return Keep(s.repo.Orders(), func(o domain.Order) bool {
		return o.UserID == userID
	})
}
