package ports

import (
	"context"

	"github.com/mocklab/corpmock/internal/core/domain"
)

// CatalogService defines the open (keyless) read operations over the
// users, products and orders collections.
type CatalogService interface {
	RandomUser(ctx context.Context) (domain.User, error)
	AllUsers(ctx context.Context) []domain.User
	UserByID(ctx context.Context, id int) (domain.User, error)

	RandomProduct(ctx context.Context) (domain.Product, error)
	AllProducts(ctx context.Context) []domain.Product
	ProductsByCategory(ctx context.Context, category string) []domain.Product

	RandomOrder(ctx context.Context) (domain.Order, error)
	AllOrders(ctx context.Context) []domain.Order
	OrdersByUser(ctx context.Context, userID int) []domain.Order
}
