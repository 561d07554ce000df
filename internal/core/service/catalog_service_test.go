package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mocklab/corpmock/internal/core/domain"
)

type stubCatalogRepo struct {
	users    []domain.User
	products []domain.Product
	orders   []domain.Order
}

func (r *stubCatalogRepo) Users() []domain.User       { return r.users }
func (r *stubCatalogRepo) Products() []domain.Product { return r.products }
func (r *stubCatalogRepo) Orders() []domain.Order     { return r.orders }

func testCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{
		users: []domain.User{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "user"},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "admin"},
		},
		products: []domain.Product{
			{ID: 1, Name: "Laptop", Price: 999.99, Category: "electronics"},
			{ID: 2, Name: "Book", Price: 19.99, Category: "education"},
			{ID: 3, Name: "Headphones", Price: 149.99, Category: "electronics"},
		},
		orders: []domain.Order{
			{ID: 1, UserID: 1, Total: 150.99, Status: "completed"},
			{ID: 2, UserID: 2, Total: 299.99, Status: "processing"},
			{ID: 3, UserID: 1, Total: 45.50, Status: "shipped"},
		},
	}
}

func TestCatalogService_RandomUser(t *testing.T) {
	svc := NewCatalogService(testCatalogRepo(), &stubRand{values: []int{1}})

	user, err := svc.RandomUser(context.Background())
	if err != nil {
		t.Fatalf("RandomUser returned error: %v", err)
	}
	if user.ID != 2 {
		t.Fatalf("expected user 2 for stubbed pick, got %d", user.ID)
	}
}

func TestCatalogService_RandomUser_Empty(t *testing.T) {
	svc := NewCatalogService(&stubCatalogRepo{}, &stubRand{values: []int{0}})

	if _, err := svc.RandomUser(context.Background()); !errors.Is(err, domain.ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}
}

func TestCatalogService_UserByID(t *testing.T) {
	svc := NewCatalogService(testCatalogRepo(), &stubRand{values: []int{0}})

	user, err := svc.UserByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("UserByID returned error: %v", err)
	}
	if user.Name != "Jane Smith" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.UserByID(context.Background(), 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCatalogService_ProductsByCategory(t *testing.T) {
	svc := NewCatalogService(testCatalogRepo(), &stubRand{values: []int{0}})

	// Match is case-insensitive.
	products := svc.ProductsByCategory(context.Background(), "Electronics")
	if len(products) != 2 {
		t.Fatalf("expected 2 electronics products, got %d", len(products))
	}
	for _, p := range products {
		if p.Category != "electronics" {
			t.Errorf("unexpected category %q", p.Category)
		}
	}

	if got := svc.ProductsByCategory(context.Background(), "toys"); len(got) != 0 {
		t.Fatalf("expected empty result for unknown category, got %d", len(got))
	}
}

func TestCatalogService_OrdersByUser(t *testing.T) {
	svc := NewCatalogService(testCatalogRepo(), &stubRand{values: []int{0}})

	orders := svc.OrdersByUser(context.Background(), 1)
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders for user 1, got %d", len(orders))
	}

	if got := svc.OrdersByUser(context.Background(), 42); len(got) != 0 {
		t.Fatalf("expected no orders for unknown user, got %d", len(got))
	}
}
