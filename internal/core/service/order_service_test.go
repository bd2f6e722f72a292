package service

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

type stubOrderRepo struct {
	orders []domain.Order
	err    error
}

func (r stubOrderRepo) List(context.Context) ([]domain.Order, error) {
	return slices.Clone(r.orders), r.err
}

func seedOrders() []domain.Order {
	day := func(d int) time.Time { return time.Date(2025, 4, d, 10, 0, 0, 0, time.UTC) }
	return []domain.Order{
		{ID: "a", ProductID: "1", Quantity: 50, Status: domain.OrderPending, CreatedBy: "Sarah Keeper", CreatedAt: day(10), UpdatedAt: day(10), Notes: "Urgent order"},
		{ID: "b", ProductID: "2", Quantity: 100, Status: domain.OrderApproved, CreatedBy: "mike Handler", CreatedAt: day(9), UpdatedAt: day(11)},
		{ID: "c", ProductID: "3", Quantity: 25, Status: domain.OrderCompleted, CreatedBy: "Emma Thompson", CreatedAt: day(8), UpdatedAt: day(8)},
		{ID: "d", ProductID: "gone", Quantity: 75, Status: domain.OrderRejected, CreatedBy: "Sarah Keeper", CreatedAt: day(7), UpdatedAt: day(7), Notes: "Budget constraints"},
	}
}

func orderIDs(views []domain.OrderView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func TestOrderService_List(t *testing.T) {
	catalog := NewCatalogStore(seedProducts(), zerolog.Nop())
	svc := NewOrderService(stubOrderRepo{orders: seedOrders()}, catalog)

	cases := []struct {
		name string
		q    ports.OrderQuery
		want []string
	}{
		{"newest first by default", ports.OrderQuery{}, []string{"a", "b", "c", "d"}},
		{"ascending", ports.OrderQuery{Asc: true}, []string{"d", "c", "b", "a"}},
		{"status filter", ports.OrderQuery{Status: domain.OrderApproved}, []string{"b"}},
		{"search product name", ports.OrderQuery{Search: "gold"}, []string{"c"}},
		{"search author", ports.OrderQuery{Search: "sarah"}, []string{"a", "d"}},
		{"search notes", ports.OrderQuery{Search: "BUDGET"}, []string{"d"}},
		{"updated at descending", ports.OrderQuery{SortBy: ports.SortOrdersByUpdatedAt}, []string{"b", "a", "c", "d"}},
		{"created by ascending ignores case", ports.OrderQuery{SortBy: ports.SortOrdersByCreatedBy, Asc: true}, []string{"c", "b", "a", "d"}},
		{"status ascending", ports.OrderQuery{SortBy: ports.SortOrdersByStatus, Asc: true}, []string{"b", "c", "a", "d"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			views, err := svc.List(context.Background(), tc.q)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if got := orderIDs(views); !slices.Equal(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOrderService_ResolvesProductNames(t *testing.T) {
	catalog := NewCatalogStore(seedProducts(), zerolog.Nop())
	svc := NewOrderService(stubOrderRepo{orders: seedOrders()}, catalog)

	views, err := svc.List(context.Background(), ports.OrderQuery{Asc: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if views[0].ProductName != "Unknown Product" {
		t.Fatalf("orphaned order must show a placeholder, got %q", views[0].ProductName)
	}
	if views[3].ProductName != "Organic Wheat" {
		t.Fatalf("expected Organic Wheat, got %q", views[3].ProductName)
	}

	catalog.Delete("1")
	views, _ = svc.List(context.Background(), ports.OrderQuery{Status: domain.OrderPending})
	if views[0].ProductName != "Unknown Product" {
		t.Fatalf("names resolve at query time, got %q", views[0].ProductName)
	}
}

func TestOrderService_RepositoryError(t *testing.T) {
	boom := errors.New("timeout")
	svc := NewOrderService(stubOrderRepo{err: boom}, NewCatalogStore(nil, zerolog.Nop()))

	if _, err := svc.List(context.Background(), ports.OrderQuery{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

type stubDirectory []domain.Identity

func (d stubDirectory) List(context.Context) ([]domain.Identity, error) {
	return slices.Clone(d), nil
}

func TestUserService_Search(t *testing.T) {
	dir := stubDirectory{
		{ID: "1", Email: "manager@slooze.com", Name: "John Manager", Role: domain.RoleManager},
		{ID: "2", Email: "storekeeper@slooze.com", Name: "Sarah Keeper", Role: domain.RoleStorekeeper},
		{ID: "3", Email: "mike@slooze.com", Name: "Mike Handler", Role: domain.RoleStorekeeper},
	}
	svc := NewUserService(dir)

	cases := map[string][]string{
		"":         {"1", "2", "3"},
		"   ":      {"1", "2", "3"},
		"KEEPER":   {"2"},
		"mike@":    {"3"},
		"slooze":   {"1", "2", "3"},
		"nobody":   {},
		"john man": {"1"},
	}
	for term, want := range cases {
		users, err := svc.Search(context.Background(), term)
		if err != nil {
			t.Fatalf("Search(%q): %v", term, err)
		}
		got := make([]string, len(users))
		for i, u := range users {
			got[i] = u.ID
		}
		if !slices.Equal(got, want) {
			t.Errorf("Search(%q) = %v, want %v", term, got, want)
		}
	}
}

func TestDashboardService_Summary(t *testing.T) {
	catalog := NewCatalogStore(seedProducts(), zerolog.Nop())
	sum := NewDashboardService(catalog, 0).Summary()

	if sum.TotalProducts != 5 || sum.TotalStock != 1900 || sum.LowStockCount != 1 {
		t.Fatalf("unexpected totals %+v", sum)
	}
	if math.Abs(sum.TotalValue-117127.5) > 1e-6 {
		t.Fatalf("total value = %f", sum.TotalValue)
	}

	wantOrder := []string{"Metals", "Energy", "Grains", "Agricultural"}
	wantValue := []float64{92537.5, 18190, 4275, 2125}
	if len(sum.Categories) != len(wantOrder) {
		t.Fatalf("categories = %+v", sum.Categories)
	}
	for i, cv := range sum.Categories {
		if cv.Category != wantOrder[i] || math.Abs(cv.Value-wantValue[i]) > 1e-6 {
			t.Fatalf("category %d = %+v, want %s %.2f", i, cv, wantOrder[i], wantValue[i])
		}
	}
}

func TestDashboardService_CustomThreshold(t *testing.T) {
	catalog := NewCatalogStore(seedProducts(), zerolog.Nop())

	if n := NewDashboardService(catalog, 201).Summary().LowStockCount; n != 3 {
		t.Fatalf("expected 3 products under 201, got %d", n)
	}
	if n := NewDashboardService(NewCatalogStore(nil, zerolog.Nop()), 10).Summary(); n.TotalProducts != 0 || n.Categories != nil {
		t.Fatalf("empty catalog summary = %+v", n)
	}
}
