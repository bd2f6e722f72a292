package console

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/slooze/commodities-admin/internal/core/authz"
	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

type commandFunc func(c *Console, ctx context.Context, args []string) error

var commands = map[string]commandFunc{
	"login":     (*Console).cmdLogin,
	"logout":    (*Console).cmdLogout,
	"whoami":    (*Console).cmdWhoami,
	"products":  (*Console).cmdProducts,
	"product":   (*Console).cmdProduct,
	"add":       (*Console).cmdAdd,
	"edit":      (*Console).cmdEdit,
	"delete":    (*Console).cmdDelete,
	"orders":    (*Console).cmdOrders,
	"users":     (*Console).cmdUsers,
	"dashboard": (*Console).cmdDashboard,
	"theme":     (*Console).cmdTheme,
	"help":      (*Console).cmdHelp,
	"quit":      (*Console).cmdQuit,
	"exit":      (*Console).cmdQuit,
}

const helpText = `Commands:
  login <email> <password>
  logout
  whoami
  products [search=..] [category=..] [sort=name|category|price|stock|last_updated] [desc]
  product <id>
  add name=.. category=.. price=.. stock=.. [description=..]       (manager)
  edit <id> [name=..] [category=..] [price=..] [stock=..] [description=..]  (manager)
  delete <id>                                                        (manager)
  orders [status=..] [search=..] [sort=created_at|updated_at|status|created_by] [asc]  (manager)
  users [search]                                                     (manager)
  dashboard                                                          (manager)
  theme [toggle|light|dark]
  help
  quit
Quote values that contain spaces: name="Organic Wheat"
`

// requireRoute applies the navigation gate for the view a command shows.
func (c *Console) requireRoute(route authz.Route) error {
	switch authz.Decide(c.deps.Session.Current(), route) {
	case authz.RedirectLogin:
		return domain.ErrUnauthenticated
	case authz.RedirectHome:
		return domain.ErrForbidden
	}
	return nil
}

func (c *Console) requireAction(action authz.Action) error {
	s := c.deps.Session.Current()
	if !s.Authenticated() {
		return domain.ErrUnauthenticated
	}
	if !authz.CanPerform(s, action) {
		return domain.ErrForbidden
	}
	return nil
}

func (c *Console) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login <email> <password>")
	}
	c.printf("Signing in...\n")
	identity, err := c.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	c.printf("Signed in as %s (%s).\n", identity.Name, identity.Role)
	return nil
}

func (c *Console) cmdLogout(ctx context.Context, _ []string) error {
	if err := c.Logout(ctx); err != nil {
		return err
	}
	c.printf("Signed out.\n")
	return nil
}

func (c *Console) cmdWhoami(_ context.Context, _ []string) error {
	s := c.deps.Session.Current()
	if !s.Authenticated() {
		c.printf("Not signed in.\n")
		return nil
	}
	c.printf("%s <%s> %s\n", s.Identity.Name, s.Identity.Email, s.Identity.Role)
	return nil
}

func (c *Console) cmdProducts(_ context.Context, args []string) error {
	if err := c.requireRoute(authz.RouteProducts); err != nil {
		return err
	}
	kv, words := options(args)

	q := ports.ProductQuery{
		Search:   kv["search"],
		Category: kv["category"],
		SortBy:   ports.ProductSortField(kv["sort"]),
	}
	switch q.SortBy {
	case "", ports.SortByName, ports.SortByCategory, ports.SortByPrice, ports.SortByStock, ports.SortByLastUpdated:
	default:
		return fmt.Errorf("cannot sort products by %q", q.SortBy)
	}
	for _, w := range words {
		if strings.EqualFold(w, "desc") {
			q.Desc = true
		}
	}

	c.renderProducts(c.deps.Catalog.Query(q))
	return nil
}

func (c *Console) cmdProduct(_ context.Context, args []string) error {
	if err := c.requireRoute(authz.RouteProducts); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: product <id>")
	}
	p, ok := c.deps.Catalog.Get(args[0])
	if !ok {
		return domain.ErrProductNotFound
	}
	c.renderProduct(p)
	return nil
}

func (c *Console) cmdAdd(_ context.Context, args []string) error {
	if err := c.requireAction(authz.ActionCreateProduct); err != nil {
		return err
	}
	kv, _ := options(args)
	for _, k := range []string{"name", "category", "price", "stock"} {
		if _, ok := kv[k]; !ok {
			return fmt.Errorf("%s is required", k)
		}
	}

	draft, err := c.buildDraft(domain.ProductDraft{}, kv)
	if err != nil {
		return err
	}
	p := c.deps.Catalog.Create(draft)
	c.printf("Created product %s.\n", p.ID)
	return nil
}

func (c *Console) cmdEdit(_ context.Context, args []string) error {
	if err := c.requireAction(authz.ActionUpdateProduct); err != nil {
		return err
	}
	kv, words := options(args)
	if len(words) != 1 {
		return errors.New("usage: edit <id> field=value...")
	}

	current, ok := c.deps.Catalog.Get(words[0])
	if !ok {
		return domain.ErrProductNotFound
	}
	draft, err := c.buildDraft(current.Draft(), kv)
	if err != nil {
		return err
	}

	updated, err := c.deps.Catalog.Update(domain.Product{
		ID:          current.ID,
		Name:        draft.Name,
		Category:    draft.Category,
		Price:       draft.Price,
		Stock:       draft.Stock,
		Description: draft.Description,
	})
	if err != nil {
		return err
	}
	c.printf("Updated product %s.\n", updated.ID)
	return nil
}

func (c *Console) cmdDelete(_ context.Context, args []string) error {
	if err := c.requireAction(authz.ActionDeleteProduct); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: delete <id>")
	}
	c.deps.Catalog.Delete(args[0])
	c.printf("Deleted product %s.\n", args[0])
	return nil
}

func (c *Console) cmdOrders(ctx context.Context, args []string) error {
	if err := c.requireRoute(authz.RouteOrders); err != nil {
		return err
	}
	kv, words := options(args)

	q := ports.OrderQuery{
		Status: domain.OrderStatus(kv["status"]),
		Search: kv["search"],
		SortBy: ports.OrderSortField(kv["sort"]),
	}
	if q.Status != "" && !q.Status.Valid() {
		return fmt.Errorf("unknown order status %q", q.Status)
	}
	for _, w := range words {
		if strings.EqualFold(w, "asc") {
			q.Asc = true
		}
	}

	views, err := c.deps.Orders.List(ctx, q)
	if err != nil {
		return err
	}
	c.renderOrders(views)
	return nil
}

func (c *Console) cmdUsers(ctx context.Context, args []string) error {
	if err := c.requireRoute(authz.RouteUsers); err != nil {
		return err
	}
	users, err := c.deps.Users.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	c.renderUsers(users)
	return nil
}

func (c *Console) cmdDashboard(_ context.Context, _ []string) error {
	if err := c.requireRoute(authz.RouteDashboard); err != nil {
		return err
	}
	c.renderSummary(c.deps.Dashboard.Summary())
	return nil
}

func (c *Console) cmdTheme(ctx context.Context, args []string) error {
	if err := c.requireRoute(authz.RouteSettings); err != nil {
		return err
	}

	var (
		theme domain.Theme
		err   error
	)
	switch {
	case len(args) == 0:
		theme, err = c.deps.Preferences.Theme(ctx)
	case strings.EqualFold(args[0], "toggle"):
		theme, err = c.deps.Preferences.ToggleTheme(ctx)
	default:
		theme = domain.Theme(strings.ToLower(args[0]))
		err = c.deps.Preferences.SetTheme(ctx, theme)
	}
	if err != nil {
		return err
	}
	c.printf("Theme: %s\n", theme)
	return nil
}

func (c *Console) cmdHelp(_ context.Context, _ []string) error {
	c.printf("%s", helpText)
	return nil
}

func (c *Console) cmdQuit(_ context.Context, _ []string) error {
	return errQuit
}

// productInput mirrors the HTTP create/update rules.
type productInput struct {
	Name        string  `validate:"required,max=200"`
	Category    string  `validate:"required,max=100"`
	Price       float64 `validate:"gt=0"`
	Stock       int     `validate:"gte=0"`
	Description string  `validate:"max=2000"`
}

// buildDraft overlays kv onto base and validates the result.
func (c *Console) buildDraft(base domain.ProductDraft, kv map[string]string) (domain.ProductDraft, error) {
	in := productInput(base)

	if v, ok := kv["name"]; ok {
		in.Name = strings.TrimSpace(v)
	}
	if v, ok := kv["category"]; ok {
		in.Category = strings.TrimSpace(v)
	}
	if v, ok := kv["description"]; ok {
		in.Description = strings.TrimSpace(v)
	}
	if v, ok := kv["price"]; ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsInf(price, 0) || math.IsNaN(price) {
			return domain.ProductDraft{}, fmt.Errorf("price must be a number, got %q", v)
		}
		in.Price = price
	}
	if v, ok := kv["stock"]; ok {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return domain.ProductDraft{}, fmt.Errorf("stock must be a whole number, got %q", v)
		}
		in.Stock = stock
	}

	if err := c.validate.Struct(in); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return domain.ProductDraft{}, fmt.Errorf("%s: %s", strings.ToLower(ve[0].Field()), ruleMessage(ve[0]))
		}
		return domain.ProductDraft{}, err
	}
	return domain.ProductDraft(in), nil
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	}
	return "is invalid"
}
