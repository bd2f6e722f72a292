package console

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/slooze/commodities-admin/internal/core/domain"
)

const dateLayout = "2006-01-02 15:04"

func (c *Console) table(header string, rows func(w *tabwriter.Writer)) {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	_ = w.Flush()
}

func (c *Console) renderProducts(products []domain.Product) {
	if len(products) == 0 {
		c.printf("No products match.\n")
		return
	}
	c.table("ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tUPDATED", func(w *tabwriter.Writer) {
		for _, p := range products {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%s\n",
				p.ID, p.Name, p.Category, p.Price, p.Stock, p.LastUpdated.Local().Format(dateLayout))
		}
	})
}

func (c *Console) renderProduct(p domain.Product) {
	c.table("FIELD\tVALUE", func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "id\t%s\n", p.ID)
		fmt.Fprintf(w, "name\t%s\n", p.Name)
		fmt.Fprintf(w, "category\t%s\n", p.Category)
		fmt.Fprintf(w, "price\t%.2f\n", p.Price)
		fmt.Fprintf(w, "stock\t%d\n", p.Stock)
		fmt.Fprintf(w, "value\t%.2f\n", p.Value())
		fmt.Fprintf(w, "description\t%s\n", p.Description)
		fmt.Fprintf(w, "last updated\t%s\n", p.LastUpdated.Local().Format(time.RFC1123))
	})
}

func (c *Console) renderOrders(views []domain.OrderView) {
	if len(views) == 0 {
		c.printf("No orders match.\n")
		return
	}
	c.table("ID\tPRODUCT\tQTY\tSTATUS\tCREATED BY\tCREATED\tNOTES", func(w *tabwriter.Writer) {
		for _, v := range views {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
				v.ID, v.ProductName, v.Quantity, v.Status, v.CreatedBy, v.CreatedAt.Local().Format(dateLayout), v.Notes)
		}
	})
}

func (c *Console) renderUsers(users []domain.Identity) {
	if len(users) == 0 {
		c.printf("No users match.\n")
		return
	}
	c.table("ID\tNAME\tEMAIL\tROLE", func(w *tabwriter.Writer) {
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
		}
	})
}

func (c *Console) renderSummary(s domain.Summary) {
	c.printf("Products: %d  Units in stock: %d  Stock value: %.2f  Low stock: %d\n",
		s.TotalProducts, s.TotalStock, s.TotalValue, s.LowStockCount)
	if len(s.Categories) == 0 {
		return
	}
	c.table("CATEGORY\tVALUE", func(w *tabwriter.Writer) {
		for _, cv := range s.Categories {
			fmt.Fprintf(w, "%s\t%.2f\n", cv.Category, cv.Value)
		}
	})
}
