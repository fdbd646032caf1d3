// Package derive computes server-owned fields: creation timestamps, initial
// lifecycle statuses, and money totals that callers are never allowed to
// supply themselves.
package derive

import (
	"time"

	"go-erp-api/internal/schema"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is applied to invoice lines that omit tax_rate (11% PPN).
const DefaultTaxRate = 0.11

// Apply fills in every derived field of a validated record. It is idempotent:
// fields already present are left untouched, and recomputed totals are
// deterministic for identical input, so running it twice changes nothing.
func Apply(ent *schema.Entity, record map[string]interface{}, now time.Time) map[string]interface{} {
	if _, ok := record["created_at"]; !ok {
		record["created_at"] = now.UTC()
	}

	switch ent.Name {
	case "Invoice":
		if _, ok := record["status"]; !ok {
			record["status"] = "draft"
		}
		if items, ok := record["items"].([]interface{}); ok {
			record["total"] = InvoiceTotal(items)
		}
	case "Quotation", "PurchaseOrder":
		if _, ok := record["status"]; !ok {
			record["status"] = "draft"
		}
	case "StockMovement":
		if _, ok := record["timestamp"]; !ok {
			record["timestamp"] = now.UTC()
		}
	}

	return record
}

// InvoiceTotal sums quantity x price x (1 + tax_rate) over the line items and
// rounds to 2 decimal places. Rounding is half away from zero (decimal.Round),
// which for the non-negative amounts produced here is round-half-up; the .005
// boundary behavior is pinned by tests. Each line carries its own tax_rate,
// there is no document-level rate.
func InvoiceTotal(items []interface{}) float64 {
	sum := decimal.Zero
	one := decimal.NewFromInt(1)

	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		quantity := decimal.NewFromFloat(numField(item, "quantity", 0))
		price := decimal.NewFromFloat(numField(item, "price", 0))
		rate := decimal.NewFromFloat(numField(item, "tax_rate", DefaultTaxRate))
		sum = sum.Add(quantity.Mul(price).Mul(one.Add(rate)))
	}

	total, _ := sum.Round(2).Float64()
	return total
}

func numField(item map[string]interface{}, key string, fallback float64) float64 {
	switch v := item[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return fallback
}
