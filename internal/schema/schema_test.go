package schema

import (
	"testing"
)

func TestRegistryContainsAllEntities(t *testing.T) {
	r := NewRegistry()

	names := []string{
		"Organization", "Role", "User",
		"Customer", "Lead", "Opportunity", "Quotation", "Invoice", "Payment",
		"Product", "Warehouse", "StockMovement", "Supplier",
		"PurchaseOrder", "GLAccount", "JournalEntry",
		"Employee", "Attendance", "Payroll",
		"Project", "Task", "ForecastConfig",
		"QuotationItem", "InvoiceItem", "PurchaseItem", "JournalLine",
	}
	for _, name := range names {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("entity %s not registered", name)
		}
	}
	if got := len(r.Names()); got != len(names) {
		t.Fatalf("expected %d entities, got %d", len(names), got)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"invoice", "Invoice", "INVOICE"} {
		ent, ok := r.Lookup(name)
		if !ok {
			t.Fatalf("lookup %q failed", name)
		}
		if ent.Collection != "invoice" {
			t.Fatalf("expected collection invoice, got %s", ent.Collection)
		}
	}
}

func TestEmbeddedEntitiesHaveNoCollection(t *testing.T) {
	r := NewRegistry()

	item, _ := r.Lookup("InvoiceItem")
	if !item.Embedded {
		t.Fatalf("InvoiceItem should be embedded")
	}
	if item.Collection != "" {
		t.Fatalf("embedded entity should not get a collection, got %q", item.Collection)
	}
}

func TestDescribeInvoice(t *testing.T) {
	r := NewRegistry()

	desc, ok := r.Describe("invoice")
	if !ok {
		t.Fatalf("describe invoice failed")
	}
	if desc["title"] != "Invoice" {
		t.Fatalf("expected title Invoice, got %v", desc["title"])
	}

	properties := desc["properties"].(map[string]interface{})
	if _, ok := properties["customer_id"]; !ok {
		t.Fatalf("customer_id missing from properties")
	}
	// total is derived, never part of the declared schema
	if _, ok := properties["total"]; ok {
		t.Fatalf("derived field total must not appear in the schema")
	}

	status := properties["status"].(map[string]interface{})
	enum := status["enum"].([]string)
	if len(enum) != 5 || enum[0] != "draft" {
		t.Fatalf("unexpected status enum: %v", enum)
	}

	items := properties["items"].(map[string]interface{})
	if items["min_items"] != 1 {
		t.Fatalf("invoice items should require at least 1 item, got %v", items["min_items"])
	}
	itemSchema := items["items"].(map[string]interface{})
	if itemSchema["title"] != "InvoiceItem" {
		t.Fatalf("expected embedded InvoiceItem schema, got %v", itemSchema["title"])
	}

	required := desc["required"].([]string)
	want := map[string]bool{"customer_id": true, "items": true}
	if len(required) != len(want) {
		t.Fatalf("unexpected required set: %v", required)
	}
	for _, name := range required {
		if !want[name] {
			t.Fatalf("unexpected required field %s", name)
		}
	}
}

func TestDescribeAllCoversEveryEntity(t *testing.T) {
	r := NewRegistry()

	all := r.DescribeAll()
	for _, name := range r.Names() {
		if _, ok := all[name]; !ok {
			t.Errorf("DescribeAll missing %s", name)
		}
	}
}
