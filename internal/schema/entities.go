package schema

import "time"

// Default factories shared across entities.
func emptyList(time.Time) interface{} { return []interface{}{} }
func today(now time.Time) interface{} { return now.UTC().Format("2006-01-02") }
func instant(now time.Time) interface{} { return now.UTC() }

// Embedded line-item entities. They never get their own collection; they only
// appear inside a parent document's items/lines array.

var quotationItem = Entity{
	Name:     "QuotationItem",
	Embedded: true,
	Fields: []Field{
		{Name: "product_id", Type: KindString, Required: true},
		{Name: "name", Type: KindString, Required: true},
		{Name: "quantity", Type: KindNumber, Required: true, Rule: "gt=0"},
		{Name: "price", Type: KindNumber, Required: true, Rule: "gte=0"},
		{Name: "discount", Type: KindNumber, Default: 0.0},
	},
}

var invoiceItem = Entity{
	Name:     "InvoiceItem",
	Embedded: true,
	Fields: []Field{
		{Name: "product_id", Type: KindString, Required: true},
		{Name: "name", Type: KindString, Required: true},
		{Name: "quantity", Type: KindNumber, Required: true, Rule: "gt=0"},
		{Name: "price", Type: KindNumber, Required: true, Rule: "gte=0"},
		// 11% VAT (PPN) unless the line says otherwise
		{Name: "tax_rate", Type: KindNumber, Default: 0.11, Rule: "gte=0"},
	},
}

var purchaseItem = Entity{
	Name:     "PurchaseItem",
	Embedded: true,
	Fields: []Field{
		{Name: "product_id", Type: KindString, Required: true},
		{Name: "name", Type: KindString, Required: true},
		{Name: "quantity", Type: KindNumber, Required: true},
		{Name: "price", Type: KindNumber, Required: true},
	},
}

var journalLine = Entity{
	Name:     "JournalLine",
	Embedded: true,
	Fields: []Field{
		{Name: "account_code", Type: KindString, Required: true},
		{Name: "debit", Type: KindNumber, Default: 0.0, Rule: "gte=0"},
		{Name: "credit", Type: KindNumber, Default: 0.0, Rule: "gte=0"},
		{Name: "memo", Type: KindString},
	},
}

// allEntities lists every record type in the system: identity, sales/CRM,
// inventory, procurement, finance, HRM, projects and analytics placeholders.
var allEntities = []Entity{
	// ---- Core identity ----
	{
		Name: "Organization",
		Fields: []Field{
			{Name: "name", Type: KindString, Required: true},
			{Name: "country", Type: KindString, Default: "ID"},
			{Name: "currency", Type: KindString, Default: "IDR"},
		},
	},
	{
		Name: "Role",
		Fields: []Field{
			{Name: "name", Type: KindString, Required: true, Enum: []string{
				"owner", "admin", "manager", "sales", "warehouse", "procurement", "finance", "hr", "employee",
			}},
			{Name: "permissions", Type: KindArray, DefaultFn: emptyList},
		},
	},
	{
		Name: "User",
		Fields: []Field{
			{Name: "full_name", Type: KindString, Required: true},
			{Name: "email", Type: KindString, Required: true, Rule: "email"},
			{Name: "phone", Type: KindString},
			// role is recorded but not enforced anywhere
			{Name: "role", Type: KindString, Default: "employee"},
			{Name: "is_active", Type: KindBoolean, Default: true},
		},
	},

	// ---- Sales & CRM ----
	{
		Name: "Customer",
		Fields: []Field{
			{Name: "name", Type: KindString, Required: true},
			{Name: "email", Type: KindString, Rule: "email"},
			{Name: "phone", Type: KindString},
			{Name: "company", Type: KindString},
			{Name: "address", Type: KindString},
			{Name: "tags", Type: KindArray, DefaultFn: emptyList},
			{Name: "source", Type: KindString},
			{Name: "assigned_to", Type: KindString},
		},
	},
	{
		Name: "Lead",
		Fields: []Field{
			{Name: "customer_name", Type: KindString, Required: true},
			{Name: "contact_email", Type: KindString, Rule: "email"},
			{Name: "stage", Type: KindString, Default: "new", Enum: []string{"new", "qualified", "proposal", "won", "lost"}},
			{Name: "value", Type: KindNumber, Default: 0.0},
			{Name: "expected_close", Type: KindDate},
		},
	},
	{
		Name: "Opportunity",
		Fields: []Field{
			{Name: "customer_id", Type: KindString},
			{Name: "title", Type: KindString, Required: true},
			{Name: "stage", Type: KindString, Default: "prospecting", Enum: []string{
				"prospecting", "qualification", "proposal", "negotiation", "won", "lost",
			}},
			{Name: "amount", Type: KindNumber, Required: true},
			{Name: "expected_close", Type: KindDate},
		},
	},
	{
		Name: "Quotation",
		Fields: []Field{
			{Name: "number", Type: KindString},
			{Name: "customer_id", Type: KindString, Required: true},
			{Name: "date_issued", Type: KindDate, DefaultFn: today},
			{Name: "status", Type: KindString, Default: "draft", Enum: []string{"draft", "sent", "accepted", "rejected"}},
			{Name: "items", Type: KindArray, Required: true, Elem: &quotationItem},
			{Name: "notes", Type: KindString},
		},
	},
	{
		Name: "Invoice",
		Fields: []Field{
			{Name: "number", Type: KindString},
			{Name: "customer_id", Type: KindString, Required: true},
			{Name: "date_issued", Type: KindDate, DefaultFn: today},
			{Name: "due_date", Type: KindDate},
			{Name: "status", Type: KindString, Default: "draft", Enum: []string{"draft", "sent", "paid", "overdue", "cancelled"}},
			{Name: "currency", Type: KindString, Default: "IDR"},
			{Name: "items", Type: KindArray, Required: true, Elem: &invoiceItem, MinItems: 1},
			{Name: "notes", Type: KindString},
		},
	},
	{
		Name: "Payment",
		Fields: []Field{
			{Name: "invoice_id", Type: KindString, Required: true},
			{Name: "amount", Type: KindNumber, Required: true},
			{Name: "date_paid", Type: KindDate, DefaultFn: today},
			{Name: "method", Type: KindString},
			{Name: "reference", Type: KindString},
		},
	},

	// ---- Inventory & Warehouse ----
	{
		Name: "Product",
		Fields: []Field{
			{Name: "sku", Type: KindString, Required: true},
			{Name: "name", Type: KindString, Required: true},
			{Name: "description", Type: KindString},
			{Name: "category", Type: KindString},
			{Name: "uom", Type: KindString, Default: "pcs"},
			{Name: "price", Type: KindNumber, Default: 0.0, Rule: "gte=0"},
			{Name: "barcode", Type: KindString},
			{Name: "track_stock", Type: KindBoolean, Default: true},
		},
	},
	{
		Name: "Warehouse",
		Fields: []Field{
			{Name: "name", Type: KindString, Required: true},
			{Name: "code", Type: KindString},
			{Name: "address", Type: KindString},
		},
	},
	{
		Name: "StockMovement",
		Fields: []Field{
			{Name: "product_id", Type: KindString, Required: true},
			{Name: "warehouse_id", Type: KindString, Required: true},
			// sign is not checked against type; an "out" movement may carry
			// a positive quantity
			{Name: "quantity", Type: KindNumber, Required: true},
			{Name: "type", Type: KindString, Default: "in", Enum: []string{"in", "out", "transfer"}},
			{Name: "ref_type", Type: KindString},
			{Name: "ref_id", Type: KindString},
			{Name: "timestamp", Type: KindDateTime, DefaultFn: instant},
		},
	},
	{
		Name: "Supplier",
		Fields: []Field{
			{Name: "name", Type: KindString, Required: true},
			{Name: "email", Type: KindString, Rule: "email"},
			{Name: "phone", Type: KindString},
			{Name: "address", Type: KindString},
			{Name: "rating", Type: KindNumber, Rule: "gte=0,lte=5"},
		},
	},

	// ---- Procurement ----
	{
		Name: "PurchaseOrder",
		Fields: []Field{
			{Name: "number", Type: KindString},
			{Name: "supplier_id", Type: KindString, Required: true},
			{Name: "status", Type: KindString, Default: "draft", Enum: []string{"draft", "approved", "ordered", "received", "cancelled"}},
			{Name: "items", Type: KindArray, Required: true, Elem: &purchaseItem},
			{Name: "notes", Type: KindString},
		},
	},

	// ---- Finance & Accounting (simplified) ----
	{
		Name: "GLAccount",
		Fields: []Field{
			{Name: "code", Type: KindString, Required: true},
			{Name: "name", Type: KindString, Required: true},
			{Name: "type", Type: KindString, Required: true, Enum: []string{"asset", "liability", "equity", "income", "expense"}},
		},
	},
	{
		Name: "JournalEntry",
		Fields: []Field{
			{Name: "number", Type: KindString},
			{Name: "date", Type: KindDate, DefaultFn: today},
			// debit/credit balance is not enforced
			{Name: "lines", Type: KindArray, Required: true, Elem: &journalLine},
			{Name: "memo", Type: KindString},
		},
	},

	// ---- HRM ----
	{
		Name: "Employee",
		Fields: []Field{
			{Name: "employee_id", Type: KindString, Required: true},
			{Name: "name", Type: KindString, Required: true},
			{Name: "email", Type: KindString, Rule: "email"},
			{Name: "position", Type: KindString},
			{Name: "salary", Type: KindNumber, Default: 0.0},
		},
	},
	{
		Name: "Attendance",
		Fields: []Field{
			{Name: "employee_id", Type: KindString, Required: true},
			{Name: "date", Type: KindDate, Required: true},
			{Name: "status", Type: KindString, Default: "present", Enum: []string{"present", "absent", "leave"}},
		},
	},
	{
		Name: "Payroll",
		Fields: []Field{
			{Name: "employee_id", Type: KindString, Required: true},
			{Name: "period", Type: KindString, Required: true}, // e.g. 2025-01
			{Name: "gross", Type: KindNumber, Required: true},
			{Name: "deductions", Type: KindNumber, Default: 0.0},
			// net is caller-supplied, not derived from gross-deductions
			{Name: "net", Type: KindNumber, Required: true},
		},
	},

	// ---- Project Management ----
	{
		Name: "Project",
		Fields: []Field{
			{Name: "name", Type: KindString, Required: true},
			{Name: "description", Type: KindString},
			{Name: "owner_id", Type: KindString},
			{Name: "status", Type: KindString, Default: "active", Enum: []string{"active", "on_hold", "completed", "cancelled"}},
		},
	},
	{
		Name: "Task",
		Fields: []Field{
			{Name: "project_id", Type: KindString, Required: true},
			{Name: "title", Type: KindString, Required: true},
			{Name: "description", Type: KindString},
			{Name: "assignee_id", Type: KindString},
			{Name: "status", Type: KindString, Default: "todo", Enum: []string{"todo", "in_progress", "done"}},
			{Name: "estimated_hours", Type: KindNumber, Default: 0.0},
			{Name: "logged_hours", Type: KindNumber, Default: 0.0},
		},
	},

	// ---- Analytics placeholder ----
	{
		Name: "ForecastConfig",
		Fields: []Field{
			{Name: "target", Type: KindString, Required: true, Enum: []string{"sales", "inventory"}},
			{Name: "horizon_days", Type: KindInteger, Default: 30},
			{Name: "group_by", Type: KindString}, // e.g. product_id, customer_id
		},
	},

	// Embedded item schemas, registered so /schema exposes them too.
	quotationItem,
	invoiceItem,
	purchaseItem,
	journalLine,
}
