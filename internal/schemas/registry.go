package schemas

import (
	"fmt"
	"sort"

	"github.com/archibald-tools/archex/internal/engine"
	"github.com/archibald-tools/archex/internal/tracking"
)

// Options adjust how the built-in layouts are constructed.
type Options struct {
	// TrackingTemplates overrides the courier URL templates used by the
	// delivery-notes layout. Nil means the built-in defaults.
	TrackingTemplates tracking.Templates
}

// builders maps document-type names to layout constructors. Layouts are
// built fresh on every lookup so callers can mutate cycle sizes without
// affecting other runs.
func builders(opts Options) map[string]func() *engine.Schema {
	tmpl := opts.TrackingTemplates
	if tmpl == nil {
		tmpl = tracking.DefaultTemplates()
	}
	return map[string]func() *engine.Schema{
		"orders":         ordersSchema,
		"customers":      customersSchema,
		"delivery-notes": func() *engine.Schema { return deliveryNotesSchema(tmpl) },
		"invoices":       invoicesSchema,
		"products":       productsSchema,
		"prices":         pricesSchema,
		"line-items":     lineItemsSchema,
	}
}

// Names returns the registered document-type names, sorted.
func Names() []string {
	b := builders(Options{})
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a fresh copy of the named document-type layout.
func Get(name string, opts Options) (*engine.Schema, error) {
	build, ok := builders(opts)[name]
	if !ok {
		return nil, fmt.Errorf("unknown document type: %s (known: %v)", name, Names())
	}
	return build(), nil
}
