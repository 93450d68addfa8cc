package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/archibald-tools/archex/internal/engine"
)

//go:embed overrides.schema.json
var overridesSchemaJSON string

var overridesSchema = jsonschema.MustCompileString("overrides.schema.json", overridesSchemaJSON)

// Override adjusts one document type's layout without a rebuild. The
// exporter occasionally gains or loses a page in a type's cycle; an
// override file bridges the gap until the layout is updated here.
type Override struct {
	CycleSize   int    `yaml:"cycle_size"`
	AnchorLabel string `yaml:"anchor_label"`
}

// LoadOverrides reads a YAML override file keyed by document-type name and
// validates it before use. Unknown type names are rejected so a typo does
// not silently leave the real type unadjusted.
func LoadOverrides(path string) (map[string]Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading override file: %w", err)
	}

	var generic map[string]any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("parsing override file: %w", err)
	}
	if err := overridesSchema.Validate(toJSONValue(generic)); err != nil {
		return nil, fmt.Errorf("invalid override file %s: %w", path, err)
	}

	var overrides map[string]Override
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing override file: %w", err)
	}

	known := builders(Options{})
	for name := range overrides {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("override file %s names unknown document type %q (known: %s)",
				path, name, strings.Join(Names(), ", "))
		}
	}
	return overrides, nil
}

// Apply mutates the schema with the override's non-zero settings.
func (o Override) Apply(sch *engine.Schema) {
	if o.CycleSize > 0 {
		sch.DefaultCycle = o.CycleSize
	}
	if o.AnchorLabel != "" {
		sch.AnchorLabel = o.AnchorLabel
	}
}

// toJSONValue rewrites YAML-decoded values into the shapes the JSON schema
// validator expects: map keys become strings and integers stay integers.
func toJSONValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = toJSONValue(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = toJSONValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = toJSONValue(val)
		}
		return out
	case int:
		return json.Number(strconv.Itoa(t))
	case int64:
		return json.Number(strconv.FormatInt(t, 10))
	default:
		return v
	}
}
