package dyn

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"

	"github.com/fieldwise/fieldwise/ir"
	"github.com/fieldwise/fieldwise/schema"
)

type specConfig struct {
	Name   string        `yaml:"name"`
	Fields []fieldConfig `yaml:"fields"`
	Check  *ruleConfig   `yaml:"check"`
}

type fieldConfig struct {
	Name     string       `yaml:"name"`
	Type     string       `yaml:"type"`
	Nullable bool         `yaml:"nullable"`
	Required bool         `yaml:"required"`
	Schema   string       `yaml:"schema"`
	Rules    []ruleConfig `yaml:"rules"`
}

type ruleConfig struct {
	Expr    string `yaml:"expr"`
	Message string `yaml:"message"`
}

// LoadSpec builds a spec from a YAML schema document and registers it.
// Nested schema references must already be registered.
func LoadSpec(d []byte) (*schema.Spec, error) {
	cfg := &specConfig{}
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, err
	}
	spec := &schema.Spec{Name: cfg.Name}
	for i := range cfg.Fields {
		f, err := fieldOf(&cfg.Fields[i])
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", cfg.Name, err)
		}
		spec.Fields = append(spec.Fields, f)
	}
	if cfg.Check != nil {
		check, err := checkOf(cfg.Check)
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", cfg.Name, err)
		}
		spec.Check = check
	}
	if err := schema.Register(spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func LoadSpecFile(path string) (*schema.Spec, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadSpec(d)
}

func fieldOf(cfg *fieldConfig) (*schema.Field, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("field without a name")
	}
	name := cfg.Name
	f := &schema.Field{
		Name:     name,
		Nullable: cfg.Nullable,
		Required: cfg.Required,
		Get: func(m any) any {
			return m.(*Model).vals[name]
		},
	}
	for _, rc := range cfg.Rules {
		if rc.Expr == "" {
			return nil, fmt.Errorf("field %q: rule without an expr", name)
		}
		r, err := schema.Expr(rc.Expr, rc.Message)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		f.Rules = append(f.Rules, r)
	}

	if cfg.Schema != "" {
		nested := schema.Lookup(cfg.Schema)
		if nested == nil {
			return nil, fmt.Errorf("field %q references unregistered schema %q", name, cfg.Schema)
		}
		f.Type = ir.ObjectType
		f.Nested = true
		f.New = func() any { return New(nested) }
		f.Set = setVal(name, func(v any) any { return v.(*Model) })
		return f, nil
	}

	switch cfg.Type {
	case "string":
		f.Type = ir.StringType
		f.New = func() any { return new(string) }
		f.Set = setVal(name, func(v any) any { return *v.(*string) })
	case "number":
		f.Type = ir.NumberType
		f.New = func() any { return new(float64) }
		f.Set = setVal(name, func(v any) any { return *v.(*float64) })
	case "bool":
		f.Type = ir.BoolType
		f.New = func() any { return new(bool) }
		f.Set = setVal(name, func(v any) any { return *v.(*bool) })
	case "object":
		f.Type = ir.ObjectType
		f.New = func() any { return new(map[string]any) }
		f.Set = setVal(name, func(v any) any { return *v.(*map[string]any) })
	case "array":
		f.Type = ir.ArrayType
		f.New = func() any { return new([]any) }
		f.Set = setVal(name, func(v any) any { return *v.(*[]any) })
	default:
		return nil, fmt.Errorf("field %q has unrecognized type %q", name, cfg.Type)
	}
	return f, nil
}

func setVal(name string, unwrap func(any) any) func(m, v any) {
	return func(m, v any) {
		mm := m.(*Model)
		if v == nil {
			mm.vals[name] = nil
			return
		}
		mm.vals[name] = unwrap(v)
	}
}

// checkOf compiles an object-level expr check; the model's flattened values
// are bound to "this".
func checkOf(cfg *ruleConfig) (schema.CheckFunc, error) {
	if cfg.Expr == "" {
		return nil, fmt.Errorf("check without an expr")
	}
	prog, err := expr.Compile(cfg.Expr)
	if err != nil {
		return nil, fmt.Errorf("bad check expression %q: %w", cfg.Expr, err)
	}
	message := cfg.Message
	if message == "" {
		message = "object check failed"
	}
	return func(m any) error {
		out, err := expr.Run(prog, map[string]any{"this": m.(*Model).Env()})
		if err != nil {
			return fmt.Errorf("%s: %w", message, err)
		}
		if b, ok := out.(bool); ok && b {
			return nil
		}
		return fmt.Errorf("%s", message)
	}, nil
}
