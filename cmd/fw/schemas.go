package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fieldwise/fieldwise/dyn"
	"github.com/fieldwise/fieldwise/schema"

	"github.com/scott-cotton/cli"
)

func schemas(cfg *SchemaCmdConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Schema.Parse(cc, args)
	if err != nil {
		cfg.Schema.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range args {
		if _, err := dyn.LoadSpecFile(arg); err != nil {
			return fmt.Errorf("error loading schema %s: %w", arg, err)
		}
	}
	all := schema.All()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sp := all[name]
		fmt.Fprintf(cc.Out, "%s:\n", name)
		for _, f := range sp.Fields {
			var attrs []string
			if f.Required {
				attrs = append(attrs, "required")
			}
			if f.Nullable {
				attrs = append(attrs, "nullable")
			}
			if f.Nested {
				attrs = append(attrs, "nested")
			}
			if n := len(f.Rules); n > 0 {
				attrs = append(attrs, fmt.Sprintf("%d rule(s)", n))
			}
			suffix := ""
			if len(attrs) > 0 {
				suffix = " (" + strings.Join(attrs, ", ") + ")"
			}
			fmt.Fprintf(cc.Out, "\t- %s: %s%s\n", f.Name, f.Type, suffix)
		}
	}
	return nil
}
