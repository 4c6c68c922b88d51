package main

import (
	"fmt"

	"github.com/fieldwise/fieldwise"
	"github.com/fieldwise/fieldwise/dyn"

	"github.com/scott-cotton/cli"
)

// check validates complete documents: absent updatable fields count as
// explicit nulls, so missing required fields are reported.
func check(cfg *CheckCmdConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	cfg.setColor(cc)
	spec, err := loadSchemas(cfg.Schemas, cfg.Model)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, arg := range args {
		doc, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if len(args) > 1 {
			fmt.Fprintf(cc.Out, "%s:\n", arg)
		}
		res := fieldwise.Apply(dyn.New(spec), doc, fieldwise.Replace)
		printResult(cc, res)
		if res.Type() == fieldwise.ErrorType {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
