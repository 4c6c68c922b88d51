package main

import (
	"fmt"
	"strings"

	"github.com/fieldwise/fieldwise"
	"github.com/fieldwise/fieldwise/dyn"
	"github.com/fieldwise/fieldwise/ir"
	"github.com/fieldwise/fieldwise/schema"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func apply(cfg *ApplyCmdConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	cfg.setColor(cc)
	if len(args) < 2 {
		return fmt.Errorf("%w: apply requires at least a patch and a document", cli.ErrUsage)
	}
	spec, err := loadSchemas(cfg.Schemas, cfg.Model)
	if err != nil {
		return err
	}
	op := fieldwise.Merge
	if cfg.Op != "" {
		op, err = fieldwise.ParseOp(cfg.Op)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	patch, err := getPatch(cfg, cc, args[:len(args)-1])
	if err != nil {
		return err
	}
	docPath := args[len(args)-1]
	docNode, err := getObjFile(cfg.MainConfig, cc, docPath)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", docPath, err)
	}
	m := dyn.New(spec)
	if err := m.DecodeIR(docNode); err != nil {
		return fmt.Errorf("error decoding %s: %w", docPath, err)
	}
	var before *ir.Node
	if cfg.Diff {
		if before, err = m.Node(); err != nil {
			return err
		}
	}
	res := fieldwise.Apply(m, patch, op, fieldwise.FailFast(cfg.FailFast))
	printResult(cc, res)
	if res.Type() == fieldwise.ErrorType {
		return cli.ExitCodeErr(1)
	}
	after, err := m.Node()
	if err != nil {
		return err
	}
	if cfg.Diff {
		if err := printDiff(cc, before, after); err != nil {
			return err
		}
		return nil
	}
	return emit(cfg.MainConfig, cc.Out, after)
}

// loadSchemas loads schema files in order, so references come first; the
// target spec is the last loaded one unless named explicitly.
func loadSchemas(files []string, model string) (*schema.Spec, error) {
	var last *schema.Spec
	for _, f := range files {
		sp, err := dyn.LoadSpecFile(f)
		if err != nil {
			return nil, fmt.Errorf("error loading schema %s: %w", f, err)
		}
		last = sp
	}
	if model != "" {
		sp := schema.Lookup(model)
		if sp == nil {
			return nil, fmt.Errorf("no schema %q loaded", model)
		}
		return sp, nil
	}
	if last == nil {
		return nil, fmt.Errorf("%w: no schema loaded, use -s", cli.ErrUsage)
	}
	return last, nil
}

// getPatch parses the patch files, composing several into one RFC 7396
// merge patch.
func getPatch(cfg *ApplyCmdConfig, cc *cli.Context, args []string) (*ir.Node, error) {
	nodes := make([]*ir.Node, len(args))
	for i, arg := range args {
		y, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		nodes[i] = y
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	acc, err := nodes[0].MarshalJSON()
	if err != nil {
		return nil, err
	}
	for _, y := range nodes[1:] {
		d, err := y.MarshalJSON()
		if err != nil {
			return nil, err
		}
		acc, err = jsonpatch.MergeMergePatches(acc, d)
		if err != nil {
			return nil, fmt.Errorf("error composing patches: %w", err)
		}
	}
	return ir.FromJSON(acc)
}

func printResult(cc *cli.Context, res *fieldwise.Result) {
	switch res.Type() {
	case fieldwise.OkType:
		fmt.Fprintf(cc.Out, "%s %s\n", color.GreenString("ok"), strings.Join(res.Changed(), ", "))
	case fieldwise.NoChangesType:
		fmt.Fprintln(cc.Out, color.YellowString("no changes"))
	case fieldwise.ErrorType:
		for _, fe := range res.Errors() {
			path := fe.Path
			if path == "" {
				path = "(object)"
			}
			fmt.Fprintf(cc.Out, "%s %s: %s\n", color.RedString("error"), path, fe.Message)
		}
	}
}

func printDiff(cc *cli.Context, before, after *ir.Node) error {
	a, err := before.MarshalYAML()
	if err != nil {
		return err
	}
	b, err := after.MarshalYAML()
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(a), string(b), true)
	fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	return nil
}
