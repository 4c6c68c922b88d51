package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "fw").
		WithSynopsis("fw [opts] command [opts]").
		WithDescription("fw applies partial updates to schema-declared models.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fwMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			CheckCommand(cfg),
			SchemaCommand(cfg))
}

func fwMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		cfg.Main.Usage(cc, nil)
		return cli.ExitCodeErr(1)
	}
	return cli.ErrUsage
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyCmdConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, schemaOpt(&cfg.Schemas))
	cmd := cli.NewCommand("apply").
		WithAliases("a", "ap").
		WithSynopsis("apply -s schema.yaml [opts] <patch> [patch...] <doc>").
		WithDescription("apply a patch document to a model document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
	cfg.Apply = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckCmdConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, schemaOpt(&cfg.Schemas))
	cmd := cli.NewCommand("check").
		WithAliases("c", "ch").
		WithSynopsis("check -s schema.yaml [opts] [docs]").
		WithDescription("validate model documents against a schema").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func SchemaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaCmdConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("schema").
		WithAliases("s", "sc").
		WithSynopsis("schema [files]").
		WithDescription("load schema files and list the registered specs").
		WithRun(func(cc *cli.Context, args []string) error {
			return schemas(cfg, cc, args)
		})
	cfg.Schema = cmd
	return cmd
}
