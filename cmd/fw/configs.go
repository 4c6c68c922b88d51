package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Color bool `cli:"name=color desc='force color output'"`

	Main *cli.Command
}

// setColor disables fatih/color unless forced or writing to a terminal.
func (cfg *MainConfig) setColor(cc *cli.Context) {
	if cfg.Color {
		color.NoColor = false
		return
	}
	f, ok := cc.Out.(*os.File)
	color.NoColor = !ok || !isatty.IsTerminal(f.Fd())
}

type ApplyCmdConfig struct {
	*MainConfig

	Op       string `cli:"name=op desc='operation kind: create, replace or merge'"`
	FailFast bool   `cli:"name=failfast desc='stop at the first failing field'"`
	Diff     bool   `cli:"name=diff desc='show a before/after diff of the document'"`
	Model    string `cli:"name=m aliases=model desc='target schema name (default: last loaded)'"`

	Schemas []string

	Apply *cli.Command
}

type CheckCmdConfig struct {
	*MainConfig

	Model   string `cli:"name=m aliases=model desc='target schema name (default: last loaded)'"`
	Schemas []string

	Check *cli.Command
}

type SchemaCmdConfig struct {
	*MainConfig

	Schema *cli.Command
}

func schemaOpt(schemas *[]string) *cli.Opt {
	return &cli.Opt{
		Name:        "s",
		Aliases:     []string{"schema"},
		Description: "schema file to load (repeatable)",
		Type: cli.NamedFuncOpt(cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
			*schemas = append(*schemas, v)
			return v, nil
		}), "(file)"),
	}
}
