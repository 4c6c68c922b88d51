package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fieldwise/fieldwise/ir"

	"github.com/scott-cotton/cli"
)

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parseDoc(cfg, path, d)
}

func parseDoc(cfg *MainConfig, path string, d []byte) (*ir.Node, error) {
	switch {
	case cfg.J:
		return ir.FromJSON(d)
	case cfg.Y:
		return ir.FromYAML(d)
	}
	if strings.HasSuffix(path, ".json") {
		return ir.FromJSON(d)
	}
	// YAML subsumes JSON
	return ir.FromYAML(d)
}

func emit(cfg *MainConfig, w io.Writer, y *ir.Node) error {
	var (
		d   []byte
		err error
	)
	if cfg.Y {
		d, err = y.MarshalYAML()
	} else {
		d, err = y.MarshalJSON()
		d = append(d, '\n')
	}
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write(d)
	return err
}
