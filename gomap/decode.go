// Package gomap maps ir values onto Go values.
package gomap

import (
	"bytes"
	"encoding/json/jsontext"
	"encoding/json/v2"

	"github.com/fieldwise/fieldwise/ir"
)

// IRDecoder lets a type take over its own decoding from a node.
type IRDecoder interface {
	DecodeIR(*ir.Node) error
}

// Decode converts node into *p's declared type. A failure is an ordinary
// error, never a panic; the caller converts it into a coercion-failure entry.
// Document keys match untagged struct fields case-insensitively.
func Decode(node *ir.Node, p any) error {
	if x, ok := p.(IRDecoder); ok {
		return x.DecodeIR(node)
	}
	b := bytes.NewBuffer(nil)
	if err := ir.EncodeJSON(node, b); err != nil {
		return err
	}
	jDec := jsontext.NewDecoder(b)
	if err := json.UnmarshalDecode(jDec, p, json.MatchCaseInsensitiveNames(true)); err != nil {
		return err
	}
	return nil
}
