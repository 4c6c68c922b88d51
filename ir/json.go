package ir

import (
	"bytes"
	"encoding/json/jsontext"
	"fmt"
	"io"
	"strconv"
)

// FromJSON parses a JSON document, preserving object key order.
func FromJSON(d []byte) (*Node, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(d))
	res, err := readNode(dec)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func readNode(dec *jsontext.Decoder) (*Node, error) {
	switch k := dec.PeekKind(); k {
	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		res := &Node{Type: ObjectType}
		for dec.PeekKind() != '}' {
			name, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			// the token is voided by the next decoder call
			key := name.String()
			val, err := readNode(dec)
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, key)
			res.Values = append(res.Values, val)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return res, nil
	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		res := &Node{Type: ArrayType}
		for dec.PeekKind() != ']' {
			val, err := readNode(dec)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, val)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return res, nil
	case '"':
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		return FromString(tok.String()), nil
	case 't', 'f':
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		return FromBool(tok.Bool()), nil
	case 'n':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return Null(), nil
	case '0':
		raw, err := dec.ReadValue()
		if err != nil {
			return nil, err
		}
		lit := string(raw)
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return FromInt(i), nil
		}
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", lit, err)
		}
		return FromFloat(f), nil
	default:
		_, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected kind %q", k.String())
	}
}

// MarshalJSON encodes the node as JSON, keeping object key order.
func (y *Node) MarshalJSON() ([]byte, error) {
	b := bytes.NewBuffer(nil)
	if err := EncodeJSON(y, b); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

func EncodeJSON(y *Node, w io.Writer) error {
	enc := jsontext.NewEncoder(w)
	return nodeToJEnc(y, enc)
}

func nodeToJEnc(node *Node, je *jsontext.Encoder) error {
	switch node.Type {
	case ObjectType:
		if err := je.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for i, field := range node.Fields {
			if err := je.WriteToken(jsontext.String(field)); err != nil {
				return err
			}
			if err := nodeToJEnc(node.Values[i], je); err != nil {
				return err
			}
		}
		return je.WriteToken(jsontext.EndObject)
	case ArrayType:
		if err := je.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, val := range node.Values {
			if err := nodeToJEnc(val, je); err != nil {
				return err
			}
		}
		return je.WriteToken(jsontext.EndArray)
	case StringType:
		return je.WriteToken(jsontext.String(node.String))
	case NumberType:
		if node.Int64 != nil {
			return je.WriteToken(jsontext.Int(*node.Int64))
		}
		if node.Float64 != nil {
			return je.WriteToken(jsontext.Float(*node.Float64))
		}
		panic("number")
	case BoolType:
		return je.WriteToken(jsontext.Bool(node.Bool))
	case NullType:
		return je.WriteToken(jsontext.Null)
	default:
		panic("ir type")
	}
}

// MustJSON is for debug output.
func MustJSON(y *Node) string {
	d, err := y.MarshalJSON()
	if err != nil {
		panic(err)
	}
	return string(d)
}
