package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node type names used on the wire.
const (
	NodeTypeLiteral        = "Literal"
	NodeTypeBinaryOperator = "BinaryOperator"
)

// OpOr is the only operator produced for cohort expressions.
const OpOr = "OR"

// Node is a cohort expression node: either *Literal or *BinaryOperator.
// A nil Node is an empty expression.
type Node interface {
	node()
}

// Literal references a single member by key.
type Literal struct {
	Name string
}

// BinaryOperator combines two sub-expressions.
// Left and Right may be nil when decoded from a malformed graph.
type BinaryOperator struct {
	Op    string
	Left  Node
	Right Node
}

func (*Literal) node()        {}
func (*BinaryOperator) node() {}

// NewLiteral returns a literal for key.
func NewLiteral(key string) *Literal {
	return &Literal{Name: key}
}

// NewOr returns left OR right.
func NewOr(left, right Node) *BinaryOperator {
	return &BinaryOperator{Op: OpOr, Left: left, Right: right}
}

var jsonNull = []byte("null")

// MarshalJSON implements json.Marshaler.
func (l *Literal) MarshalJSON() ([]byte, error) {
	return MarshalNode(l)
}

// MarshalJSON implements json.Marshaler.
func (b *BinaryOperator) MarshalJSON() ([]byte, error) {
	return MarshalNode(b)
}

// MarshalNode encodes n in the upstream wire format. A nil node encodes as null.
func MarshalNode(n Node) ([]byte, error) {
	return AppendNode(nil, n)
}

// AppendNode appends the wire encoding of n to buf.
//
// Trees are walked with an explicit stack: Build nests one operator per
// member, so depth grows with the cohort.
func AppendNode(buf []byte, n Node) ([]byte, error) {
	type step struct {
		node Node
		text string
	}

	pending := []step{{node: n}}
	for len(pending) > 0 {
		s := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if s.text != "" {
			buf = append(buf, s.text...)
			continue
		}

		switch v := s.node.(type) {
		case nil:
			buf = append(buf, jsonNull...)
		case *Literal:
			if v == nil {
				buf = append(buf, jsonNull...)
				continue
			}
			buf = append(buf, `{"id":null,"name":`...)
			buf = appendString(buf, v.Name)
			buf = append(buf, `,"start":null,"finish":null,"type":"Literal"}`...)
		case *BinaryOperator:
			if v == nil {
				buf = append(buf, jsonNull...)
				continue
			}
			buf = append(buf, `{"id":null,"type":"BinaryOperator","op":`...)
			buf = appendString(buf, v.Op)
			buf = append(buf, `,"left_node":`...)
			pending = append(pending,
				step{text: "}"},
				step{node: v.Right},
				step{text: `,"right_node":`},
				step{node: v.Left},
			)
		default:
			return nil, fmt.Errorf("unsupported node type %T", s.node)
		}
	}
	return buf, nil
}

// UnmarshalNode decodes a node graph received from the upstream API.
//
// Decoding is lenient: absent left_node/right_node yield nil children, a node
// without a type is inferred from its fields, and a literal without a name
// decodes to nil. Only malformed JSON is reported as an error.
func UnmarshalNode(data []byte) (Node, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	n, err := decodeNode(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode expression node: %w", err)
	}
	if err := expectEOF(dec); err != nil {
		return nil, fmt.Errorf("failed to decode expression node: %w", err)
	}
	return n, nil
}

// nodeFrame collects the fields of one node object while its children are
// being decoded.
type nodeFrame struct {
	typ         string
	op          string
	name        *string
	left, right Node
	hasChildren bool
	child       *Node
}

func (f *nodeFrame) setChild(n Node, present bool) {
	*f.child = n
	f.child = nil
	if present {
		f.hasChildren = true
	}
}

func (f *nodeFrame) node() Node {
	switch {
	case f.typ == NodeTypeBinaryOperator, f.typ != NodeTypeLiteral && f.hasChildren:
		return &BinaryOperator{Op: f.op, Left: f.left, Right: f.right}
	case f.name != nil:
		return &Literal{Name: *f.name}
	default:
		return nil
	}
}

// readFields consumes members of the current object until the value of a
// child node is next (true) or the object is closed (false).
func (f *nodeFrame) readFields(dec *json.Decoder) (bool, error) {
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return false, err
		}
		switch key {
		case "type":
			err = dec.Decode(&f.typ)
		case "name":
			err = dec.Decode(&f.name)
		case "op":
			err = dec.Decode(&f.op)
		case "left_node":
			f.child = &f.left
			return true, nil
		case "right_node":
			f.child = &f.right
			return true, nil
		default:
			err = skipValue(dec)
		}
		if err != nil {
			return false, err
		}
	}
	return false, expectDelim(dec, '}')
}

// decodeNode reads one node value from the token stream without recursion.
func decodeNode(dec *json.Decoder) (Node, error) {
	var stack []*nodeFrame
	for {
		open, err := openObject(dec)
		if err != nil {
			return nil, err
		}
		switch {
		case open:
			stack = append(stack, &nodeFrame{})
		case len(stack) == 0:
			return nil, nil
		default:
			stack[len(stack)-1].setChild(nil, false)
		}

		for {
			top := stack[len(stack)-1]
			child, err := top.readFields(dec)
			if err != nil {
				return nil, err
			}
			if child {
				break
			}
			stack = stack[:len(stack)-1]
			n := top.node()
			if len(stack) == 0 {
				return n, nil
			}
			stack[len(stack)-1].setChild(n, true)
		}
	}
}
