// Package tree flattens registry records into a labelled tree for display.
//
// Any value implementing Record is expanded field by field; types added to
// the model later are handled without changes here.
package tree

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// Record is the structural marker carried by every registry entity.
type Record interface {
	RegistryData()
}

// Node is a single labelled line of the display tree.
type Node struct {
	Label    string  `json:"label"`
	Value    string  `json:"value"`
	Children []*Node `json:"children,omitempty"`
}

var recordType = reflect.TypeOf((*Record)(nil)).Elem()

// Build flattens a record, or a slice of records, into root nodes. A single
// record produces one root labelled with header; a slice produces one root
// per element labelled "header[i]". A nil input produces no roots.
func Build(header string, v any) []*Node {
	root := reflect.ValueOf(v)
	if !root.IsValid() {
		return nil
	}
	rv := root
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	f := &flattener{visiting: make(map[uintptr]bool)}
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		roots := make([]*Node, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			roots = append(roots, f.node(fmt.Sprintf("%s[%d]", header, i), rv.Index(i)))
		}
		return roots
	}
	return []*Node{f.node(header, root)}
}

type flattener struct {
	// visiting holds pointers on the current path so self-referencing
	// records terminate.
	visiting map[uintptr]bool
}

func (f *flattener) node(label string, v reflect.Value) *Node {
	n := &Node{Label: label}

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return n
		}
		if v.Kind() == reflect.Pointer {
			addr := v.Pointer()
			if f.visiting[addr] {
				n.Value = "<cycle>"
				return n
			}
			f.visiting[addr] = true
			defer delete(f.visiting, addr)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if isRecord(v.Type()) {
			n.Value = v.Type().Name()
			n.Children = f.fields(v)
			return n
		}
		n.Value = fmt.Sprint(v.Interface())
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			n.Value = "[0]"
			return n
		}
		n.Value = fmt.Sprintf("[%d]", v.Len())
		for i := 0; i < v.Len(); i++ {
			n.Children = append(n.Children, f.node(fmt.Sprintf("[%d]", i), v.Index(i)))
		}
	case reflect.Map:
		n.Value = fmt.Sprintf("{%d}", v.Len())
	default:
		n.Value = scalar(v)
	}
	return n
}

func (f *flattener) fields(v reflect.Value) []*Node {
	t := v.Type()
	children := make([]*Node, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		children = append(children, f.node(field.Name, v.Field(i)))
	}
	return children
}

func isRecord(t reflect.Type) bool {
	return t.Implements(recordType) || reflect.PointerTo(t).Implements(recordType)
}

// scalar renders a leaf value. Floats use two decimals; json.Number and
// other string kinds are printed verbatim.
func scalar(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', 2, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}

// Render writes the nodes as an indented text tree, two spaces per level.
func Render(w io.Writer, nodes []*Node) error {
	for _, n := range nodes {
		if err := render(w, n, 0); err != nil {
			return err
		}
	}
	return nil
}

func render(w io.Writer, n *Node, depth int) error {
	line := strings.Repeat("  ", depth) + n.Label
	if n.Value != "" {
		line += ": " + n.Value
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := render(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
