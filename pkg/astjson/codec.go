// Package astjson encodes and decodes typed syntax trees as JSON documents in
// which every node object names its kind in a "type" member.
//
// A taxonomy registers one prototype per node kind. Node structs are plain Go
// structs with json tags; fields whose type implements the taxonomy's node
// interface (directly, as a pointer, or as a slice element) are decoded
// recursively and routed by their "type" member. Every other field goes
// through encoding/json unchanged.
package astjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Sentinel errors for tree documents.
var (
	ErrMalformedDocument = errors.New("malformed tree document")
	ErrUnknownKind       = errors.New("unknown node kind")
	ErrKindMismatch      = errors.New("node kind not allowed here")
)

// Node is the minimal view of a tree node: every node reports its kind.
type Node interface {
	Type() string
}

// UnknownFunc builds a placeholder node for a kind the registry does not know.
type UnknownFunc func(kind string, fields map[string]json.RawMessage) Node

// Registry maps kind names of one taxonomy to their Go struct types.
type Registry struct {
	name     string
	nodeType reflect.Type
	kinds    map[string]reflect.Type
	unknown  UnknownFunc
}

// NewRegistry creates an empty registry. nodeType is the taxonomy's node
// interface; fields of that interface type accept any registered kind.
func NewRegistry(name string, nodeType reflect.Type) *Registry {
	return &Registry{
		name:     name,
		nodeType: nodeType,
		kinds:    make(map[string]reflect.Type),
	}
}

// Register adds a kind. proto must be a pointer to a struct.
func (r *Registry) Register(proto Node) {
	t := reflect.TypeOf(proto)
	if t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("astjson: prototype for %q must be a pointer to a struct, got %s", proto.Type(), t))
	}

	r.kinds[proto.Type()] = t.Elem()
}

// SetUnknown installs the fallback used for unregistered kinds. Without one,
// decoding an unregistered kind fails with ErrUnknownKind.
func (r *Registry) SetUnknown(fn UnknownFunc) {
	r.unknown = fn
}

// Name returns the taxonomy name.
func (r *Registry) Name() string {
	return r.name
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind string) bool {
	_, ok := r.kinds[kind]

	return ok
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.kinds))
	for kind := range r.kinds {
		kinds = append(kinds, kind)
	}

	sort.Strings(kinds)

	return kinds
}

// Decode parses a JSON document into a tree. A JSON null decodes to a nil node.
func (r *Registry) Decode(data []byte) (Node, error) {
	v, err := r.decodeNode(bytes.TrimSpace(data), r.nodeType)
	if err != nil {
		return nil, err
	}

	if v.IsNil() {
		return nil, nil
	}

	node, ok := v.Interface().(Node)
	if !ok {
		return nil, fmt.Errorf("%w: root is not a node", ErrMalformedDocument)
	}

	return node, nil
}

// Encode renders a tree as compact JSON. The "type" member comes first and the
// remaining members follow struct field order. Nil lists encode as [].
func (r *Registry) Encode(node Node) ([]byte, error) {
	var buf bytes.Buffer

	if err := r.encodeNode(&buf, reflect.ValueOf(&node).Elem()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EncodeIndent is Encode followed by json.Indent.
func (r *Registry) EncodeIndent(node Node, prefix, indent string) ([]byte, error) {
	data, err := r.Encode(node)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, prefix, indent); err != nil {
		return nil, fmt.Errorf("indent: %w", err)
	}

	return out.Bytes(), nil
}

func (r *Registry) isNodeType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return t.Implements(r.nodeType)
	case reflect.Pointer:
		return t.Elem().Kind() == reflect.Struct && t.Implements(r.nodeType)
	default:
		return false
	}
}

func (r *Registry) isNodeList(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && r.isNodeType(t.Elem())
}

func (r *Registry) decodeNode(raw json.RawMessage, target reflect.Type) (reflect.Value, error) {
	if isNull(raw) {
		return reflect.Zero(target), nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	var kind string
	if err := json.Unmarshal(fields["type"], &kind); err != nil || kind == "" {
		return reflect.Value{}, fmt.Errorf("%w: node object without a string \"type\" member", ErrMalformedDocument)
	}

	var node reflect.Value

	structType, known := r.kinds[kind]

	switch {
	case known:
		node = reflect.New(structType)

		if u, ok := node.Interface().(json.Unmarshaler); ok {
			if err := u.UnmarshalJSON(raw); err != nil {
				return reflect.Value{}, fmt.Errorf("%w: %s: %w", ErrMalformedDocument, kind, err)
			}
		} else if err := r.decodeFields(node.Elem(), kind, fields); err != nil {
			return reflect.Value{}, err
		}
	case r.unknown != nil:
		node = reflect.ValueOf(r.unknown(kind, fields))
	default:
		return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if !node.Type().AssignableTo(target) {
		return reflect.Value{}, fmt.Errorf("%w: %s where %s expected", ErrKindMismatch, kind, describe(target))
	}

	return node, nil
}

func (r *Registry) decodeFields(dst reflect.Value, kind string, fields map[string]json.RawMessage) error {
	t := dst.Type()

	for i := range t.NumField() {
		sf := t.Field(i)

		name, _ := fieldName(sf)
		if name == "" {
			continue
		}

		raw, ok := fields[name]
		if !ok {
			continue
		}

		v, err := r.decodeValue(raw, sf.Type)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", kind, name, err)
		}

		dst.Field(i).Set(v)
	}

	return nil
}

func (r *Registry) decodeValue(raw json.RawMessage, t reflect.Type) (reflect.Value, error) {
	switch {
	case r.isNodeType(t):
		return r.decodeNode(raw, t)
	case r.isNodeList(t):
		if isNull(raw) {
			return reflect.Zero(t), nil
		}

		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		if len(items) == 0 {
			return reflect.Zero(t), nil
		}

		list := reflect.MakeSlice(t, len(items), len(items))

		for i, item := range items {
			v, err := r.decodeNode(item, t.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("[%d]: %w", i, err)
			}

			list.Index(i).Set(v)
		}

		return list, nil
	default:
		ptr := reflect.New(t)
		if err := json.Unmarshal(raw, ptr.Interface()); err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		return ptr.Elem(), nil
	}
}

func (r *Registry) encodeNode(buf *bytes.Buffer, v reflect.Value) error {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			buf.WriteString("null")

			return nil
		}

		v = v.Elem()
	}

	if v.Kind() == reflect.Pointer && v.IsNil() {
		buf.WriteString("null")

		return nil
	}

	if m, ok := v.Interface().(json.Marshaler); ok {
		data, err := m.MarshalJSON()
		if err != nil {
			return err
		}

		buf.Write(data)

		return nil
	}

	node, ok := v.Interface().(Node)
	if !ok || v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: cannot encode %s", ErrMalformedDocument, v.Type())
	}

	buf.WriteString(`{"type":`)
	writeString(buf, node.Type())

	s := v.Elem()
	t := s.Type()

	for i := range t.NumField() {
		name, opt := fieldName(t.Field(i))
		if name == "" {
			continue
		}

		field := s.Field(i)
		if opt == tagOmitZero && field.IsZero() {
			continue
		}

		buf.WriteByte(',')
		writeString(buf, name)
		buf.WriteByte(':')

		if opt == tagNullable && field.IsZero() {
			buf.WriteString("null")

			continue
		}

		if err := r.encodeValue(buf, field); err != nil {
			return fmt.Errorf("%s.%s: %w", node.Type(), name, err)
		}
	}

	buf.WriteByte('}')

	return nil
}

func (r *Registry) encodeValue(buf *bytes.Buffer, v reflect.Value) error {
	switch t := v.Type(); {
	case r.isNodeType(t):
		return r.encodeNode(buf, v)
	case r.isNodeList(t):
		buf.WriteByte('[')

		for i := range v.Len() {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := r.encodeNode(buf, v.Index(i)); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}

		buf.WriteByte(']')

		return nil
	default:
		data, err := marshal(v.Interface())
		if err != nil {
			return err
		}

		buf.Write(data)

		return nil
	}
}

// Field tag options. A nullable field writes its zero value as null; an
// omitzero field leaves the member out.
const (
	tagNullable = "omitempty"
	tagOmitZero = "omitzero"
)

// fieldName returns the JSON member name of a struct field and its tag
// option.
func fieldName(sf reflect.StructField) (string, string) {
	if !sf.IsExported() {
		return "", ""
	}

	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", ""
	}

	name, opt, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}

	return name, opt
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func describe(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return t.Elem().Name()
	}

	return t.Name()
}

func writeString(buf *bytes.Buffer, s string) {
	data, _ := marshal(s) //nolint:errchkjson // strings always marshal
	buf.Write(data)
}

// marshal is json.Marshal without HTML escaping, so source text such as
// "a < b" stays readable.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
