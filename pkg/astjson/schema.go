package astjson

import (
	"encoding/json"
	"reflect"
)

// Schema returns a JSON Schema (draft-07) describing a document whose root is
// a node of the registry's taxonomy. Nested nodes are checked when decoding,
// not by the schema.
func Schema(r *Registry) map[string]any {
	kinds := r.Kinds()

	enum := make([]any, len(kinds))
	for i, kind := range kinds {
		enum[i] = kind
	}

	return map[string]any{
		"$schema":  "http://json-schema.org/draft-07/schema#",
		"title":    r.Name() + " tree document",
		"type":     "object",
		"required": []any{"type"},
		"properties": map[string]any{
			"type": map[string]any{
				"type": "string",
				"enum": enum,
			},
		},
	}
}

const nodeDefinition = "node"

var marshalerType = reflect.TypeFor[json.Marshaler]()

// DocumentSchema returns a JSON Schema (draft-07) describing a whole tree of
// the registry's taxonomy. Every kind gets a definition under "definitions"
// built from its struct fields. Node positions reference the "node"
// definition, or the kind's own definition when the field has a concrete
// node type. Kinds with a custom JSON encoding only constrain "type".
func DocumentSchema(r *Registry) map[string]any {
	kindOf := make(map[reflect.Type]string, len(r.kinds))
	for kind, t := range r.kinds {
		kindOf[t] = kind
	}

	kinds := r.Kinds()
	defs := make(map[string]any, len(kinds)+1)
	enum := make([]any, len(kinds))
	byKind := make([]any, len(kinds))

	for i, kind := range kinds {
		defs[kind] = r.kindSchema(kind, r.kinds[kind], kindOf, defs)
		enum[i] = kind
		// Only the matching kind's definition is applied to a node.
		byKind[i] = map[string]any{
			"if": map[string]any{
				"required":   []any{"type"},
				"properties": map[string]any{"type": map[string]any{"const": kind}},
			},
			"then": ref(kind),
		}
	}

	defs[nodeDefinition] = map[string]any{
		"type":       "object",
		"required":   []any{"type"},
		"properties": map[string]any{"type": map[string]any{"enum": enum}},
		"allOf":      byKind,
	}

	return map[string]any{
		"$schema":     "http://json-schema.org/draft-07/schema#",
		"title":       r.Name() + " tree document",
		"definitions": defs,
		"allOf":       []any{ref(nodeDefinition)},
	}
}

func (r *Registry) kindSchema(kind string, t reflect.Type, kindOf map[reflect.Type]string, defs map[string]any) map[string]any {
	props := map[string]any{
		"type": map[string]any{"const": kind},
	}

	schema := map[string]any{
		"type":       "object",
		"required":   []any{"type"},
		"properties": props,
	}

	if reflect.PointerTo(t).Implements(marshalerType) {
		return schema
	}

	for i := range t.NumField() {
		sf := t.Field(i)

		name, opt := fieldName(sf)
		if name == "" {
			continue
		}

		fs := r.valueSchema(sf.Type, kindOf, defs)
		if opt == tagNullable {
			fs = orNull(fs)
		}

		props[name] = fs
	}

	return schema
}

func (r *Registry) valueSchema(t reflect.Type, kindOf map[reflect.Type]string, defs map[string]any) map[string]any {
	if r.isNodeType(t) {
		if t.Kind() == reflect.Pointer {
			if kind, ok := kindOf[t.Elem()]; ok {
				return orNull(ref(kind))
			}
		}

		return orNull(ref(nodeDefinition))
	}

	switch t.Kind() {
	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Slice:
		if r.isNodeType(t.Elem()) {
			return map[string]any{"type": "array", "items": r.valueSchema(t.Elem(), kindOf, defs)}
		}

		return orNull(map[string]any{"type": "array", "items": r.valueSchema(t.Elem(), kindOf, defs)})
	case reflect.Pointer:
		return orNull(r.valueSchema(t.Elem(), kindOf, defs))
	case reflect.Struct:
		if reflect.PointerTo(t).Implements(marshalerType) || t.Name() == "" {
			return map[string]any{}
		}

		if _, exists := defs[t.Name()]; !exists {
			props := make(map[string]any)
			defs[t.Name()] = map[string]any{"type": "object", "properties": props}

			for i := range t.NumField() {
				if name, _ := fieldName(t.Field(i)); name != "" {
					props[name] = r.valueSchema(t.Field(i).Type, kindOf, defs)
				}
			}
		}

		return ref(t.Name())
	default:
		return map[string]any{}
	}
}

func ref(name string) map[string]any {
	return map[string]any{"$ref": "#/definitions/" + name}
}

func orNull(schema map[string]any) map[string]any {
	return map[string]any{"anyOf": []any{schema, map[string]any{"type": "null"}}}
}
