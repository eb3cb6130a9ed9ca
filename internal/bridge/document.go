// Package bridge holds the document-level operations behind the astbridge
// commands: taxonomy detection, translation with telemetry, rendering,
// round-trip comparison, validation, statistics and batch scheduling.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/astbridge/pkg/astjson"
	"github.com/Sumatoshi-tech/astbridge/pkg/estree"
	"github.com/Sumatoshi-tech/astbridge/pkg/shift"
)

// Sentinel errors for document handling.
var (
	ErrUnknownTaxonomy   = errors.New("cannot tell which taxonomy the document uses")
	ErrAmbiguousTaxonomy = errors.New("root kind exists in both taxonomies")
	ErrEmptyDocument     = errors.New("document is empty")
)

// Taxonomy names one of the two syntax tree taxonomies.
type Taxonomy string

// Supported taxonomies.
const (
	ESTree Taxonomy = "estree"
	Shift  Taxonomy = "shift"
)

// ParseTaxonomy accepts a taxonomy name as given on the command line. The
// empty string means "detect".
func ParseTaxonomy(name string) (Taxonomy, error) {
	switch Taxonomy(name) {
	case "", ESTree, Shift:
		return Taxonomy(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTaxonomy, name)
	}
}

// Other returns the opposite taxonomy.
func (t Taxonomy) Other() Taxonomy {
	if t == ESTree {
		return Shift
	}

	return ESTree
}

// Registry returns the kind registry of the taxonomy.
func (t Taxonomy) Registry() *astjson.Registry {
	if t == Shift {
		return shift.Registry()
	}

	return estree.Registry()
}

// Document is a decoded tree together with its taxonomy.
type Document struct {
	Taxonomy Taxonomy
	Root     astjson.Node
}

// RootKind reads the "type" member of a JSON document root.
func RootKind(data []byte) (string, error) {
	var head struct {
		Type *string `json:"type"`
	}

	if err := json.Unmarshal(data, &head); err != nil {
		return "", fmt.Errorf("%w: %w", astjson.ErrMalformedDocument, err)
	}

	if head.Type == nil {
		return "", fmt.Errorf("%w: root has no \"type\"", astjson.ErrMalformedDocument)
	}

	return *head.Type, nil
}

// Detect tells the taxonomy of a document from its root kind. Program is
// ESTree; Script and Module are Shift. Other kinds decide only when exactly
// one taxonomy registers them.
func Detect(data []byte) (Taxonomy, error) {
	kind, err := RootKind(data)
	if err != nil {
		return "", err
	}

	switch kind {
	case estree.KindProgram:
		return ESTree, nil
	case shift.KindScript, shift.KindModule:
		return Shift, nil
	}

	inESTree, inShift := estree.Registry().Has(kind), shift.Registry().Has(kind)

	switch {
	case inESTree && inShift:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousTaxonomy, kind)
	case inESTree:
		return ESTree, nil
	case inShift:
		return Shift, nil
	default:
		return "", fmt.Errorf("%w: root kind %q", ErrUnknownTaxonomy, kind)
	}
}

// Decode parses a document. An empty from detects the taxonomy.
func Decode(data []byte, from Taxonomy) (*Document, error) {
	if from == "" {
		detected, err := Detect(data)
		if err != nil {
			return nil, err
		}

		from = detected
	}

	var (
		root astjson.Node
		err  error
	)

	if from == Shift {
		root, err = shift.Decode(data)
	} else {
		root, err = estree.Decode(data)
	}

	if err != nil {
		return nil, fmt.Errorf("decode %s document: %w", from, err)
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}

	return &Document{Taxonomy: from, Root: root}, nil
}

// Encode renders the document as compact JSON.
func (d *Document) Encode() ([]byte, error) {
	data, err := d.Taxonomy.Registry().Encode(d.Root)
	if err != nil {
		return nil, fmt.Errorf("encode %s document: %w", d.Taxonomy, err)
	}

	return data, nil
}

// Counts returns the number of nodes of the document per kind.
func (d *Document) Counts() map[string]int {
	return astjson.Count(d.Root)
}

// Unknown returns the kinds of nodes that the taxonomy does not define, in
// document order.
func (d *Document) Unknown() []string {
	var kinds []string

	astjson.Walk(d.Root, func(n astjson.Node) bool {
		switch n.(type) {
		case *estree.Unknown, *shift.Unknown:
			kinds = append(kinds, n.Type())
		}

		return true
	})

	return kinds
}
