package bridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Sumatoshi-tech/astbridge/pkg/astjson"
)

// Report is the result of validating a document.
type Report struct {
	Taxonomy Taxonomy
	// Problems lists schema violations of the root and decode failures.
	Problems []string
	// Unknown lists nested kinds the taxonomy does not define.
	Unknown []string
	// Suggestions maps unknown kinds to similarly spelled known ones.
	Suggestions map[string][]string
	// Nodes is the number of decoded nodes, zero when decoding failed.
	Nodes int
}

// Valid reports whether the document can be translated as far as its kinds
// and shapes go.
func (r *Report) Valid() bool {
	return len(r.Problems) == 0 && len(r.Unknown) == 0
}

// Validate checks the root of a document against the taxonomy's JSON Schema,
// then decodes the whole tree to find unknown nested kinds and misplaced
// nodes. An empty from detects the taxonomy; a document whose taxonomy cannot
// be told is reported as a problem against ESTree.
func Validate(data []byte, from Taxonomy) (*Report, error) {
	report := &Report{Taxonomy: from}

	if report.Taxonomy == "" {
		detected, err := Detect(data)
		switch {
		case err == nil:
			report.Taxonomy = detected
		case errors.Is(err, astjson.ErrMalformedDocument):
			return nil, err
		default:
			report.Taxonomy = ESTree
			report.Problems = append(report.Problems, err.Error())
		}
	}

	problems, err := schemaProblems(data, report.Taxonomy)
	if err != nil {
		return nil, err
	}

	report.Problems = append(report.Problems, problems...)

	doc, err := Decode(data, report.Taxonomy)
	if err != nil {
		report.Problems = append(report.Problems, err.Error())

		return report, nil
	}

	report.Unknown = doc.Unknown()

	for _, kind := range report.Unknown {
		if similar := Suggest(report.Taxonomy, kind); len(similar) > 0 {
			if report.Suggestions == nil {
				report.Suggestions = make(map[string][]string)
			}

			report.Suggestions[kind] = similar
		}
	}
	report.Nodes = countNodes(doc.Root)

	return report, nil
}

func schemaProblems(data []byte, taxonomy Taxonomy) ([]string, error) {
	var input any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&input); err != nil {
		return nil, fmt.Errorf("%w: %w", astjson.ErrMalformedDocument, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(astjson.Schema(taxonomy.Registry())),
		gojsonschema.NewGoLoader(input),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}

	return problems, nil
}
