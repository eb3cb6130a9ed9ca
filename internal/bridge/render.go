package bridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/astbridge/pkg/astjson"
	"github.com/Sumatoshi-tech/astbridge/pkg/config"
)

// ErrUnsupportedFormat is returned for an unknown output format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Render converts a compact JSON document into the requested output format.
// Every format ends with a newline.
func Render(doc []byte, format string, indent int) ([]byte, error) {
	var out []byte

	switch format {
	case config.FormatCompact:
		out = bytes.Clone(doc)
	case config.FormatJSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, doc, "", strings.Repeat(" ", indent)); err != nil {
			return nil, fmt.Errorf("%w: %w", astjson.ErrMalformedDocument, err)
		}

		out = buf.Bytes()
	case config.FormatYAML:
		yamlDoc, err := astjson.ToYAML(doc)
		if err != nil {
			return nil, err
		}

		return yamlDoc, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return append(out, '\n'), nil
}

// RenderDocument encodes and renders a document in one step.
func RenderDocument(doc *Document, format string, indent int) ([]byte, error) {
	data, err := doc.Encode()
	if err != nil {
		return nil, err
	}

	return Render(data, format, indent)
}
