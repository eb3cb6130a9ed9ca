package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/astbridge/internal/bridge"
	"github.com/Sumatoshi-tech/astbridge/pkg/config"
)

const (
	estreeProgram = `{"type":"Program","body":[{"type":"ExpressionStatement","expression":` +
		`{"type":"BinaryExpression","operator":"+","left":{"type":"Literal","value":1},` +
		`"right":{"type":"Literal","value":2}}}],"sourceType":"script"}`
	shiftScript = `{"type":"Script","directives":[],"statements":[{"type":"ExpressionStatement","expression":` +
		`{"type":"BinaryExpression","operator":"+","left":{"type":"LiteralNumericExpression","value":1},` +
		`"right":{"type":"LiteralNumericExpression","value":2}}}]}`
	// Identifier property keys come back as string literal keys.
	lossyProgram = `{"type":"Program","sourceType":"script","body":[{"type":"ExpressionStatement",` +
		`"expression":{"type":"ObjectExpression","properties":[{"type":"Property","key":{"type":"Identifier","name":"a"},` +
		`"value":{"type":"Literal","value":1},"kind":"init","method":false,"shorthand":false,"computed":false}]}}]}`
	unknownProgram = `{"type":"Program","sourceType":"script","body":[` +
		`{"type":"ExpressionStatement","expression":{"type":"Frobnicate"}}]}`
)

// execute runs the CLI with args and returns stdout and the command error.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)

	return stdout.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRootHelp(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "--help")
	require.NoError(t, err)

	for _, sub := range []string{"convert", "roundtrip", "validate", "kinds", "stats", "cook", "schema", "completion", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := writeFile(t, dir, "program.json", estreeProgram)
	script := writeFile(t, dir, "script.json", shiftScript)

	tests := []struct {
		name  string
		stdin string
		args  []string
		check func(t *testing.T, out string)
	}{
		{
			name: "estree to shift",
			args: []string{"convert", program},
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.JSONEq(t, shiftScript, out)
				assert.Contains(t, out, "\n  \"type\": \"Script\"")
			},
		},
		{
			name: "shift to estree",
			args: []string{"convert", "-f", config.FormatCompact, script},
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.JSONEq(t, estreeProgram, out)
				assert.Equal(t, 1, strings.Count(out, "\n"))
			},
		},
		{
			name: "yaml",
			args: []string{"convert", "--format", config.FormatYAML, program},
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.True(t, strings.HasPrefix(out, "type: Script\n"))
			},
		},
		{
			name:  "stdin",
			stdin: estreeProgram,
			args:  []string{"convert", "--from", "estree", "-"},
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.JSONEq(t, shiftScript, out)
			},
		},
		{
			name:  "stdin by default",
			stdin: shiftScript,
			args:  []string{"convert"},
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.JSONEq(t, estreeProgram, out)
			},
		},
		{
			name: "yaml batch to stdout",
			args: []string{"convert", "-f", config.FormatYAML, "-w", "2", program, script},
			check: func(t *testing.T, out string) {
				t.Helper()
				parts := strings.Split(out, yamlSeparator)
				require.Len(t, parts, 2)
				assert.True(t, strings.HasPrefix(parts[0], "type: Script\n"))
				assert.True(t, strings.HasPrefix(parts[1], "type: Program\n"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			tt.check(t, out)
		})
	}
}

func TestConvertBatchToDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := writeFile(t, dir, "program.json", estreeProgram)
	script := writeFile(t, dir, "script.json", shiftScript)
	outDir := filepath.Join(dir, "out")

	out, err := execute(t, "", "convert", "-o", outDir, program, script)
	require.NoError(t, err)
	assert.Empty(t, out)

	converted, err := os.ReadFile(filepath.Join(outDir, "program.json"))
	require.NoError(t, err)
	assert.JSONEq(t, shiftScript, string(converted))

	converted, err = os.ReadFile(filepath.Join(outDir, "script.json"))
	require.NoError(t, err)
	assert.JSONEq(t, estreeProgram, string(converted))
}

func TestConvertBatchRejectsOutputCollision(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0o755))

	first := writeFile(t, filepath.Join(dir, "a"), "x.json", estreeProgram)
	second := writeFile(t, filepath.Join(dir, "b"), "x.json", shiftScript)
	outDir := filepath.Join(dir, "out")

	_, err := execute(t, "", "convert", "-f", config.FormatCompact, "-o", outDir, first, second)
	require.ErrorIs(t, err, ErrOutputCollision)
	assert.Contains(t, err.Error(), "x.json")

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr), "nothing is written when names collide")

	third := writeFile(t, filepath.Join(dir, "a"), "x.yaml", estreeProgram)

	_, err = execute(t, "", "convert", "-o", outDir, first, third)
	require.ErrorIs(t, err, ErrOutputCollision)
}

func TestConvertSingleOutputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := writeFile(t, dir, "program.json", estreeProgram)
	target := filepath.Join(dir, "script.yaml")

	_, err := execute(t, "", "convert", "-f", config.FormatYAML, "-o", target, program)
	require.NoError(t, err)

	converted, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(converted), "type: Script\n"))
}

func TestConvertErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := writeFile(t, dir, "program.json", estreeProgram)
	unknown := writeFile(t, dir, "unknown.json", unknownProgram)

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "stdin in batch", args: []string{"convert", program, "-"}, wantErr: ErrStdinInBatch},
		{name: "directory input", args: []string{"convert", dir}, wantErr: ErrDirectoryPath},
		{name: "bad format", args: []string{"convert", "-f", "xml", program}, wantErr: config.ErrInvalidFormat},
		{name: "bad workers", args: []string{"convert", "-w", "0", program}, wantErr: config.ErrInvalidWorkers},
		{name: "bad taxonomy", args: []string{"convert", "--from", "babel", program}, wantMsg: "babel"},
		{name: "unrecognized kind", args: []string{"convert", unknown}, wantMsg: "Frobnicate"},
		{name: "missing file", args: []string{"convert", filepath.Join(dir, "missing.json")}, wantMsg: "missing.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, "", tt.args...)
			require.Error(t, err)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}

			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestConvertUsesConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := writeFile(t, dir, "program.json", estreeProgram)
	cfg := writeFile(t, dir, "astbridge.yaml", "output:\n  format: yaml\n")

	out, err := execute(t, "", "--config", cfg, "convert", program)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "type: Script\n"))

	out, err = execute(t, "", "--config", cfg, "convert", "-f", config.FormatCompact, program)
	require.NoError(t, err)
	assert.JSONEq(t, shiftScript, out)
}

func TestMetricsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := writeFile(t, dir, "program.json", estreeProgram)
	metrics := filepath.Join(dir, "astbridge.prom")
	cfg := writeFile(t, dir, "astbridge.yaml", "telemetry:\n  metrics_file: "+metrics+"\n")

	_, err := execute(t, "", "--config", cfg, "convert", program)
	require.NoError(t, err)

	text, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(text), "astbridge_conversions_total")
	assert.Contains(t, string(text), `direction="estree->shift"`)
}

func TestRoundTripCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := writeFile(t, dir, "program.json", estreeProgram)
	lossy := writeFile(t, dir, "lossy.json", lossyProgram)

	out, err := execute(t, "", "roundtrip", program)
	require.NoError(t, err)
	assert.Contains(t, out, "Round trip OK (estree -> shift -> estree)")

	out, err = execute(t, shiftScript, "roundtrip", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "(shift -> estree -> shift): stdin")

	out, err = execute(t, "", "roundtrip", lossy)
	require.ErrorIs(t, err, ErrRoundTripMismatch)
	assert.Contains(t, out, "Round trip changed the document")
	assert.Regexp(t, `(?m)^- +"type": "Identifier",$`, out)
	assert.Regexp(t, `(?m)^\+ +"type": "Literal",$`, out)
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := writeFile(t, dir, "program.json", estreeProgram)
	unknown := writeFile(t, dir, "unknown.json", unknownProgram)

	out, err := execute(t, "", "validate", program)
	require.NoError(t, err)
	assert.Contains(t, out, "estree document is valid")
	assert.Contains(t, out, "Nodes: 5")

	out, err = execute(t, "", "validate", unknown)
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, out, "Unknown node kinds:")
	assert.Contains(t, out, "- Frobnicate")

	out, err = execute(t, "", "--quiet", "validate", program)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestKindsCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "TAXONOMY")
	assert.Contains(t, out, "SwitchStatementWithDefault")
	assert.Contains(t, out, "ClassBody")
	assert.Contains(t, out, ruleByParent)
	assert.Contains(t, strings.ToUpper(out), "TOTAL:")

	out, err = execute(t, "", "kinds", "--from", "shift")
	require.NoError(t, err)
	assert.Contains(t, out, "FormalParameters")
	assert.NotContains(t, out, "TemplateLiteral")
}

func TestStatsCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := writeFile(t, dir, "program.json", estreeProgram)

	out, err := execute(t, "", "stats", program)
	require.NoError(t, err)
	assert.Contains(t, out, "Nodes: 5")
	assert.Contains(t, out, "Depth: 4")
	assert.Contains(t, out, "Literal")
	assert.Contains(t, out, "40.0%")

	out, err = execute(t, "", "stats", "--top", "1", program)
	require.NoError(t, err)
	assert.Contains(t, out, "Literal")
	assert.NotContains(t, out, "Program ")
}

func TestCookCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "cook", `a\tb`)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\n", out)

	out, err = execute(t, "", "cook", "--quote", `A\x42`)
	require.NoError(t, err)
	assert.Equal(t, "\"AB\"\n", out)

	out, err = execute(t, `x\ny`, "cook", "-")
	require.NoError(t, err)
	assert.Equal(t, "x\ny\n", out)
}

func TestSchemaCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "schema", "shift")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "shift tree document"`)
	assert.Contains(t, out, `"SwitchStatementWithDefault": {`)

	out, err = execute(t, "", "schema", "--root", "estree")
	require.NoError(t, err)
	assert.NotContains(t, out, `"definitions"`)

	_, err = execute(t, "", "schema", "")
	require.ErrorIs(t, err, bridge.ErrUnknownTaxonomy)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "astbridge "))
}

func TestCompletionCommand(t *testing.T) {
	t.Parallel()

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, "", "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "astbridge")
		})
	}

	_, err := execute(t, "", "completion", "tcsh")
	require.ErrorIs(t, err, ErrUnsupportedShell)
}
