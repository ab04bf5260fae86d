package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaskit/assembly"
	"github.com/erraggy/oaskit/codec"
	"github.com/erraggy/oaskit/internal/testutil"
	"github.com/erraggy/oaskit/oaserrors"
)

// captureOutput redirects the command streams for one test.
func captureOutput(t *testing.T, stdin string) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	oldIn, oldOut, oldErr := Stdin, Stdout, Stderr
	Stdin, Stdout, Stderr = strings.NewReader(stdin), stdout, stderr
	t.Cleanup(func() { Stdin, Stdout, Stderr = oldIn, oldOut, oldErr })
	return stdout, stderr
}

const staticYAML = `openapi: 3.1.0
info:
  title: Static
  version: "2.0"
paths:
  /x:
    get:
      operationId: getX
      responses:
        "200":
          description: ok
components:
  schemas:
    Orphan:
      type: string
`

const standardJSON = `{
  "openapi": "3.1.0",
  "info": {"title": "Standard", "version": "1.0"},
  "paths": {"/x": {"post": {"operationId": "postX", "responses": {"201": {"description": "created"}}}}}
}`

func readOutput(t *testing.T, path string) *codec.Result {
	t.Helper()
	r, err := codec.NewReader()
	require.NoError(t, err)
	res, err := r.ReadFile(path)
	require.NoError(t, err)
	return res
}

func TestHandleAssemble(t *testing.T) {
	captureOutput(t, "")
	primary := testutil.WriteTempFile(t, "openapi.yaml", staticYAML)
	standard := testutil.WriteTempFile(t, "openapi.json", standardJSON)
	out := filepath.Join(t.TempDir(), "api.json")

	err := HandleAssemble([]string{
		"-static", primary, "-static", standard,
		"-remove-unused", "-server", "https://api.example.com",
		"-format", "json", "-o", out,
	})
	require.NoError(t, err)

	res := readOutput(t, out)
	assert.Equal(t, codec.FormatJSON, res.Format)
	doc := res.Document
	assert.Equal(t, "Static", doc.Info.Title)
	assert.NotNil(t, doc.Paths.Get("/x").Get)
	assert.NotNil(t, doc.Paths.Get("/x").Post)
	assert.Nil(t, doc.Components, "the only component was unused")
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://api.example.com", doc.Servers[0].URL)
}

func TestHandleAssemble_Config(t *testing.T) {
	stdout, _ := captureOutput(t, "")
	reader := testutil.WriteTempFile(t, "reader.yaml", staticYAML)

	cfg := assembly.DefaultConfig()
	cfg.OpenAPIVersion = "3.0.3"
	cfg.Info.Title = "From Config"
	cfg.RemoveUnusedComponents = true
	cfg.OperationServers = map[string][]string{"getX": {"https://x.example.com"}}
	cfgPath := testutil.WriteTempYAML(t, cfg)

	require.NoError(t, HandleAssemble([]string{"-config", cfgPath, "-reader", reader, "-title", "From Flag"}))

	doc, err := codec.Unmarshal(stdout.Bytes(), codec.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "From Flag", doc.Info.Title, "flags override the config file")
	assert.Equal(t, "https://x.example.com", doc.Paths.Get("/x").Get.Servers[0].URL)
	assert.Nil(t, doc.Components)
}

func TestHandleAssemble_Errors(t *testing.T) {
	captureOutput(t, "")

	unknown := testutil.WriteTempFile(t, "config.yaml", "colour: blue\n")
	err := HandleAssemble([]string{"-config", unknown})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file")

	big := testutil.WriteTempFile(t, "big.yaml", staticYAML)
	err = HandleAssemble([]string{"-static", big, "-max-size", "32"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "big.yaml")

	dup := testutil.WriteTempFile(t, "dup.yaml", strings.Replace(standardJSON, "postX", "getX", 1))
	err = HandleAssemble([]string{"-static", big, "-static", dup, "-fail-on-duplicate-ids"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operationId")

	assert.Error(t, HandleAssemble([]string{"-format", "xml"}))
	assert.Error(t, HandleAssemble([]string{"extra"}))
	assert.NoError(t, HandleAssemble([]string{"-h"}))
}

func TestHandleConvert(t *testing.T) {
	stdout, stderr := captureOutput(t, `openapi: 3.1.0
info: {title: T, version: "1"}
paths: {}
components:
  schemas:
    Name:
      type: [string, "null"]
      const: rex
      if: {type: string}
`)
	require.NoError(t, HandleConvert([]string{"-to", "3.0", "-stdin"}))

	doc, err := codec.Unmarshal(stdout.Bytes(), codec.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Contains(t, stdout.String(), "nullable: true")
	assert.Contains(t, stderr.String(), "if", "dropped keywords are reported")
}

func TestHandleConvert_Strict(t *testing.T) {
	stdout, stderr := captureOutput(t, `openapi: 3.1.0
info: {title: T, summary: short, version: "1"}
paths: {}
`)
	err := HandleConvert([]string{"-to", "3.0", "-strict", "-stdin"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConversion))
	assert.Empty(t, stdout.String(), "nothing is written")
	assert.Contains(t, stderr.String(), "/info/summary")
}

func TestHandleConvert_FileAndVersion(t *testing.T) {
	captureOutput(t, "")
	in := testutil.WriteTempFile(t, "openapi.json", `{"openapi": "3.0.3", "info": {"title": "T", "version": "1"}, "paths": {}}`)
	out := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, HandleConvert([]string{"-to", "3.1.1", "-o", out, in}))
	res := readOutput(t, out)
	assert.Equal(t, codec.FormatJSON, res.Format, "output keeps the input format")
	assert.Equal(t, "3.1.1", res.Version)
}

func TestHandleConvert_Errors(t *testing.T) {
	captureOutput(t, "")
	in := testutil.WriteTempFile(t, "openapi.yaml", staticYAML)

	assert.Error(t, HandleConvert([]string{in}), "missing -to")
	assert.Error(t, HandleConvert([]string{"-to", "2.0", in}))
	assert.Error(t, HandleConvert([]string{"-to", "3.0"}), "no input")
	assert.Error(t, HandleConvert([]string{"-to", "3.0", "-stdin", in}), "two inputs")
	assert.NoError(t, HandleConvert([]string{"-help"}))
}

func TestHandlePrune(t *testing.T) {
	stdout, stderr := captureOutput(t, "")
	in := testutil.WriteTempFile(t, "openapi.yaml", staticYAML+`  parameters:
    Unused:
      name: u
      in: query
`)

	require.NoError(t, HandlePrune([]string{"-categories", "parameters", in}))
	assert.Contains(t, stderr.String(), "removed #/components/parameters/Unused")
	assert.Contains(t, stderr.String(), "1 component(s) removed")

	doc, err := codec.Unmarshal(stdout.Bytes(), codec.FormatYAML)
	require.NoError(t, err)
	assert.True(t, doc.Components.Schemas.Has("Orphan"))
	assert.Nil(t, doc.Components.Parameters)

	assert.Error(t, HandlePrune([]string{"-categories", "widgets", in}))
}

func TestHandleValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		stdout, _ := captureOutput(t, "")
		in := testutil.WriteTempFile(t, "openapi.yaml", staticYAML)
		require.NoError(t, HandleValidate([]string{in}))
		assert.Contains(t, stdout.String(), "OAS Version: 3.1.0")
		assert.Contains(t, stdout.String(), "Validation passed")
	})

	t.Run("invalid from stdin", func(t *testing.T) {
		stdout, _ := captureOutput(t, "openapi: 3.0.3\ninfo: {title: T}\npaths: {}\n")
		err := HandleValidate([]string{"-stdin"})
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, stdout.String(), "<stdin>")
		assert.Contains(t, stdout.String(), "/info")
		assert.Contains(t, stdout.String(), "Validation failed: 1 error(s)")
	})

	t.Run("quiet", func(t *testing.T) {
		stdout, _ := captureOutput(t, "")
		in := testutil.WriteTempFile(t, "openapi.yaml", staticYAML)
		require.NoError(t, HandleValidate([]string{"-q", in}))
		assert.NotContains(t, stdout.String(), "OAS Version")
	})

	t.Run("unreadable", func(t *testing.T) {
		captureOutput(t, "")
		err := HandleValidate([]string{filepath.Join(t.TempDir(), "missing.yaml")})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalid)
	})
}

func TestInputPath(t *testing.T) {
	p, err := inputPath([]string{"a.yaml"}, false)
	require.NoError(t, err)
	assert.Equal(t, "a.yaml", p)

	p, err = inputPath(nil, true)
	require.NoError(t, err)
	assert.Equal(t, StdinFilePath, p)

	_, err = inputPath([]string{"a.yaml", "b.yaml"}, false)
	assert.Error(t, err)
	_, err = inputPath(nil, false)
	assert.ErrorContains(t, err, "-stdin")
	_, err = inputPath([]string{"a.yaml"}, true)
	assert.ErrorContains(t, err, "not both")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%d component(s) removed\n", 2)
	assert.Equal(t, "2 component(s) removed\n", buf.String())

	assert.NotPanics(t, func() { Writef(failingWriter{}, "lost") })
}

func TestOutputFormat(t *testing.T) {
	assert.Equal(t, codec.FormatJSON, outputFormat("json", codec.FormatYAML))
	assert.Equal(t, codec.FormatJSON, outputFormat("", codec.FormatJSON))
	assert.Equal(t, codec.FormatYAML, outputFormat("", codec.FormatUnknown))
}

func TestWriteDocument_RejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.yaml")
	link := filepath.Join(dir, "link.yaml")
	require.NoError(t, os.WriteFile(target, nil, 0o600))
	require.NoError(t, os.Symlink(target, link))

	err := writeDocument(testutil.NewSimpleDocument(), link, codec.FormatYAML, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symlink")
}

func TestWriteDocument_FileMode(t *testing.T) {
	out := filepath.Join(t.TempDir(), "api.json")
	require.NoError(t, writeDocument(testutil.NewSimpleDocument(), out, codec.FormatJSON, &bytes.Buffer{}))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, outputFileMode, info.Mode().Perm())
}
