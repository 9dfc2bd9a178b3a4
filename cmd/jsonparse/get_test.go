package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-force/jsonparse"
)

func testNode(t *testing.T, doc, path string) *jsonparse.Node {
	t.Helper()
	node, err := jsonparse.Get(doc, path)
	require.NoError(t, err)
	return node
}

func TestRenderValue(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		path   string
		target string
		want   string
	}{
		{"RawScalar", `{"v": 42}`, "v", typeRaw, "42"},
		{"RawSubtree", `{"v": {"a": 1}}`, "v", typeRaw, `{"a":1}`},
		{"RawNull", `{"v": null}`, "v", typeRaw, "null"},
		{"String", `{"v": "hello"}`, "v", typeString, "hello"},
		{"StringFromNumber", `{"v": 2.5}`, "v", typeString, "2.5"},
		{"Bool", `{"v": true}`, "v", typeBool, "true"},
		{"Int", `{"v": 42}`, "v", typeInt, "42"},
		{"Long", `{"v": 9876543210}`, "v", typeLong, "9876543210"},
		{"Double", `{"v": 2.5}`, "v", typeDouble, "2.5"},
		{"Decimal", `{"v": "123.456"}`, "v", typeDecimal, "123.456"},
		{"DecimalNull", `{"v": null}`, "v", typeDecimal, "null"},
		{"Blob", `{"v": "aGVsbG8="}`, "v", typeBlob, "hello"},
		{"ID", `{"v": "001xx000003DGbV"}`, "v", typeID, "001xx000003DGbV"},
		{"UUID", `{"v": "F47AC10B-58CC-4372-A567-0E02B2C3D479"}`, "v", typeUUID, "f47ac10b-58cc-4372-a567-0e02b2c3d479"},
		{"Date", `{"v": "2024-03-15T23:00:00Z"}`, "v", typeDate, "2024-03-15"},
		{"Time", `{"v": "10:30:45"}`, "v", typeTime, "10:30:45"},
		{"Datetime", `{"v": "2024-03-15T10:30:00Z"}`, "v", typeDatetime, "2024-03-15T10:30:00Z"},
		{"DatetimeFromEpoch", `{"v": 1700000000000}`, "v", typeDatetime, "2023-11-14T22:13:20Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderValue(testNode(t, tt.doc, tt.path), tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("UnknownTarget", func(t *testing.T) {
		_, err := renderValue(testNode(t, `{"v": 1}`, "v"), "complex")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown coercion target")
	})

	t.Run("CoercionErrorsPropagate", func(t *testing.T) {
		_, err := renderValue(testNode(t, `{"v": "abc"}`, "v"), typeInt)
		require.ErrorIs(t, err, jsonparse.ErrCoercion)
	})
}

func TestDecodeDocument(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		node, err := decodeDocument([]byte(`{"a": [1, 2]}`), false)
		require.NoError(t, err)
		require.True(t, node.IsObject())
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := decodeDocument([]byte(`{broken`), false)
		require.ErrorIs(t, err, jsonparse.ErrInvalidJSON)
	})

	t.Run("YAML", func(t *testing.T) {
		doc := []byte("menu:\n  count: 2\n  items:\n    - value: New\n    - value: Open\n")

		node, err := decodeDocument(doc, true)
		require.NoError(t, err)

		value, err := node.Resolve("menu.items.[1].value")
		require.NoError(t, err)
		text, err := value.GetStringValue()
		require.NoError(t, err)
		assert.Equal(t, "Open", text)

		count, err := node.Resolve("menu.count")
		require.NoError(t, err)
		n, err := count.GetIntValue()
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		_, err := decodeDocument([]byte(":\n  - ]["), true)
		require.Error(t, err)
	})
}

func TestGetFromSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"user": {"name": "Alice"}}`), 0o600))

	t.Run("ResolvesAndCoerces", func(t *testing.T) {
		got, err := getFromSource(file, "user.name", typeString, false)
		require.NoError(t, err)
		assert.Equal(t, "Alice", got)
	})

	t.Run("EmptyPathMeansRoot", func(t *testing.T) {
		got, err := getFromSource(file, "", typeRaw, false)
		require.NoError(t, err)
		assert.Equal(t, `{"user":{"name":"Alice"}}`, got)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := getFromSource(filepath.Join(dir, "absent.json"), "", typeRaw, false)
		require.Error(t, err)
	})
}

func TestGetCmd_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "menu.json")
	doc := `{"menu": {"id": "file", "popup": {"menuitem": [{"value": "New"}, {"value": "Open"}]}}}`
	require.NoError(t, os.WriteFile(file, []byte(doc), 0o600))

	root := newTestRoot()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"get", "-p", "menu.popup.menuitem.[1].value", "-t", "string", file})

	require.NoError(t, root.Execute())
	assert.Equal(t, "Open\n", out.String())
}

func TestGetCmd_MultipleFilesKeepInputOrder(t *testing.T) {
	dir := t.TempDir()
	files := make([]string, 3)
	for i := range files {
		files[i] = filepath.Join(dir, fmt.Sprintf("doc%d.json", i))
		require.NoError(t, os.WriteFile(files[i], []byte(fmt.Sprintf(`{"n": %d}`, i)), 0o600))
	}

	root := newTestRoot()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"get", "-p", "n", "-t", "int", "-j", "2"}, files...))

	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("%s: %d", files[i], i), line)
	}
}

func TestGetCmd_ErrorsCarryFileContext(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"a": 1}`), 0o600))

	root := newTestRoot()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"get", "-p", "missing", file})

	err := root.Execute()
	require.ErrorIs(t, err, jsonparse.ErrKeyNotFound)
	assert.Contains(t, err.Error(), "doc.json")
}
