package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewFormatter(FormatJSON)

	err := f.Format(buf, map[string]string{"id": "genomes"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"id": "genomes"`)
}

func TestYAMLFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewFormatter(FormatYAML)

	err := f.Format(buf, map[string]string{"id": "genomes"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "id: genomes")
}

func TestTableFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewFormatter(FormatTable)

	err := f.Format(buf, Data{
		Headers: []string{"ID", "Name"},
		Rows: [][]string{
			{"genomes", "Genomes"},
			{"media", "Media"},
		},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "genomes")
	assert.Contains(t, out, "Media")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewFormatter(FormatTable)

	err := f.Format(buf, map[string]int{"count": 3})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"count": 3`)
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "Display Name", Header("display_name"))
	assert.Equal(t, "Ws", Header("ws"))
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "yaml", "JSON", ""} {
		_, err := ParseFormat(valid)
		assert.NoError(t, err, valid)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "xml"))
}
