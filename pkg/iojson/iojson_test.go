package iojson

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, map[string]int{"a": 1}))
	require.NoError(t, WriteLine(&buf, map[string]int{"b": 2}))

	assert.Equal(t, "{\"a\":1}\n{\"b\":2}\n", buf.String())
}

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, map[string]int{"a": 1}))

	assert.Equal(t, "{\n  \"a\": 1\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, make(chan int)))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "json_error")
}

func TestMarshalError(t *testing.T) {
	var got Error
	require.NoError(t, json.Unmarshal([]byte(MarshalError("boom", map[string]any{"page": 2})), &got))
	assert.Equal(t, "boom", got.Message)
	assert.InDelta(t, 2, got.Data["page"], 0)

	var fallback map[string]any
	require.NoError(t, json.Unmarshal([]byte(MarshalError("bad", map[string]any{"ch": make(chan int)})), &fallback))
	assert.Equal(t, "bad", fallback["message"])
}
