package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--color", "off"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommand_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.toml")
	doc := "[layout]\nshape = [4, 2]\nstrides = [2, 1]\n\n[[step]]\nop = \"split\"\naxis = 0\nparts = [1, 3]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := execute(t, "run", "--format", "json", path)
	require.NoError(t, err)

	var payload []summaryPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload, 2)
	assert.Equal(t, []int{1, 2}, payload[0].Shape)
	assert.Equal(t, []int{3, 2}, payload[1].Shape)
	assert.Equal(t, 2, payload[1].Offset)
	assert.Equal(t, path, payload[1].Source)
}

func TestEncodeDecodeCommands(t *testing.T) {
	out, err := execute(t, "encode", "--shape", "2,3", "--contiguous", "little", "--element-size", "4")
	require.NoError(t, err)
	encoded := strings.TrimSpace(out)
	require.NotEmpty(t, encoded)

	out, err = execute(t, "decode", encoded)
	require.NoError(t, err)
	assert.Contains(t, out, "Layout{shape: [2 3], strides: [4 8], offset: 0}")
}

func TestDecodeCommand_BadHex(t *testing.T) {
	_, err := execute(t, "decode", "zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hex")
}

func TestParseEndian(t *testing.T) {
	for _, s := range []string{"big", "BE", " Big "} {
		e, err := parseEndian(s)
		require.NoError(t, err)
		assert.Equal(t, "BigEndian", e.String())
	}
	_, err := parseEndian("middle")
	require.Error(t, err)
}
