package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := runCommand(t, "parse", "public DateTime getCurrentDateTime()", "private void log(String value)")
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"accessModifier": "public", "returnType": "DateTime", "methodName": "getCurrentDateTime", "arguments": []},
		{"accessModifier": "private", "returnType": "void", "methodName": "log", "arguments": [{"type": "String", "name": "value"}]}
	]`, out)
}

func TestParseCommandYAML(t *testing.T) {
	out, err := runCommand(t, "parse", "--format", "yaml", "Vector3 distort(int x, float magnitude)")
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "distort", decoded[0]["methodName"])
	assert.Equal(t, "Vector3", decoded[0]["returnType"])
	assert.NotContains(t, decoded[0], "accessModifier")
}

func TestParseCommandFailures(t *testing.T) {
	out, err := runCommand(t, "parse", "void log(String)", "void run()")
	assert.EqualError(t, err, "1 of 2 signatures failed to parse")

	// Signatures that did parse are still written
	assert.JSONEq(t, `[{"returnType": "void", "methodName": "run", "arguments": []}]`, out)
}

func TestParseCommandStrict(t *testing.T) {
	_, err := runCommand(t, "parse", "run()")
	assert.NoError(t, err)

	_, err = runCommand(t, "parse", "--strict", "run()")
	assert.Error(t, err)
}

func TestUnknownFormat(t *testing.T) {
	_, err := runCommand(t, "parse", "--format", "xml", "void run()")
	assert.EqualError(t, err, `unknown output format "xml"`)
}

func TestScanCommand(t *testing.T) {
	out, err := runCommand(t, "scan", "scan/testfiles/Counter.java", "README.md")
	require.NoError(t, err)

	var decoded []struct {
		File    string `json:"file"`
		Methods []struct {
			Header string `json:"header"`
			Line   int    `json:"line"`
		} `json:"methods"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	// Non-java files are skipped
	require.Len(t, decoded, 1)
	assert.Equal(t, "scan/testfiles/Counter.java", decoded[0].File)
	require.Len(t, decoded[0].Methods, 5)
	assert.Equal(t, "public void increment()", decoded[0].Methods[0].Header)
	assert.Equal(t, 13, decoded[0].Methods[0].Line)
}

func TestScanCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, "scan", "scan/testfiles/Missing.java")
	assert.EqualError(t, err, "1 files failed to scan")
}
