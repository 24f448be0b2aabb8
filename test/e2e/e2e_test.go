package e2e_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzleo/gojson"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmdArgs := append([]string{"run", "../../cmd/gojson"}, args...)
	cmd := exec.Command("go", cmdArgs...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func TestEndToEnd_SampleFile(t *testing.T) {
	sample := filepath.Join("..", "..", "testdata", "samples", "weather_station.json")

	stdout, stderr, err := runCLI(t, "", "-i", sample)
	require.NoError(t, err, "CLI failed: %s", stderr)

	v, err := gojson.ParseString(stdout)
	require.NoError(t, err, "CLI output must be valid JSON: %s", stdout)

	name, err := v.GetByKey("app_name")
	require.NoError(t, err)
	s, err := name.GetString()
	require.NoError(t, err)
	assert.Equal(t, "weather-station", s)
}

func TestEndToEnd_PipedInput(t *testing.T) {
	stdout, stderr, err := runCLI(t, `{"nested": {"list": [1, 2, 3]}}`, "-c")
	require.NoError(t, err, "CLI failed: %s", stderr)

	v, err := gojson.ParseString(stdout)
	require.NoError(t, err)
	nested, err := v.GetByKey("nested")
	require.NoError(t, err)
	list, err := nested.GetByKey("list")
	require.NoError(t, err)
	n, err := list.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestEndToEnd_ComplexNestedStructures(t *testing.T) {
	sample := filepath.Join("..", "..", "testdata", "samples", "complex.json")

	stdout, stderr, err := runCLI(t, "", "-i", sample)
	require.NoError(t, err, "CLI failed: %s", stderr)

	v, err := gojson.ParseString(stdout)
	require.NoError(t, err)

	users, err := v.GetByKey("users")
	require.NoError(t, err)
	elems, err := users.GetArray()
	require.NoError(t, err)
	require.Len(t, elems, 2)

	alice, err := elems[0].GetByKey("name")
	require.NoError(t, err)
	s, err := alice.GetString()
	require.NoError(t, err)
	assert.Equal(t, "Alice", s)
}

func TestEndToEnd_KeyCaseRewrite(t *testing.T) {
	stdout, stderr, err := runCLI(t, `{"firstName": "Ada"}`, "-c", "--key-case", "snake")
	require.NoError(t, err, "CLI failed: %s", stderr)

	v, err := gojson.ParseString(stdout)
	require.NoError(t, err)
	ok, err := v.Contains("first_name")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEndToEnd_OutputFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "gojson-e2e")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	outputFile := filepath.Join(tempDir, "out.json")
	sample := filepath.Join("..", "..", "testdata", "samples", "weather_station.json")

	_, stderr, err := runCLI(t, "", "-i", sample, "-o", outputFile)
	require.NoError(t, err, "CLI failed: %s", stderr)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	_, err = gojson.ParseString(string(data))
	assert.NoError(t, err)
}

func TestEndToEnd_InvalidInputFails(t *testing.T) {
	sample := filepath.Join("..", "..", "testdata", "samples", "invalid.json")

	_, stderr, err := runCLI(t, "", "-i", sample)
	require.Error(t, err, "CLI must exit non-zero on invalid JSON")
	assert.Contains(t, stderr, "JSON parsing error")
}

func TestEndToEnd_EmptyStdinFails(t *testing.T) {
	cmd := exec.Command("go", "run", "../../cmd/gojson")
	cmd.Stdin = strings.NewReader("")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "error")
}
