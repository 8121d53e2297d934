package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentlint/agentlint/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOutputFile(t *testing.T, content string) string {
	t.Helper()
	f := filepath.Join(t.TempDir(), "output.md")
	require.NoError(t, os.WriteFile(f, []byte(content), 0644))
	return f
}

const shortOutput = "I think you should maybe use FastAPI. TODO: add more details here."

func TestValidateCommand_JSON(t *testing.T) {
	f := writeOutputFile(t, shortOutput)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", f, "--json", "--path", t.TempDir()})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), `"is_valid": false`)
	assert.Contains(t, buf.String(), `"failed_checks"`)
	assert.Contains(t, buf.String(), "Placeholder Detection")
}

func TestValidateCommand_Stdin(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetIn(bytes.NewBufferString(shortOutput))
	cmd.SetArgs([]string{"validate", "--json", "--path", t.TempDir()})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), `"is_valid": false`)
}

func TestValidateCommand_CIFailsOnCritical(t *testing.T) {
	f := writeOutputFile(t, shortOutput)

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", f, "--ci", "--path", t.TempDir()})
	assert.Error(t, cmd.Execute())
}

func TestValidateCommand_CIPassesCleanOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".agentlint.yaml"), []byte("min_output_length: 10\n"), 0644))
	f := writeOutputFile(t, "# Plan\n\nYou should do this. For example, here's how it works.")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", f, "--ci", "--path", dir})
	assert.NoError(t, cmd.Execute())
}

func TestValidateCommand_ProductionFlagAddsChecks(t *testing.T) {
	f := writeOutputFile(t, `password = "hunter2"`)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", f, "--json", "--production", "--path", t.TempDir()})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Security - Exposed Credentials")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", "/nonexistent/output.md", "--path", t.TempDir()})
	assert.Error(t, cmd.Execute())
}

func TestValidateCommand_SaveAndHistory(t *testing.T) {
	dir := t.TempDir()
	f := writeOutputFile(t, shortOutput)

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", f, "--save", "--path", dir})
	require.NoError(t, cmd.Execute())

	cmd = cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", "--history", "--path", dir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Report History")
	assert.Contains(t, buf.String(), "invalid")
}

func TestValidateCommand_DefaultRendersReport(t *testing.T) {
	f := writeOutputFile(t, shortOutput)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", f, "--path", t.TempDir()})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "agentlint")
	assert.Contains(t, buf.String(), "FAILED")
}
