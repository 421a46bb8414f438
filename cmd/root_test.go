package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"scratchbook.dev/pkg/scratchbook/internal/adapter"
	domainmocks "scratchbook.dev/pkg/scratchbook/internal/domain/mocks"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

// withMockWorkflow installs a mock workflow for the duration of the test.
func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func newTestRootCmd(sub ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	cmd := newRootCmd()
	cmd.AddCommand(sub...)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "scratchbook", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{outputFlagName, verboseFlagName, logFileFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	withMockWorkflow(t)

	cmd, out := newTestRootCmd()
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "extension.ts")
}

func TestWireWorkflow(t *testing.T) {
	originalWorkflow, originalHistory := workflow, historyStore
	t.Cleanup(func() {
		workflow, historyStore = originalWorkflow, originalHistory
		viper.Set(outputFormatKey, nil)
	})

	workflow, historyStore = nil, nil
	viper.Set(outputFormatKey, "json")

	require.NoError(t, wireWorkflow(&cobra.Command{}))
	assert.NotNil(t, workflow)
	assert.NotNil(t, historyStore)
}

func TestWireWorkflow_RejectsUnknownFormat(t *testing.T) {
	originalWorkflow := workflow
	t.Cleanup(func() {
		workflow = originalWorkflow
		viper.Set(outputFormatKey, nil)
	})

	workflow = nil
	viper.Set(outputFormatKey, "xml")

	require.Error(t, wireWorkflow(&cobra.Command{}))
	assert.Nil(t, workflow)
}

func TestNewWorkspaceAdapter(t *testing.T) {
	t.Cleanup(func() { viper.Set(workspaceRootKey, nil) })

	dir := t.TempDir()
	viper.Set(workspaceRootKey, dir)

	workspace := newWorkspaceAdapter()
	require.IsType(t, &adapter.FixedWorkspaceAdapter{}, workspace)

	root, ok := workspace.ResolveRoot(context.Background(), "/anywhere/demo.scratchbook")
	assert.True(t, ok)
	assert.Equal(t, m.Path(dir), root)

	viper.Set(workspaceRootKey, "")
	assert.IsType(t, &adapter.MarkerWorkspaceAdapter{}, newWorkspaceAdapter())
}

func TestNotebookPath(t *testing.T) {
	assert.Equal(t, m.Path("demo.scratchbook"), notebookPath([]string{"demo.scratchbook", "extra"}))
}
