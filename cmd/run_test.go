package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"scratchbook.dev/pkg/scratchbook/internal/domain"
	m "scratchbook.dev/pkg/scratchbook/internal/model"
)

func TestRunCmd_DefaultCell(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd, _ := newTestRootCmd(newRunCmd())

	mockWorkflow.EXPECT().
		Run(mock.Anything, domain.RunArgs{Location: m.Path("demo.scratchbook"), Cell: domain.AutoCell}).
		Return(nil).
		Once()

	cmd.SetArgs([]string{"run", "demo.scratchbook"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_SelectsCell(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd, _ := newTestRootCmd(newRunCmd())

	mockWorkflow.EXPECT().
		Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
			return args.Cell == 3 && args.Location == m.Path("notes/demo.scratchbook")
		})).
		Return(nil).
		Once()

	cmd.SetArgs([]string{"run", "--cell", "3", "notes/demo.scratchbook"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_PropagatesCompileFailure(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd, _ := newTestRootCmd(newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).
		Return(errors.Join(domain.ErrCompileFailed, errors.New("exit code 1"))).
		Once()

	cmd.SetArgs([]string{"run", "-c", "1", "demo.scratchbook"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrCompileFailed)
}

func TestRunCmd_RequiresNotebook(t *testing.T) {
	withMockWorkflow(t)

	cmd, _ := newTestRootCmd(newRunCmd())

	cmd.SetArgs([]string{"run"})
	require.Error(t, cmd.Execute())
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run <notebook>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, runLongDescription, cmd.Long)

	cellFlag := cmd.Flags().Lookup(cellFlagName)
	require.NotNil(t, cellFlag)
	assert.Equal(t, "-1", cellFlag.DefValue)
	assert.Equal(t, "c", cellFlag.Shorthand)
}
