package gitrepo_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/vacuum/internal/execshell"
	"github.com/temirov/vacuum/internal/gitrepo"
)

const (
	testRepositoryPathConstant = "/tmp/repository"
	testRemoteNameConstant     = "origin"
)

type recordingGitExecutor struct {
	standardOutputs  []string
	invocationErrors []error
	recordedCommands []execshell.CommandDetails
}

func (executor *recordingGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedCommands = append(executor.recordedCommands, details)

	var standardOutput string
	if len(executor.standardOutputs) > 0 {
		standardOutput = executor.standardOutputs[0]
		executor.standardOutputs = executor.standardOutputs[1:]
	}

	var invocationError error
	if len(executor.invocationErrors) > 0 {
		invocationError = executor.invocationErrors[0]
		executor.invocationErrors = executor.invocationErrors[1:]
	}
	if invocationError != nil {
		return execshell.ExecutionResult{}, invocationError
	}

	return execshell.ExecutionResult{StandardOutput: standardOutput}, nil
}

func newTestManager(testInstance *testing.T, executor gitrepo.GitExecutor) (*gitrepo.RepositoryManager, *bytes.Buffer, *bytes.Buffer) {
	testInstance.Helper()
	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}
	manager, creationError := gitrepo.NewRepositoryManager(gitrepo.ManagerDependencies{
		GitExecutor:  executor,
		OutputStream: outputBuffer,
		ErrorStream:  errorBuffer,
	})
	require.NoError(testInstance, creationError)
	return manager, outputBuffer, errorBuffer
}

func TestNewRepositoryManagerRequiresExecutor(testInstance *testing.T) {
	_, creationError := gitrepo.NewRepositoryManager(gitrepo.ManagerDependencies{})
	require.ErrorIs(testInstance, creationError, gitrepo.ErrGitExecutorNotConfigured)
}

func TestFilterRemoteBranches(testInstance *testing.T) {
	testCases := []struct {
		name             string
		remoteReferences []string
		remoteName       string
		expectedBranches []string
	}{
		{
			name:             "keeps_default_remote_only",
			remoteReferences: []string{"origin/main", " origin/feature/x ", "upstream/dev", "random/branch"},
			remoteName:       testRemoteNameConstant,
			expectedBranches: []string{"main", "feature/x"},
		},
		{
			name:             "strips_qualifier_once",
			remoteReferences: []string{"origin/origin/nested"},
			remoteName:       testRemoteNameConstant,
			expectedBranches: []string{"origin/nested"},
		},
		{
			name:             "drops_bare_remote_reference",
			remoteReferences: []string{"origin", "origin/", "originals/topic"},
			remoteName:       testRemoteNameConstant,
			expectedBranches: []string{},
		},
		{
			name:             "honors_alternate_remote",
			remoteReferences: []string{"origin/main", "upstream/dev"},
			remoteName:       "upstream",
			expectedBranches: []string{"dev"},
		},
		{
			name:             "empty_input",
			remoteReferences: nil,
			remoteName:       testRemoteNameConstant,
			expectedBranches: []string{},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			require.Equal(subTest, testCase.expectedBranches, gitrepo.FilterRemoteBranches(testCase.remoteReferences, testCase.remoteName))
		})
	}
}

func TestListLocalBranchesCapturesTrimmedLines(testInstance *testing.T) {
	executor := &recordingGitExecutor{standardOutputs: []string{"  feature/a\r\nmain\nbugfix/b\n\n"}}
	manager, _, _ := newTestManager(testInstance, executor)

	branches, listError := manager.ListLocalBranches(context.Background(), testRepositoryPathConstant)
	require.NoError(testInstance, listError)
	require.Equal(testInstance, []string{"feature/a", "main", "bugfix/b"}, branches)

	require.Len(testInstance, executor.recordedCommands, 1)
	require.Equal(testInstance, []string{"branch", "--format=%(refname:short)"}, executor.recordedCommands[0].Arguments)
	require.Equal(testInstance, testRepositoryPathConstant, executor.recordedCommands[0].WorkingDirectory)
	require.Nil(testInstance, executor.recordedCommands[0].OutputStream)
}

func TestCaptureLinesReturnsEmptyListForBlankOutput(testInstance *testing.T) {
	executor := &recordingGitExecutor{standardOutputs: []string{"  \n\t\n"}}
	manager, _, _ := newTestManager(testInstance, executor)

	lines, captureError := manager.CaptureLines(context.Background(), testRepositoryPathConstant, "branch")
	require.NoError(testInstance, captureError)
	require.Empty(testInstance, lines)
	require.NotNil(testInstance, lines)
}

func TestListRemoteBranchesFiltersByRemote(testInstance *testing.T) {
	executor := &recordingGitExecutor{standardOutputs: []string{"origin/HEAD\norigin/main\norigin/feature/x\nupstream/dev\n"}}
	manager, _, _ := newTestManager(testInstance, executor)

	branches, listError := manager.ListRemoteBranches(context.Background(), testRepositoryPathConstant, testRemoteNameConstant)
	require.NoError(testInstance, listError)
	require.Equal(testInstance, []string{"HEAD", "main", "feature/x"}, branches)
	require.Equal(testInstance, []string{"branch", "--remotes", "--format=%(refname:short)"}, executor.recordedCommands[0].Arguments)
}

func TestCaptureLinesPropagatesCommandFailure(testInstance *testing.T) {
	failure := execshell.CommandFailedError{
		Command: execshell.ShellCommand{Name: execshell.CommandGit, Details: execshell.CommandDetails{Arguments: []string{"branch"}}},
		Result:  execshell.ExecutionResult{ExitCode: 128, StandardError: "fatal: not a git repository"},
	}
	executor := &recordingGitExecutor{invocationErrors: []error{failure}}
	manager, _, _ := newTestManager(testInstance, executor)

	_, listError := manager.ListLocalBranches(context.Background(), testRepositoryPathConstant)
	var commandFailure execshell.CommandFailedError
	require.True(testInstance, errors.As(listError, &commandFailure))
	require.Equal(testInstance, 128, commandFailure.Result.ExitCode)
}

func TestCaptureLinesRequiresRepositoryPath(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	manager, _, _ := newTestManager(testInstance, executor)

	_, captureError := manager.CaptureLines(context.Background(), "  ", "branch")
	require.ErrorIs(testInstance, captureError, gitrepo.ErrRepositoryPathRequired)
	require.Empty(testInstance, executor.recordedCommands)
}

func TestCheckWorkTreeRunsRevParse(testInstance *testing.T) {
	executor := &recordingGitExecutor{standardOutputs: []string{"true\n"}}
	manager, _, _ := newTestManager(testInstance, executor)

	require.NoError(testInstance, manager.CheckWorkTree(context.Background(), testRepositoryPathConstant))
	require.Equal(testInstance, []string{"rev-parse", "--is-inside-work-tree"}, executor.recordedCommands[0].Arguments)
}

func TestFetchPruneStreamsOutputWithoutTerminalPrompt(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	manager, outputBuffer, errorBuffer := newTestManager(testInstance, executor)

	require.NoError(testInstance, manager.FetchPrune(context.Background(), testRepositoryPathConstant))

	require.Len(testInstance, executor.recordedCommands, 1)
	recordedCommand := executor.recordedCommands[0]
	require.Equal(testInstance, []string{"fetch", "--prune"}, recordedCommand.Arguments)
	require.Equal(testInstance, "0", recordedCommand.EnvironmentVariables["GIT_TERMINAL_PROMPT"])
	require.Same(testInstance, outputBuffer, recordedCommand.OutputStream)
	require.Same(testInstance, errorBuffer, recordedCommand.ErrorStream)
}

func TestRunStreamingPassesProcessStreamsThrough(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(gitrepo.ManagerDependencies{GitExecutor: executor})
	require.NoError(testInstance, creationError)

	require.NoError(testInstance, manager.FetchPrune(context.Background(), testRepositoryPathConstant))

	require.Len(testInstance, executor.recordedCommands, 1)
	require.Same(testInstance, os.Stdout, executor.recordedCommands[0].OutputStream)
	require.Same(testInstance, os.Stderr, executor.recordedCommands[0].ErrorStream)
}

func TestDeleteBranchSelectsMode(testInstance *testing.T) {
	testCases := []struct {
		name              string
		force             bool
		expectedArguments []string
	}{
		{
			name:              "safe",
			force:             false,
			expectedArguments: []string{"branch", "--delete", "feature/a"},
		},
		{
			name:              "forced",
			force:             true,
			expectedArguments: []string{"branch", "--delete", "--force", "feature/a"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			executor := &recordingGitExecutor{}
			manager, outputBuffer, _ := newTestManager(subTest, executor)

			require.NoError(subTest, manager.DeleteBranch(context.Background(), testRepositoryPathConstant, " feature/a ", testCase.force))
			require.Len(subTest, executor.recordedCommands, 1)
			require.Equal(subTest, testCase.expectedArguments, executor.recordedCommands[0].Arguments)
			require.Same(subTest, outputBuffer, executor.recordedCommands[0].OutputStream)
		})
	}
}

func TestDeleteBranchRequiresName(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	manager, _, _ := newTestManager(testInstance, executor)

	deleteError := manager.DeleteBranch(context.Background(), testRepositoryPathConstant, " ", true)
	require.ErrorIs(testInstance, deleteError, gitrepo.ErrBranchNameRequired)
	require.Empty(testInstance, executor.recordedCommands)
}
