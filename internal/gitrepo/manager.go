package gitrepo

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/temirov/vacuum/internal/execshell"
)

const (
	gitExecutorMissingMessageConstant           = "git executor not configured"
	repositoryPathRequiredMessageConstant       = "repository path must be provided"
	branchNameRequiredMessageConstant           = "branch name must be provided"
	gitRevParseSubcommandConstant               = "rev-parse"
	gitWorkTreeFlagConstant                     = "--is-inside-work-tree"
	gitFetchSubcommandConstant                  = "fetch"
	gitFetchPruneFlagConstant                   = "--prune"
	gitBranchSubcommandConstant                 = "branch"
	gitRemotesFlagConstant                      = "--remotes"
	gitShortRefnameFormatFlagConstant           = "--format=%(refname:short)"
	gitDeleteFlagConstant                       = "--delete"
	gitForceFlagConstant                        = "--force"
	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
	remoteQualifierSeparatorConstant            = "/"
	lineBreakConstant                           = "\n"
	carriageReturnConstant                      = "\r"
)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrRepositoryPathRequired indicates an operation was requested without a repository path.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrBranchNameRequired indicates a deletion was requested without a branch name.
var ErrBranchNameRequired = errors.New(branchNameRequiredMessageConstant)

// GitExecutor exposes the subset of shell execution used by the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ManagerDependencies enumerates collaborators required by RepositoryManager.
type ManagerDependencies struct {
	GitExecutor GitExecutor
	// OutputStream and ErrorStream receive git output in streaming mode.
	// They default to the process standard streams.
	OutputStream io.Writer
	ErrorStream  io.Writer
}

// RepositoryManager runs git operations scoped to a repository path.
type RepositoryManager struct {
	executor     GitExecutor
	outputStream io.Writer
	errorStream  io.Writer
}

// NewRepositoryManager constructs a RepositoryManager from the provided dependencies.
func NewRepositoryManager(dependencies ManagerDependencies) (*RepositoryManager, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}

	outputStream := dependencies.OutputStream
	if outputStream == nil {
		outputStream = os.Stdout
	}
	errorStream := dependencies.ErrorStream
	if errorStream == nil {
		errorStream = os.Stderr
	}

	return &RepositoryManager{
		executor:     dependencies.GitExecutor,
		outputStream: outputStream,
		errorStream:  errorStream,
	}, nil
}

// CaptureLines runs git in the repository and returns its standard output split into lines.
// The whole output is trimmed before splitting, so empty output yields no lines.
func (manager *RepositoryManager) CaptureLines(executionContext context.Context, repositoryPath string, arguments ...string) ([]string, error) {
	if len(strings.TrimSpace(repositoryPath)) == 0 {
		return nil, ErrRepositoryPathRequired
	}

	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return nil, executionError
	}

	return splitOutputLines(executionResult.StandardOutput), nil
}

// RunStreaming runs git in the repository with its output passed through to the configured streams.
func (manager *RepositoryManager) RunStreaming(executionContext context.Context, repositoryPath string, environment map[string]string, arguments ...string) error {
	if len(strings.TrimSpace(repositoryPath)) == 0 {
		return ErrRepositoryPathRequired
	}

	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            arguments,
		WorkingDirectory:     repositoryPath,
		EnvironmentVariables: environment,
		OutputStream:         manager.outputStream,
		ErrorStream:          manager.errorStream,
	})
	return executionError
}

// CheckWorkTree confirms git recognizes the path as a working tree.
func (manager *RepositoryManager) CheckWorkTree(executionContext context.Context, repositoryPath string) error {
	_, checkError := manager.CaptureLines(executionContext, repositoryPath, gitRevParseSubcommandConstant, gitWorkTreeFlagConstant)
	return checkError
}

// FetchPrune refreshes remote-tracking references and prunes the ones removed upstream.
func (manager *RepositoryManager) FetchPrune(executionContext context.Context, repositoryPath string) error {
	environment := map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableConstant}
	return manager.RunStreaming(executionContext, repositoryPath, environment, gitFetchSubcommandConstant, gitFetchPruneFlagConstant)
}

// ListLocalBranches returns the short names of all local branches in git's order.
func (manager *RepositoryManager) ListLocalBranches(executionContext context.Context, repositoryPath string) ([]string, error) {
	return manager.CaptureLines(executionContext, repositoryPath, gitBranchSubcommandConstant, gitShortRefnameFormatFlagConstant)
}

// ListRemoteBranches returns the branch names tracked under remoteName with the remote qualifier removed.
func (manager *RepositoryManager) ListRemoteBranches(executionContext context.Context, repositoryPath string, remoteName string) ([]string, error) {
	remoteReferences, listError := manager.CaptureLines(executionContext, repositoryPath, gitBranchSubcommandConstant, gitRemotesFlagConstant, gitShortRefnameFormatFlagConstant)
	if listError != nil {
		return nil, listError
	}
	return FilterRemoteBranches(remoteReferences, remoteName), nil
}

// DeleteBranch removes a local branch. Safe deletion refuses unmerged branches; forced deletion does not.
func (manager *RepositoryManager) DeleteBranch(executionContext context.Context, repositoryPath string, branchName string, force bool) error {
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) == 0 {
		return ErrBranchNameRequired
	}

	arguments := []string{gitBranchSubcommandConstant, gitDeleteFlagConstant}
	if force {
		arguments = append(arguments, gitForceFlagConstant)
	}
	arguments = append(arguments, trimmedBranchName)

	return manager.RunStreaming(executionContext, repositoryPath, nil, arguments...)
}

// FilterRemoteBranches keeps references under remoteName, strips the "<remote>/" qualifier once,
// and trims each retained name. References under other remotes are dropped.
func FilterRemoteBranches(remoteReferences []string, remoteName string) []string {
	qualifierPrefix := strings.TrimSpace(remoteName) + remoteQualifierSeparatorConstant
	branchNames := make([]string, 0, len(remoteReferences))
	for _, remoteReference := range remoteReferences {
		trimmedReference := strings.TrimSpace(remoteReference)
		if !strings.HasPrefix(trimmedReference, qualifierPrefix) {
			continue
		}
		branchName := strings.TrimSpace(strings.TrimPrefix(trimmedReference, qualifierPrefix))
		if len(branchName) == 0 {
			continue
		}
		branchNames = append(branchNames, branchName)
	}
	return branchNames
}

func splitOutputLines(output string) []string {
	trimmedOutput := strings.TrimSpace(output)
	if len(trimmedOutput) == 0 {
		return []string{}
	}
	rawLines := strings.Split(trimmedOutput, lineBreakConstant)
	lines := make([]string, 0, len(rawLines))
	for _, rawLine := range rawLines {
		lines = append(lines, strings.TrimSuffix(rawLine, carriageReturnConstant))
	}
	return lines
}
