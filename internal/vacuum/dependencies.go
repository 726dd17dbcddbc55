package vacuum

import (
	"context"
	"errors"
)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessage)

// ErrDeletionPrompterNotConfigured indicates the prompter dependency was missing.
var ErrDeletionPrompterNotConfigured = errors.New(deletionPrompterMissingMessage)

// BranchRemover deletes a single local branch.
type BranchRemover interface {
	DeleteBranch(executionContext context.Context, repositoryPath string, branchName string, force bool) error
}

// RepositoryManager exposes the repository-level git operations used by the vacuum workflow.
type RepositoryManager interface {
	BranchRemover
	CheckWorkTree(executionContext context.Context, repositoryPath string) error
	FetchPrune(executionContext context.Context, repositoryPath string) error
	ListLocalBranches(executionContext context.Context, repositoryPath string) ([]string, error)
	ListRemoteBranches(executionContext context.Context, repositoryPath string, remoteName string) ([]string, error)
}

// DeletionPrompter asks the operator whether a branch should be deleted.
type DeletionPrompter interface {
	ConfirmDeletion(branchName string) (bool, error)
}
