package vacuum_test

import (
	"context"
	"errors"
)

type deletionCall struct {
	repositoryPath string
	branchName     string
	force          bool
}

type repositoryManagerStub struct {
	workTreeError      error
	fetchError         error
	localBranches      []string
	localError         error
	remoteBranches     []string
	remoteError        error
	failingDeletions   map[string]bool
	checkedPaths       []string
	fetchedPaths       []string
	requestedRemotes   []string
	deletionCalls      []deletionCall
	listingInvocations int
}

func (stub *repositoryManagerStub) CheckWorkTree(_ context.Context, repositoryPath string) error {
	stub.checkedPaths = append(stub.checkedPaths, repositoryPath)
	return stub.workTreeError
}

func (stub *repositoryManagerStub) FetchPrune(_ context.Context, repositoryPath string) error {
	stub.fetchedPaths = append(stub.fetchedPaths, repositoryPath)
	return stub.fetchError
}

func (stub *repositoryManagerStub) ListLocalBranches(context.Context, string) ([]string, error) {
	stub.listingInvocations++
	return stub.localBranches, stub.localError
}

func (stub *repositoryManagerStub) ListRemoteBranches(_ context.Context, _ string, remoteName string) ([]string, error) {
	stub.listingInvocations++
	stub.requestedRemotes = append(stub.requestedRemotes, remoteName)
	return stub.remoteBranches, stub.remoteError
}

func (stub *repositoryManagerStub) DeleteBranch(_ context.Context, repositoryPath string, branchName string, force bool) error {
	stub.deletionCalls = append(stub.deletionCalls, deletionCall{repositoryPath: repositoryPath, branchName: branchName, force: force})
	if stub.failingDeletions[branchName] {
		return errors.New("error: cannot delete branch")
	}
	return nil
}
