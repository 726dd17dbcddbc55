package vacuum

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/vacuum/internal/ui"
)

// Options configures a single vacuum run.
type Options struct {
	RepositoryPath string
	RemoteName     string
	DeletionMode   DeletionMode
}

// Result summarizes the outcome of a run.
type Result struct {
	Candidates []string
	Deleted    []string
	Kept       []string
	Failed     []string
}

// RepositoryValidationError reports a path that git does not recognize as a working tree.
type RepositoryValidationError struct {
	RepositoryPath string
	Cause          error
}

// Error names the rejected path.
func (validationError RepositoryValidationError) Error() string {
	return fmt.Sprintf(repositoryValidationTemplateConstant, validationError.RepositoryPath)
}

// Unwrap exposes the underlying git failure.
func (validationError RepositoryValidationError) Unwrap() error {
	return validationError.Cause
}

// Dependencies enumerates collaborators required by Service.
type Dependencies struct {
	RepositoryManager RepositoryManager
	Prompter          DeletionPrompter
	StatusPrinter     *ui.StatusPrinter
	Logger            *zap.Logger
}

// Service orchestrates validation, refresh, candidate discovery, and the confirmation loop.
type Service struct {
	repositoryManager RepositoryManager
	prompter          DeletionPrompter
	deleter           *BranchDeleter
	printer           *ui.StatusPrinter
	logger            *zap.Logger
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	if dependencies.Prompter == nil {
		return nil, ErrDeletionPrompterNotConfigured
	}

	printer := dependencies.StatusPrinter
	if printer == nil {
		printer = ui.NewStatusPrinter(nil)
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		repositoryManager: dependencies.RepositoryManager,
		prompter:          dependencies.Prompter,
		deleter:           NewBranchDeleter(dependencies.RepositoryManager, printer, logger),
		printer:           printer,
		logger:            logger,
	}, nil
}

// Run executes the workflow against options.RepositoryPath.
// Validation and refresh failures are returned; deletion failures are reported and recorded in the result.
func (service *Service) Run(executionContext context.Context, options Options) (Result, error) {
	sanitizedOptions := options.sanitize()
	repositoryPath := sanitizedOptions.RepositoryPath

	if checkError := service.repositoryManager.CheckWorkTree(executionContext, repositoryPath); checkError != nil {
		return Result{}, RepositoryValidationError{RepositoryPath: repositoryPath, Cause: checkError}
	}

	service.printer.Info(fetchStartedMessageConstant)
	if fetchError := service.repositoryManager.FetchPrune(executionContext, repositoryPath); fetchError != nil {
		return Result{}, fmt.Errorf(refreshFailedTemplateConstant, repositoryPath, fetchError)
	}
	service.printer.Success(fetchCompletedMessageConstant)

	candidates, candidatesError := service.discoverCandidates(executionContext, repositoryPath, sanitizedOptions.RemoteName)
	if candidatesError != nil {
		return Result{}, candidatesError
	}

	result := Result{Candidates: candidates}
	if len(candidates) == 0 {
		service.printer.Success(noCandidatesMessageConstant)
		return result, nil
	}

	for _, branchName := range candidates {
		confirmed, promptError := service.prompter.ConfirmDeletion(branchName)
		if promptError != nil {
			return result, fmt.Errorf(promptFailedTemplateConstant, branchName, promptError)
		}

		if !confirmed {
			service.printer.Info(fmt.Sprintf(keepingBranchTemplateConstant, branchName))
			result.Kept = append(result.Kept, branchName)
			continue
		}

		if service.deleter.Delete(executionContext, repositoryPath, branchName, sanitizedOptions.DeletionMode) {
			result.Deleted = append(result.Deleted, branchName)
		} else {
			result.Failed = append(result.Failed, branchName)
		}
	}

	service.printer.Info(fmt.Sprintf(summaryTemplateConstant, len(result.Deleted), len(result.Kept), len(result.Failed)))
	return result, nil
}

func (service *Service) discoverCandidates(executionContext context.Context, repositoryPath string, remoteName string) ([]string, error) {
	localBranches, localError := service.repositoryManager.ListLocalBranches(executionContext, repositoryPath)
	if localError != nil {
		return nil, fmt.Errorf(listLocalBranchesFailedTemplate, repositoryPath, localError)
	}

	remoteBranches, remoteError := service.repositoryManager.ListRemoteBranches(executionContext, repositoryPath, remoteName)
	if remoteError != nil {
		return nil, fmt.Errorf(listRemoteBranchesFailedTemplate, remoteName, repositoryPath, remoteError)
	}

	candidates := ComputeLocalOnlyBranches(localBranches, remoteBranches)
	service.logger.Info(
		logMessageCandidatesComputedConstant,
		zap.String(logFieldRepositoryConstant, repositoryPath),
		zap.String(logFieldRemoteConstant, remoteName),
		zap.Int(logFieldLocalCountConstant, len(localBranches)),
		zap.Int(logFieldRemoteCountConstant, len(remoteBranches)),
		zap.Int(logFieldCandidateCountConstant, len(candidates)),
	)
	return candidates, nil
}

func (options Options) sanitize() Options {
	configuration := CommandConfiguration{RemoteName: options.RemoteName, DeleteMode: options.DeletionMode}.Sanitize()
	return Options{
		RepositoryPath: options.RepositoryPath,
		RemoteName:     configuration.RemoteName,
		DeletionMode:   configuration.DeleteMode,
	}
}
