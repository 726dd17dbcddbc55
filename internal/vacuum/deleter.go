package vacuum

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/vacuum/internal/ui"
)

// BranchDeleter removes branches one at a time and reports each outcome to the operator.
// A failed deletion is reported but never stops the caller.
type BranchDeleter struct {
	remover BranchRemover
	printer *ui.StatusPrinter
	logger  *zap.Logger
}

// NewBranchDeleter constructs a BranchDeleter.
func NewBranchDeleter(remover BranchRemover, printer *ui.StatusPrinter, logger *zap.Logger) *BranchDeleter {
	if printer == nil {
		printer = ui.NewStatusPrinter(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BranchDeleter{remover: remover, printer: printer, logger: logger}
}

// Delete removes branchName using the requested mode and reports whether it succeeded.
func (deleter *BranchDeleter) Delete(executionContext context.Context, repositoryPath string, branchName string, mode DeletionMode) bool {
	deletionError := deleter.remover.DeleteBranch(executionContext, repositoryPath, branchName, mode.IsForced())
	if deletionError != nil {
		deleter.logger.Debug(
			logMessageBranchDeletionFailedConstant,
			zap.String(logFieldRepositoryConstant, repositoryPath),
			zap.String(logFieldBranchConstant, branchName),
			zap.String(logFieldDeletionModeConstant, string(mode)),
			zap.Error(deletionError),
		)
		deleter.printer.Warning(fmt.Sprintf(deletionFailedTemplateConstant, branchName))
		return false
	}

	deleter.printer.Success(fmt.Sprintf(deletedBranchTemplateConstant, branchName))
	return true
}
