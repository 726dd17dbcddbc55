package vacuum

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/vacuum/internal/execshell"
	"github.com/temirov/vacuum/internal/gitrepo"
	"github.com/temirov/vacuum/internal/ui"
	pathutils "github.com/temirov/vacuum/internal/utils/path"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the branch-vacuum command.
type CommandBuilder struct {
	LoggerProvider         LoggerProvider
	ConfigurationProvider  func() CommandConfiguration
	CommandEventsObserver  func() execshell.CommandEventObserver
	GitExecutor            gitrepo.GitExecutor
	RepositoryManager      RepositoryManager
	RepositoryPathResolver *pathutils.RepositoryPathResolver
}

// Build constructs the branch-vacuum command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().Bool(safeFlagNameConstant, false, safeFlagDescriptionConstant)
	command.Flags().String(remoteFlagNameConstant, DefaultRemoteNameConstant, remoteFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()
	repositoryManager, managerError := builder.resolveRepositoryManager(command, logger)
	if managerError != nil {
		return managerError
	}

	printer := ui.NewStatusPrinter(command.OutOrStdout())
	service, serviceError := NewService(Dependencies{
		RepositoryManager: repositoryManager,
		Prompter:          NewIOBranchPrompter(command.InOrStdin(), printer),
		StatusPrinter:     printer,
		Logger:            logger,
	})
	if serviceError != nil {
		return serviceError
	}

	_, runError := service.Run(command.Context(), options)
	return runError
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (Options, error) {
	configuration := builder.resolveConfiguration()

	resolver := builder.RepositoryPathResolver
	if resolver == nil {
		resolver = pathutils.NewRepositoryPathResolver()
	}
	repositoryPath, resolveError := resolver.Resolve(arguments[0])
	if resolveError != nil {
		return Options{}, fmt.Errorf(resolveRepositoryPathFailedTemplate, arguments[0], resolveError)
	}

	remoteName := configuration.RemoteName
	if command.Flags().Changed(remoteFlagNameConstant) {
		flagValue, flagError := command.Flags().GetString(remoteFlagNameConstant)
		if flagError != nil {
			return Options{}, flagError
		}
		remoteName = flagValue
	}

	deletionMode := configuration.DeleteMode
	safeRequested, safeFlagError := command.Flags().GetBool(safeFlagNameConstant)
	if safeFlagError != nil {
		return Options{}, safeFlagError
	}
	if safeRequested {
		deletionMode = DeletionModeSafe
	}

	return Options{
		RepositoryPath: repositoryPath,
		RemoteName:     remoteName,
		DeletionMode:   deletionMode,
	}, nil
}

func (builder *CommandBuilder) resolveRepositoryManager(command *cobra.Command, logger *zap.Logger) (RepositoryManager, error) {
	if builder.RepositoryManager != nil {
		return builder.RepositoryManager, nil
	}

	gitExecutor := builder.GitExecutor
	if gitExecutor == nil {
		var observer execshell.CommandEventObserver
		if builder.CommandEventsObserver != nil {
			observer = builder.CommandEventsObserver()
		}
		shellExecutor, executorError := execshell.NewShellExecutorWithObserver(logger, execshell.NewOSCommandRunner(), observer)
		if executorError != nil {
			return nil, executorError
		}
		gitExecutor = shellExecutor
	}

	return gitrepo.NewRepositoryManager(gitrepo.ManagerDependencies{
		GitExecutor:  gitExecutor,
		OutputStream: command.OutOrStdout(),
		ErrorStream:  command.ErrOrStderr(),
	})
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
