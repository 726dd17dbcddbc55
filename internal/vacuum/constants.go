package vacuum

const (
	commandUseConstant                     = "branch-vacuum <repository>"
	commandShortDescriptionConstant        = "Interactively delete local branches missing from the remote"
	commandLongDescriptionConstant         = "branch-vacuum refreshes remote-tracking branches with pruning, lists local branches that have no counterpart on the remote (main and master are never offered), and asks whether to delete each one."
	safeFlagNameConstant                   = "safe"
	safeFlagDescriptionConstant            = "Refuse to delete branches that are not fully merged"
	remoteFlagNameConstant                 = "remote"
	remoteFlagDescriptionConstant          = "Remote whose branches count as published"
	fetchStartedMessageConstant            = "Fetching latest remote info..."
	fetchCompletedMessageConstant          = "Fetch complete."
	noCandidatesMessageConstant            = "No local-only branches found."
	deletionPromptTemplateConstant         = "Branch '%s' exists only locally. Delete? [y/N]: "
	answerGuidanceMessageConstant          = "Please answer with 'y' or 'n'."
	keepingBranchTemplateConstant          = "Keeping branch: %s"
	deletedBranchTemplateConstant          = "Deleted branch: %s"
	deletionFailedTemplateConstant         = "Could not delete branch '%s'. It may be checked out, or not fully merged when deleting safely."
	summaryTemplateConstant                = "Done: %d deleted, %d kept, %d failed."
	repositoryValidationTemplateConstant   = "%s is not a valid git repository"
	refreshFailedTemplateConstant          = "unable to fetch remote updates for %s: %w"
	listLocalBranchesFailedTemplate        = "unable to list local branches for %s: %w"
	listRemoteBranchesFailedTemplate       = "unable to list %s branches for %s: %w"
	promptFailedTemplateConstant           = "unable to read answer for branch %s: %w"
	resolveRepositoryPathFailedTemplate    = "invalid repository argument %q: %w"
	affirmativeAnswerConstant              = "y"
	negativeAnswerConstant                 = "n"
	lineTerminatorConstant                 = "\n"
	repositoryManagerMissingMessage        = "repository manager not configured"
	deletionPrompterMissingMessage         = "deletion prompter not configured"
	logMessageCandidatesComputedConstant   = "local-only branches computed"
	logMessageBranchDeletionFailedConstant = "branch deletion failed"
	logFieldRepositoryConstant             = "repository"
	logFieldRemoteConstant                 = "remote"
	logFieldBranchConstant                 = "branch"
	logFieldDeletionModeConstant           = "delete_mode"
	logFieldLocalCountConstant             = "local_branches"
	logFieldRemoteCountConstant            = "remote_branches"
	logFieldCandidateCountConstant         = "candidates"
)
