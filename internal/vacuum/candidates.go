package vacuum

// ProtectedBranchNames returns the default branch names that are never offered for deletion.
func ProtectedBranchNames() []string {
	return []string{"main", "master"}
}

// ComputeLocalOnlyBranches returns local branches absent from remoteBranches,
// excluding protected names, in the order of localBranches.
func ComputeLocalOnlyBranches(localBranches []string, remoteBranches []string) []string {
	protectedBranches := ProtectedBranchNames()
	excluded := make(map[string]struct{}, len(remoteBranches)+len(protectedBranches))
	for _, remoteBranch := range remoteBranches {
		excluded[remoteBranch] = struct{}{}
	}
	for _, protectedBranch := range protectedBranches {
		excluded[protectedBranch] = struct{}{}
	}

	candidates := make([]string, 0, len(localBranches))
	for _, localBranch := range localBranches {
		if _, skip := excluded[localBranch]; skip {
			continue
		}
		candidates = append(candidates, localBranch)
	}
	return candidates
}
