// Package workflow runs one résumé mutation against a branch.
//
// A run walks a fixed sequence of states:
//
//	Idle -> BranchSwitched -> Loaded -> Mutated -> Summarized
//	     -> Committed | NoOpSkipped -> BranchRestored
//
// The target branch is checked out, the document is loaded from the store,
// the mutation runs on a copy, and its change summary becomes the commit
// message. An empty summary, or a save that leaves the file unchanged,
// skips the commit. Every run that switched branches ends on the main
// branch again, whether it succeeded or not.
//
// Nothing is saved before the branch switch succeeds, and a failure after
// the document was written resets the worktree to the last commit.
package workflow
