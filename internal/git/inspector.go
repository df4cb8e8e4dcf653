package git

import "strings"

// Inspector provides methods for analyzing git command failures.
type Inspector interface {
	// IsNothingToCommit returns true if the error means the index held no
	// changes when commit ran.
	IsNothingToCommit(err error) bool

	// IsHookRejected returns true if a pre-commit or commit-msg hook
	// rejected the commit.
	IsHookRejected(err error) bool

	// IsIdentityUnset returns true if git refused to commit because
	// user.name or user.email is not configured.
	IsIdentityUnset(err error) bool

	// IsNonFastForward returns true if the remote rejected a push because
	// the local branch is behind.
	IsNonFastForward(err error) bool

	// IsAuthError returns true if the remote rejected the credentials.
	IsAuthError(err error) bool

	// IsNetworkError returns true if the error represents a network
	// connectivity problem.
	IsNetworkError(err error) bool
}

// CommandErrorInspector implements Inspector by matching against the text of
// git's error output.
type CommandErrorInspector struct{}

// NewInspector creates a new CommandErrorInspector.
func NewInspector() Inspector {
	return &CommandErrorInspector{}
}

// IsNothingToCommit checks for git's empty-index commit refusal.
func (i *CommandErrorInspector) IsNothingToCommit(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "nothing to commit") ||
		strings.Contains(errStr, "no changes added to commit") ||
		strings.Contains(errStr, "nothing added to commit")
}

// IsHookRejected checks whether a hook aborted the commit.
func (i *CommandErrorInspector) IsHookRejected(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "pre-commit hook") ||
		strings.Contains(errStr, "commit-msg hook") ||
		strings.Contains(errStr, "hook declined")
}

// IsIdentityUnset checks for git's unconfigured-identity refusal.
func (i *CommandErrorInspector) IsIdentityUnset(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "please tell me who you are") ||
		strings.Contains(errStr, "user.email") ||
		strings.Contains(errStr, "user.name")
}

// IsNonFastForward checks whether the remote rejected a stale push.
func (i *CommandErrorInspector) IsNonFastForward(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "non-fast-forward") ||
		strings.Contains(errStr, "fetch first") ||
		strings.Contains(errStr, "rejected") && strings.Contains(errStr, "behind")
}

// IsAuthError checks whether the remote rejected the credentials.
func (i *CommandErrorInspector) IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "authentication failed") ||
		strings.Contains(errStr, "permission denied") ||
		strings.Contains(errStr, "could not read username") ||
		strings.Contains(errStr, "403")
}

// IsNetworkError checks whether the error is a network connectivity error.
func (i *CommandErrorInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "could not resolve host") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection timed out") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "unable to access")
}
