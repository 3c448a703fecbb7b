package richdesc

import "errors"

// Sentinel errors for configuration operations. The render path itself
// is total and never returns an error; only the policy-loading and
// dialect-selection surfaces can fail, and only on first-party input.
var (
	ErrPolicyNotFound = errors.New("policy file not found")
	ErrPolicyParse    = errors.New("failed to parse policy")
	ErrEmptyPolicy    = errors.New("policy allows no tags")
	ErrInvalidDialect = errors.New("invalid dialect")
)
