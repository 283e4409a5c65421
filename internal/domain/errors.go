package domain

import "errors"

// Pipeline errors. ErrManPageNotFound and ErrNoCommandToExecute are
// informational: the caller prints a message and the process still exits
// successfully. ErrAPIRequestFailed and ErrInvalidJSONResponse are fatal for
// the invocation.
var (
	ErrNoCommand           = errors.New("no command provided")
	ErrManPageNotFound     = errors.New("no documentation found")
	ErrHelpCommandFailed   = errors.New("help command failed")
	ErrAPIRequestFailed    = errors.New("API request failed")
	ErrInvalidJSONResponse = errors.New("invalid JSON response")
	ErrNoCommandToExecute  = errors.New("no command to execute")
)

// Secret store errors. All of them are absorbed into "no credential
// available"; they exist so the caller can log why the lookup failed.
var (
	ErrKeyNotFound       = errors.New("credential not found")
	ErrAccessDenied      = errors.New("secret store access denied")
	ErrInvalidParameters = errors.New("invalid secret store parameters")
	ErrSecretUnknown     = errors.New("secret store lookup failed")
)
