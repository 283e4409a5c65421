// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The application depends on these
// abstractions, not on subprocess plumbing, HTTP clients, or the keychain.
package ports

import (
	"context"

	"github.com/doeshing/localhelp/internal/domain"
)

// DocResolver retrieves human-readable documentation for a command, trying
// the manual page first and a fixed sequence of help-flag invocations after
// it. Exhaustion of all strategies is reported as domain.ErrManPageNotFound.
type DocResolver interface {
	Resolve(ctx context.Context, command string, args []string) (string, error)
}

// Provider is one LLM backend variant. Respond sends the prompt and returns
// the structured answer. Providers that lack configuration return a canned
// LLMResponse describing the problem instead of an error.
type Provider interface {
	Name() string
	Respond(ctx context.Context, prompt string) (domain.LLMResponse, error)
}

// SecretStore looks up a previously stored credential in the platform secret
// store. Only the read path is used. Failures map onto the domain secret
// errors and are absorbed by the caller.
type SecretStore interface {
	Get(service, account string) (string, error)
}

// SecurityService evaluates a recommended command against advisory danger
// rules. Returned messages are shown as warnings before confirmation; they
// never block execution.
type SecurityService interface {
	Evaluate(command string) []string
}

// CommandExecutor runs a recommended command after confirmation. The command
// string is split on literal spaces with no shell interpretation.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// ConfirmationPrompter asks the user whether a recommended command should
// run. Declining is never an error.
type ConfirmationPrompter interface {
	Confirm(command string, warnings []string) (bool, error)
}

// Logger provides structured logging for diagnostics. Output is suppressed
// unless dev mode is enabled.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
