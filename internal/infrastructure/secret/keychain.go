package secret

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/ports"
)

// KeychainStore reads generic passwords from the macOS keychain through the
// security(1) CLI, which avoids cgo and keychain framework bindings.
type KeychainStore struct{}

// Get implements ports.SecretStore.
func (s *KeychainStore) Get(service, account string) (string, error) {
	if service == "" || account == "" {
		return "", domain.ErrInvalidParameters
	}

	cmd := exec.Command("security", "find-generic-password", "-s", service, "-a", account, "-w")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", classifySecurityError(stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// classifySecurityError maps security(1) failures onto the domain secret
// errors. The CLI reports item-not-found as exit 44 with a recognizable
// message; user denial comes back as exit 51.
func classifySecurityError(stderr string, err error) error {
	switch {
	case strings.Contains(stderr, "could not be found"):
		return domain.ErrKeyNotFound
	case strings.Contains(stderr, "User interaction is not allowed"),
		strings.Contains(stderr, "The authorization was denied"):
		return domain.ErrAccessDenied
	default:
		return fmt.Errorf("%w: %v", domain.ErrSecretUnknown, err)
	}
}

var _ ports.SecretStore = (*KeychainStore)(nil)
