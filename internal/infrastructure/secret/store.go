// Package secret provides read-only access to the platform secret store.
// Only macOS has a real implementation, via the security(1) CLI; other
// platforms get a no-op store so the capability interface stays uniform
// without conditional compilation.
package secret

import (
	"runtime"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/ports"
)

// NewStore selects the store for the current platform.
func NewStore() ports.SecretStore {
	if runtime.GOOS == "darwin" {
		return &KeychainStore{}
	}
	return unsupportedStore{}
}

// unsupportedStore reports every credential as missing.
type unsupportedStore struct{}

func (unsupportedStore) Get(string, string) (string, error) {
	return "", domain.ErrKeyNotFound
}
