// Package keyring stores external source credentials in the OS keyring so
// tokens never live in the config file or the storage database.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/gryd/internal/constants"
	"github.com/julianstephens/gryd/internal/models"
)

var (
	// ErrNotFound is returned when no token is stored for the source
	ErrNotFound = errors.New("token not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func userFor(source models.DataSource) (string, error) {
	switch source {
	case models.DataSourceGitHub:
		return constants.KeyringGitHubToken, nil
	case models.DataSourceGitLab:
		return constants.KeyringGitLabToken, nil
	default:
		return "", fmt.Errorf("no credentials are kept for source %q", source)
	}
}

// GetToken retrieves the API token for an external source from the OS
// keyring. Returns ErrNotFound if no token is stored.
func GetToken(source models.DataSource) (string, error) {
	user, err := userFor(source)
	if err != nil {
		return "", err
	}
	token, err := keyring.Get(constants.AppName, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// SetToken stores the API token for an external source in the OS keyring.
func SetToken(source models.DataSource, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	user, err := userFor(source)
	if err != nil {
		return err
	}
	if err := keyring.Set(constants.AppName, user, token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

// DeleteToken removes the API token for an external source from the OS keyring.
func DeleteToken(source models.DataSource) error {
	user, err := userFor(source)
	if err != nil {
		return err
	}
	if err := keyring.Delete(constants.AppName, user); err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete token from keyring: %w", err)
	}
	return nil
}

// Provider adapts the package functions to the token lookup interface
// consumed by the source client.
type Provider struct{}

func (Provider) GetToken(source models.DataSource) (string, error) {
	return GetToken(source)
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring answered, it is just empty
	return err == nil || err == keyring.ErrNotFound
}
