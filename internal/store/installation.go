package store

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"phonelogin/internal/domain"
)

const installationFile = "installation.json"

type installation struct {
	ID         string `json:"id"`
	CreatedUTC int64  `json:"created_utc"`
}

// EnsureInstallation returns the installation identifier recorded in dir,
// generating and persisting a new one on first use.
func EnsureInstallation(dir string) (domain.InstallationID, error) {
	path := filepath.Join(dir, installationFile)

	var inst installation
	if err := readJSON(path, &inst); err != nil {
		return "", fmt.Errorf("read installation: %w", err)
	}
	if inst.ID != "" {
		id, err := uuid.Parse(inst.ID)
		if err != nil {
			return "", fmt.Errorf("installation id %q: %w", inst.ID, err)
		}
		return domain.InstallationID(id.String()), nil
	}

	inst = installation{ID: uuid.NewString(), CreatedUTC: time.Now().UTC().Unix()}
	if err := writeJSON(path, inst, 0o600); err != nil {
		return "", fmt.Errorf("write installation: %w", err)
	}
	return domain.InstallationID(inst.ID), nil
}
