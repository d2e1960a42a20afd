// Package gitconfig reads the user's global git configuration to provide
// default author name and email for license prompts. Lookups are
// best-effort: any error yields the zero Identity.
package gitconfig

import (
	"github.com/go-git/go-git/v5/config"
)

// Identity is the author identity from git config (user.name, user.email).
// Fields are empty when not configured.
type Identity struct {
	Name  string
	Email string
}

// Load returns the identity from the global git configuration.
// Missing config files or unset keys are not errors; the corresponding
// fields stay empty.
func Load() Identity {
	cfg, err := config.LoadConfig(config.GlobalScope)
	if err != nil {
		return Identity{}
	}
	return Identity{
		Name:  cfg.User.Name,
		Email: cfg.User.Email,
	}
}
