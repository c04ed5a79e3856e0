package domain

import "errors"

// Domain errors.
var (
	ErrUserNotFound   = errors.New("utilisateur non trouvé")
	ErrConfigNotFound = errors.New("configuration du serveur non trouvée")
	ErrRoleNotFound   = errors.New("rôle non trouvé")
	ErrRoleOperation  = errors.New("opération sur les rôles échouée")
)

// Code returns a stable identifier for a domain error, or "" when err does not
// wrap one. Adapters use it to pick the user-facing i18n message.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ErrConfigNotFound):
		return "config_not_found"
	case errors.Is(err, ErrRoleNotFound):
		return "role_not_found"
	case errors.Is(err, ErrRoleOperation):
		return "role_operation"
	}
	return ""
}
