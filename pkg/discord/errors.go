package discord

import "hackbot/internal/domain"

// DomainMessageKey maps a domain error to the i18n key of its user-facing
// message. Transient store failures (no domain code) invite the user to retry;
// everything else in a dialogue is terminal.
func DomainMessageKey(err error) string {
	switch domain.Code(err) {
	case "config_not_found", "role_operation", "role_not_found":
		return "verification.failed"
	default:
		return "verification.retry"
	}
}
