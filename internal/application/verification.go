package application

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"hackbot/internal/domain"
	"hackbot/internal/domain/entities"
	"hackbot/internal/ports/input"
	"hackbot/internal/ports/output"
)

// Forme local@domaine.tld, insensible à la casse, TLD d'au moins 2 lettres.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var roleTitleCaser = cases.Title(language.English)

var _ input.VerificationUseCase = (*VerificationService)(nil)

// VerificationService decides the outcome of each email candidate in a
// verification dialogue and performs the role mutations on success.
type VerificationService struct {
	users   output.UserRepository
	configs output.GuildConfigRepository
	roles   output.RoleManager
}

func NewVerificationService(
	users output.UserRepository,
	configs output.GuildConfigRepository,
	roles output.RoleManager,
) *VerificationService {
	return &VerificationService{
		users:   users,
		configs: configs,
		roles:   roles,
	}
}

// Submit validates the candidate, looks it up against the registrations and
// grants roles when the participant is eligible. Malformed candidates never
// touch the store.
func (s *VerificationService) Submit(ctx context.Context, guildID, userID, candidate string) (domain.VerificationOutcome, error) {
	email := strings.ToLower(strings.TrimSpace(candidate))
	if !emailPattern.MatchString(email) {
		return domain.OutcomeInvalidEmail, nil
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.OutcomeUnknownEmail, nil
	}
	if err != nil {
		return 0, fmt.Errorf("lookup user by email: %w", err)
	}

	// Un hacker qui n'a pas confirmé sa présence n'entre pas sur le serveur.
	if user.Role == domain.RoleHacker && user.Status != domain.StatusConfirmed {
		return domain.OutcomeIneligible, nil
	}

	if err := s.grantRoles(ctx, guildID, userID, user); err != nil {
		return 0, err
	}
	return domain.OutcomeGranted, nil
}

func (s *VerificationService) grantRoles(ctx context.Context, guildID, userID string, user *entities.User) error {
	cfg, err := s.configs.FindLatest(ctx)
	if err != nil {
		return fmt.Errorf("resolve verified role: %w", err)
	}
	if err := s.roles.AddRole(guildID, userID, cfg.VerifiedRoleID); err != nil {
		return fmt.Errorf("%w: add verified role: %v", domain.ErrRoleOperation, err)
	}

	name := MemberRoleName(user.Role)
	roleID, err := s.roles.FindRoleByName(guildID, name)
	if errors.Is(err, domain.ErrRoleNotFound) {
		// On utilise l'ID retourné par la création: une recherche par nom
		// juste après peut ne pas encore voir le rôle.
		roleID, err = s.roles.CreateRole(guildID, name)
	}
	if err != nil {
		return fmt.Errorf("%w: resolve role %q: %v", domain.ErrRoleOperation, name, err)
	}
	if err := s.roles.AddRole(guildID, userID, roleID); err != nil {
		return fmt.Errorf("%w: add role %q: %v", domain.ErrRoleOperation, name, err)
	}
	return nil
}

// MemberRoleName maps a stored role to the guild role name: title-cased, with
// the historical exception that admins get the lowercase "admin" role.
func MemberRoleName(role string) string {
	name := roleTitleCaser.String(strings.ToLower(role))
	if name == "Admin" {
		name = "admin"
	}
	return name
}
