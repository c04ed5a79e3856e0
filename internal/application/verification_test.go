package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackbot/internal/domain"
	"hackbot/internal/domain/entities"
)

type fakeUserRepo struct {
	users map[string]*entities.User
	err   error
	calls int
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type roleGrant struct {
	userID string
	roleID string
}

type fakeRoleManager struct {
	byName    map[string]string
	nextID    string
	addErr    error
	createErr error

	added   []roleGrant
	created []string
}

func (f *fakeRoleManager) AddRole(_, userID, roleID string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, roleGrant{userID: userID, roleID: roleID})
	return nil
}

func (f *fakeRoleManager) FindRoleByName(_, name string) (string, error) {
	if id, ok := f.byName[name]; ok {
		return id, nil
	}
	return "", domain.ErrRoleNotFound
}

func (f *fakeRoleManager) CreateRole(_, name string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, name)
	return f.nextID, nil
}

func newVerificationFixture(users map[string]*entities.User, roles *fakeRoleManager) (*VerificationService, *fakeUserRepo) {
	repo := &fakeUserRepo{users: users}
	return NewVerificationService(repo, &fakeConfigRepo{cfg: testConfig()}, roles), repo
}

func TestVerificationRejectsMalformedWithoutStoreLookup(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
	}{
		{"missing domain", "bad@"},
		{"missing at", "bad.example.com"},
		{"missing domain dot", "bad@example"},
		{"numeric tld", "bad@example.c1"},
		{"single letter tld", "bad@example.c"},
		{"empty", "   "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newVerificationFixture(nil, &fakeRoleManager{})

			outcome, err := svc.Submit(context.Background(), "g1", "u1", tc.candidate)

			require.NoError(t, err)
			assert.Equal(t, domain.OutcomeInvalidEmail, outcome)
			assert.Zero(t, repo.calls, "malformed emails must not hit the store")
		})
	}
}

func TestVerificationUnknownEmailKeepsDialogueOpen(t *testing.T) {
	svc, repo := newVerificationFixture(nil, &fakeRoleManager{})

	outcome, err := svc.Submit(context.Background(), "g1", "u1", "nobody@example.com")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnknownEmail, outcome)
	assert.False(t, outcome.Terminal())
	assert.Equal(t, 1, repo.calls)
}

func TestVerificationNormalizesEmailBeforeLookup(t *testing.T) {
	roles := &fakeRoleManager{byName: map[string]string{"Hacker": "role-hacker"}}
	svc, repo := newVerificationFixture(map[string]*entities.User{
		"ada@tamu.edu": {Email: "ada@tamu.edu", Role: domain.RoleHacker, Status: domain.StatusConfirmed},
	}, roles)

	outcome, err := svc.Submit(context.Background(), "g1", "u1", "  Ada@TAMU.edu \n")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeGranted, outcome)
	assert.Equal(t, 1, repo.calls)
}

func TestVerificationUnconfirmedHackerIneligible(t *testing.T) {
	for _, status := range []string{domain.StatusCreated, domain.StatusVerified, "APPLIED", "ACCEPTED"} {
		t.Run(status, func(t *testing.T) {
			roles := &fakeRoleManager{}
			svc, _ := newVerificationFixture(map[string]*entities.User{
				"ada@tamu.edu": {Email: "ada@tamu.edu", Role: domain.RoleHacker, Status: status},
			}, roles)

			outcome, err := svc.Submit(context.Background(), "g1", "u1", "ada@tamu.edu")

			require.NoError(t, err)
			assert.Equal(t, domain.OutcomeIneligible, outcome)
			assert.True(t, outcome.Terminal())
			assert.Empty(t, roles.added, "an ineligible hacker gets zero role mutations")
			assert.Empty(t, roles.created)
		})
	}
}

func TestVerificationConfirmedHackerGranted(t *testing.T) {
	roles := &fakeRoleManager{byName: map[string]string{"Hacker": "role-hacker"}}
	svc, _ := newVerificationFixture(map[string]*entities.User{
		"ada@tamu.edu": {Email: "ada@tamu.edu", Role: domain.RoleHacker, Status: domain.StatusConfirmed},
	}, roles)

	outcome, err := svc.Submit(context.Background(), "g1", "u1", "ada@tamu.edu")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeGranted, outcome)
	require.Len(t, roles.added, 2)
	assert.Equal(t, roleGrant{userID: "u1", roleID: "role-verified"}, roles.added[0])
	assert.Equal(t, roleGrant{userID: "u1", roleID: "role-hacker"}, roles.added[1])
	assert.Empty(t, roles.created)
}

func TestVerificationAdminGetsLowercaseRole(t *testing.T) {
	roles := &fakeRoleManager{byName: map[string]string{"admin": "role-admin"}}
	svc, _ := newVerificationFixture(map[string]*entities.User{
		"a@b.com": {Email: "a@b.com", Role: domain.RoleAdmin, Status: domain.StatusVerified},
	}, roles)

	outcome, err := svc.Submit(context.Background(), "g1", "u1", "a@b.com")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeGranted, outcome)
	require.Len(t, roles.added, 2)
	assert.Equal(t, "role-admin", roles.added[1].roleID)
}

func TestVerificationCreatesMissingRoleAndUsesReturnedID(t *testing.T) {
	roles := &fakeRoleManager{nextID: "fresh-role"}
	svc, _ := newVerificationFixture(map[string]*entities.User{
		"o@tamu.edu": {Email: "o@tamu.edu", Role: domain.RoleOrganizer, Status: domain.StatusVerified},
	}, roles)

	outcome, err := svc.Submit(context.Background(), "g1", "u2", "o@tamu.edu")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeGranted, outcome)
	assert.Equal(t, []string{"Organizer"}, roles.created)
	require.Len(t, roles.added, 2)
	assert.Equal(t, "fresh-role", roles.added[1].roleID, "must grant via the ID returned by creation, not a name lookup")
}

func TestVerificationRoleFailureIsTerminal(t *testing.T) {
	roles := &fakeRoleManager{addErr: errors.New("permission refusée")}
	svc, _ := newVerificationFixture(map[string]*entities.User{
		"ada@tamu.edu": {Email: "ada@tamu.edu", Role: domain.RoleHacker, Status: domain.StatusConfirmed},
	}, roles)

	_, err := svc.Submit(context.Background(), "g1", "u1", "ada@tamu.edu")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoleOperation)
}

func TestVerificationStoreFailureIsTransient(t *testing.T) {
	repo := &fakeUserRepo{err: errors.New("connexion refusée")}
	svc := NewVerificationService(repo, &fakeConfigRepo{cfg: testConfig()}, &fakeRoleManager{})

	_, err := svc.Submit(context.Background(), "g1", "u1", "ada@tamu.edu")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRoleOperation)
	assert.NotErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestMemberRoleName(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"HACKER", "Hacker"},
		{"ADMIN", "admin"},
		{"ORGANIZER", "Organizer"},
		{"JUDGE", "Judge"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, MemberRoleName(tc.role))
	}
}
