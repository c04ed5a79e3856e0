package discord

import (
	"context"
	"log"
	"strings"
	"sync"

	"hackbot/internal/domain"
	"hackbot/internal/ports/input"
	"hackbot/internal/ports/output"
	pkgdiscord "hackbot/pkg/discord"
)

// verificationSession is one user's in-progress dialogue. The guild is
// captured at trigger time: everything after the trigger happens over DMs.
type verificationSession struct {
	guildID string
}

// VerificationManager routes direct messages to per-user verification
// dialogues. Each user gets an independent session keyed by author ID, so
// concurrent dialogues never observe each other's messages.
//
// Sessions have no expiry: a dialogue abandoned mid-way keeps its entry until
// a terminal outcome or process exit.
type VerificationManager struct {
	verifier   input.VerificationUseCase
	messenger  output.Messenger
	translator output.T
	locale     string

	mu       sync.Mutex
	sessions map[string]*verificationSession
}

// NewVerificationManager creates a VerificationManager.
func NewVerificationManager(
	verifier input.VerificationUseCase,
	messenger output.Messenger,
	translator output.T,
	locale string,
) *VerificationManager {
	return &VerificationManager{
		verifier:   verifier,
		messenger:  messenger,
		translator: translator,
		locale:     locale,
		sessions:   make(map[string]*verificationSession),
	}
}

// Begin opens a dialogue for the user and DMs the email prompt. A user
// already mid-dialogue keeps the existing session.
func (m *VerificationManager) Begin(guildID, userID string) {
	m.mu.Lock()
	if _, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return
	}
	m.sessions[userID] = &verificationSession{guildID: guildID}
	m.mu.Unlock()

	if err := m.messenger.SendDM(userID, m.translator.T(m.locale, "verification.prompt", nil)); err != nil {
		// MP fermés: impossible de dialoguer, on abandonne la session.
		log.Printf("❌ Vérification: envoi du MP initial impossible (user=%s): %v", userID, err)
		m.end(userID)
	}
}

// HandleDM feeds a direct message into its author's dialogue. Messages from
// users without an open dialogue are ignored.
func (m *VerificationManager) HandleDM(userID, content string) {
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	m.mu.Unlock()
	if !ok {
		return
	}

	email := strings.TrimSpace(content)
	outcome, err := m.verifier.Submit(context.Background(), sess.guildID, userID, content)
	if err != nil {
		log.Printf("❌ Vérification (user=%s): %v", userID, err)
		key := pkgdiscord.DomainMessageKey(err)
		m.send(userID, key, nil)
		if key != "verification.retry" {
			m.end(userID)
		}
		return
	}

	switch outcome {
	case domain.OutcomeInvalidEmail:
		m.send(userID, "verification.invalid_email", map[string]any{"Email": email})
	case domain.OutcomeUnknownEmail:
		m.send(userID, "verification.unknown_email", map[string]any{"Email": email})
	case domain.OutcomeIneligible:
		m.send(userID, "verification.ineligible", nil)
		m.end(userID)
	case domain.OutcomeGranted:
		m.send(userID, "verification.granted", nil)
		m.end(userID)
	}
}

func (m *VerificationManager) send(userID, key string, data map[string]any) {
	if err := m.messenger.SendDM(userID, m.translator.T(m.locale, key, data)); err != nil {
		log.Printf("❌ Vérification: envoi du MP impossible (user=%s): %v", userID, err)
	}
}

func (m *VerificationManager) end(userID string) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
}
