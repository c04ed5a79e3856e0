package application

import (
	"context"
	"log"
	"sync"
	"time"

	"hackbot/internal/ports/input"
	"hackbot/internal/ports/output"
)

// Fenêtre de rappel: un événement est annoncé quand son début est à 4-5 minutes.
// La fenêtre est plus large que l'intervalle de tick pour qu'au moins un tick
// tombe dedans malgré la gigue d'horloge.
const (
	reminderInterval  = 1 * time.Minute
	reminderWindowLow = 4 * time.Minute
	reminderWindowTop = 5 * time.Minute
	reminderLookahead = 1 * time.Hour
)

var _ input.ReminderUseCase = (*ReminderService)(nil)

// ReminderService polls the store and dispatches one reminder per event as it
// enters the reminder window. Sent-state lives in memory for the process
// lifetime: without it, every tick inside the window would re-send.
type ReminderService struct {
	events   output.EventRepository
	configs  output.GuildConfigRepository
	notifier output.Notifier
	interval time.Duration

	mu   sync.Mutex
	sent map[int64]struct{}
}

func NewReminderService(
	events output.EventRepository,
	configs output.GuildConfigRepository,
	notifier output.Notifier,
) *ReminderService {
	return &ReminderService{
		events:   events,
		configs:  configs,
		notifier: notifier,
		interval: reminderInterval,
		sent:     make(map[int64]struct{}),
	}
}

// Run ticks every minute until ctx is cancelled. Shutdown is bounded: the
// ticker stops immediately, in-flight dispatches finish with the current tick.
func (s *ReminderService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("✅ Planificateur de rappels démarré (intervalle %s)", s.interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("✅ Planificateur de rappels arrêté")
			return
		case <-ticker.C:
			s.Tick(ctx, time.Now())
		}
	}
}

// Tick fetches upcoming events and dispatches reminders for those inside the
// window that have not been announced yet. Any failure aborts this tick only;
// the next tick retries with a fresh store connection.
func (s *ReminderService) Tick(ctx context.Context, now time.Time) {
	events, err := s.events.FindStartingBetween(ctx, now, now.Add(reminderLookahead))
	if err != nil {
		log.Printf("❌ Rappels: lecture des événements: %v", err)
		return
	}

	for _, event := range events {
		untilStart := event.Start.Sub(now)
		if untilStart < reminderWindowLow || untilStart > reminderWindowTop {
			continue
		}
		if s.alreadySent(event.ID) {
			continue
		}

		cfg, err := s.configs.FindLatest(ctx)
		if err != nil {
			// Pas de configuration → on saute ce tick, sans marquer l'événement:
			// il sera retenté tant qu'il reste dans la fenêtre.
			log.Printf("⚠️ Rappels: configuration introuvable, rappel ignoré (événement %d): %v", event.ID, err)
			continue
		}

		if err := s.notifier.EventStarting(ctx, event, cfg.ScheduleChannelID); err != nil {
			// Destination disparue ou envoi refusé: renvoyer n'apporterait
			// rien, l'événement est quand même marqué comme annoncé.
			log.Printf("❌ Rappels: envoi échoué (événement %d): %v", event.ID, err)
		}
		s.markSent(event.ID)
	}
}

func (s *ReminderService) alreadySent(eventID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sent[eventID]
	return ok
}

func (s *ReminderService) markSent(eventID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent[eventID] = struct{}{}
}
