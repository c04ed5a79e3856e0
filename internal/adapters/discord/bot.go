package discord

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	"hackbot/internal/application"
	"hackbot/internal/config"
	"hackbot/internal/ports/input"
	"hackbot/internal/ports/output"
	"hackbot/pkg/tz"
)

// verifyTrigger starts a verification dialogue when posted as-is in a guild
// channel. Kept as an exact-match string: the bot has no prefix-command parser.
const verifyTrigger = "r?verify"

// Bot is the Discord adapter.
type Bot struct {
	session  *discordgo.Session
	config   *config.Config
	handler  *Handler
	reminder input.ReminderUseCase
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(
	cfg *config.Config,
	eventRepo output.EventRepository,
	userRepo output.UserRepository,
	configRepo output.GuildConfigRepository,
	translator output.T,
) *Bot {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal("❌ Erreur lors de la création de la session Discord:", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = tz.Central
	}

	gateway := NewGateway(s)
	notifier := NewNotifier(s, translator, cfg.Locale, loc)

	verificationUC := application.NewVerificationService(userRepo, configRepo, gateway)
	reminderUC := application.NewReminderService(eventRepo, configRepo, notifier)

	verification := NewVerificationManager(verificationUC, gateway, translator, cfg.Locale)
	handler := NewHandler(verification, configRepo, translator, cfg.Locale)

	bot := &Bot{
		session:  s,
		config:   cfg,
		handler:  handler,
		reminder: reminderUC,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleReady)
	b.session.AddHandler(b.handleMessage)
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("✅ Connecté en tant que %s", r.User.String())
	if err := s.UpdateGameStatus(0, "/help"); err != nil {
		log.Printf("⚠️ Mise à jour de la présence: %v", err)
	}
}

func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	// Les messages privés sont routés vers le dialogue de vérification de
	// leur auteur; sans dialogue en cours ils sont ignorés.
	if m.GuildID == "" {
		b.handler.verification.HandleDM(m.Author.ID, m.Content)
		return
	}

	if strings.TrimSpace(m.Content) != verifyTrigger {
		return
	}
	// Le message déclencheur est supprimé: aucun email ne doit finir dans un
	// salon public par erreur.
	if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
		log.Printf("⚠️ Suppression du message de vérification (channel=%s): %v", m.ChannelID, err)
	}
	b.handler.verification.Begin(m.GuildID, m.Author.ID)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case "setup":
		b.handler.HandleSetup(s, i)
	case "help":
		b.handler.HandleHelp(s, i)
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	adminOnly := int64(discordgo.PermissionAdministrator)
	commands := []*discordgo.ApplicationCommand{
		{Name: "setup", Description: "Créer les salons et rôles du serveur", DefaultMemberPermissions: &adminOnly},
		{Name: "help", Description: "Afficher les commandes disponibles"},
	}

	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Erreur lors de l'enregistrement de la commande %s: %v", cmd.Name, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.reminder.Run(ctx)

	fmt.Println("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
