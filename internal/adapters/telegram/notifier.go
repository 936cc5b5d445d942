package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/betoh/informalidad-fiscal/internal/adapters/config"
	"github.com/betoh/informalidad-fiscal/internal/reports"
	"github.com/betoh/informalidad-fiscal/pkg/logger"
	"github.com/betoh/informalidad-fiscal/pkg/templates"
)

// Notifier delivers run summaries to a Telegram chat.
type Notifier struct {
	api             *tgbotapi.BotAPI
	cfg             *config.TelegramConfig
	templateManager *templates.Manager
}

// NewNotifier creates new Telegram notifier
func NewNotifier(cfg *config.TelegramConfig, templateManager *templates.Manager) (*Notifier, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	bot.Debug = false

	logger.Info("telegram notifier initialized",
		zap.String("bot_username", bot.Self.UserName),
	)

	return &Notifier{api: bot, cfg: cfg, templateManager: templateManager}, nil
}

// SendRunSummary sends the headline figures of a completed run.
func (n *Notifier) SendRunSummary(report *reports.Report) error {
	text, err := n.templateManager.ExecuteTemplate("run_summary.tmpl", report)
	if err != nil {
		return fmt.Errorf("failed to render run summary: %w", err)
	}

	msg := tgbotapi.NewMessage(n.cfg.ChatID, text)
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send run summary: %w", err)
	}

	logger.Info("run summary delivered",
		zap.Int64("chat_id", n.cfg.ChatID),
	)
	return nil
}
