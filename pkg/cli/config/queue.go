package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/service/queue"
	"github.com/inno-lab/innovaid/pkg/utils/logging"
)

// Queue holds CLI flags for the dispatch queue backend
type Queue struct {
	backend   string
	channelID string
	botToken  string
}

// Flags returns CLI flags for queue configuration
func (q *Queue) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "queue-backend",
			Usage:       "Dispatch queue backend (slack or memory)",
			Category:    "Queue",
			Value:       "memory",
			Sources:     cli.EnvVars("INNOVAID_QUEUE_BACKEND"),
			Destination: &q.backend,
		},
		&cli.StringFlag{
			Name:        "queue-slack-channel-id",
			Usage:       "Slack channel the dispatch events are posted to",
			Category:    "Queue",
			Sources:     cli.EnvVars("INNOVAID_QUEUE_SLACK_CHANNEL_ID"),
			Destination: &q.channelID,
		},
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token",
			Category:    "Queue",
			Sources:     cli.EnvVars("INNOVAID_SLACK_BOT_TOKEN"),
			Destination: &q.botToken,
		},
	}
}

func (q Queue) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", q.backend),
		slog.String("channel", q.channelID),
		slog.Int("bot-token.len", len(q.botToken)),
	)
}

// BotToken returns the Slack bot token
func (q *Queue) BotToken() string {
	return q.botToken
}

// Configure builds the queue client for the configured backend
func (q *Queue) Configure() (interfaces.QueueClient, error) {
	switch q.backend {
	case "slack":
		client, err := queue.NewSlack(q.botToken, q.channelID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize slack queue client")
		}
		logging.Default().Info("Using Slack dispatch queue", "channel", q.channelID)
		return client, nil

	case "memory":
		logging.Default().Info("Using in-memory dispatch queue (development mode)")
		return queue.NewMemory(), nil

	default:
		return nil, goerr.New("invalid queue backend", goerr.V("backend", q.backend))
	}
}
