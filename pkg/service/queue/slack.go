package queue

import (
	"context"
	"fmt"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Slack delivers queue messages as posts to a Slack channel. Each message
// becomes one post summarizing the event; downstream consumers (email
// senders etc.) subscribe to the channel.
type Slack struct {
	api       *slack.Client
	channelID string
}

func NewSlack(token, channelID string) (*Slack, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channelID == "" {
		return nil, goerr.New("Slack channel ID is required")
	}

	return &Slack{
		api:       slack.New(token),
		channelID: channelID,
	}, nil
}

func (q *Slack) Enqueue(ctx context.Context, msg *model.QueueMessage) error {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, string(msg.Action), false, false),
		),
		slack.NewSectionBlock(nil, summaryFields(msg), nil),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("event `%s`", msg.EventID), false, false),
		),
	}

	_, _, err := q.api.PostMessageContext(ctx, q.channelID,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(fmt.Sprintf("%s: innovation %s", msg.Action, msg.Body.InnovationID), false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post queue message to Slack",
			goerr.V("action", msg.Action),
			goerr.V("eventID", msg.EventID))
	}

	return nil
}

func summaryFields(msg *model.QueueMessage) []*slack.TextBlockObject {
	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Innovation:*\n%s", msg.Body.InnovationID), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Actor:*\n%s", msg.Body.Actor.ID), false, false),
	}

	if msg.Body.SupportStatus != "" {
		fields = append(fields,
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Status:*\n%s", msg.Body.SupportStatus), false, false))
	}
	if msg.Body.OrganisationUnitID != "" {
		fields = append(fields,
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Unit:*\n%s", msg.Body.OrganisationUnitID), false, false))
	}

	return fields
}
