package directory

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// SlackSource lists workspace users from the Slack API as directory
// entries. Organisation memberships and roles are service-side data; the
// source only carries identity fields, and entries default to the
// innovator type until an administrator assigns a role.
type SlackSource struct {
	api *slack.Client
}

func NewSlackSource(token string) (*SlackSource, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}

	return &SlackSource{
		api: slack.New(token),
	}, nil
}

var _ interfaces.DirectorySource = &SlackSource{}

// ListUsers retrieves all non-deleted, non-bot users in the workspace
func (s *SlackSource) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.api.GetUsersContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workspace users")
	}

	result := make([]*model.User, 0, len(users))
	for _, u := range users {
		if u.Deleted || u.IsBot {
			continue
		}

		userType := types.UserTypeInnovator
		if u.IsAdmin {
			userType = types.UserTypeAdmin
		}

		name := u.RealName
		if name == "" {
			name = u.Name
		}

		result = append(result, &model.User{
			ID:         u.ID,
			ExternalID: u.ID,
			Name:       name,
			Email:      u.Profile.Email,
			Type:       userType,
		})
	}

	return result, nil
}
