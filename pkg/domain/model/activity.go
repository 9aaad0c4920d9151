package model

import (
	"encoding/json"
	"time"

	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ActivityLog is an append-only, innovation-scoped audit record. The
// parameter blob is a flat JSON object whose shape depends on the activity
// type; see ActivityParams.
type ActivityLog struct {
	ID           string
	InnovationID string
	Type         types.ActivityType
	Params       json.RawMessage
	CreatedBy    string
	CreatedAt    time.Time
}

// ActivityParams is the sealed set of parameter payloads an activity log
// entry can carry. Each shape serializes to a flat JSON object so stored
// blobs can be partially rewritten on the read path without a schema
// migration.
type ActivityParams interface {
	activityParams()
}

// ParamsActor carries only the acting user. Used by most activity types.
type ParamsActor struct {
	ActionUserID string `json:"actionUserId"`
}

// ParamsTransfer carries the acting user plus the user on the other side of
// the event, e.g. the recipient of an ownership transfer.
type ParamsTransfer struct {
	ActionUserID      string `json:"actionUserId"`
	InterveningUserID string `json:"interveningUserId"`
}

// ParamsSection carries the innovation record section the event concerns.
type ParamsSection struct {
	ActionUserID string `json:"actionUserId"`
	SectionID    string `json:"sectionId"`
}

// ParamsActionCount carries how many actions an event touched, e.g. the
// mass-cancellation that accompanies leaving ENGAGING.
type ParamsActionCount struct {
	ActionUserID string `json:"actionUserId"`
	TotalActions int    `json:"totalActions"`
	SectionID    string `json:"sectionId,omitempty"`
}

// ParamsSupportStatus carries the support status an update landed on.
type ParamsSupportStatus struct {
	ActionUserID  string              `json:"actionUserId"`
	SupportStatus types.SupportStatus `json:"innovationSupportStatus"`
}

func (ParamsActor) activityParams()         {}
func (ParamsTransfer) activityParams()      {}
func (ParamsSection) activityParams()       {}
func (ParamsActionCount) activityParams()   {}
func (ParamsSupportStatus) activityParams() {}

// EncodeActivityParams serializes a parameter payload into the flat JSON
// blob stored on the activity log entry.
func EncodeActivityParams(p ActivityParams) (json.RawMessage, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode activity params")
	}
	return raw, nil
}

// ActivityView is the resolved read-side projection of an activity log
// entry. Params holds the stored blob with user-id fields replaced by
// display names; the stored entry itself is never mutated.
type ActivityView struct {
	ID           string
	InnovationID string
	Type         types.ActivityType
	Category     types.ActivityCategory
	Params       map[string]any
	CreatedBy    string
	CreatedAt    time.Time
}

// ResolveActivityParams decodes a stored parameter blob and renames the
// actionUserId / interveningUserId fields to actionUserName /
// interveningUserName, resolving each through the supplied lookup. The
// rename replaces the id field outright; readers of the view never see the
// raw ids.
func ResolveActivityParams(raw json.RawMessage, resolveName func(userID string) string) (map[string]any, error) {
	params := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, goerr.Wrap(err, "failed to decode activity params")
		}
	}

	renames := map[string]string{
		"actionUserId":      "actionUserName",
		"interveningUserId": "interveningUserName",
	}
	for idKey, nameKey := range renames {
		v, ok := params[idKey]
		if !ok {
			continue
		}
		userID, _ := v.(string)
		delete(params, idKey)
		params[nameKey] = resolveName(userID)
	}

	return params, nil
}
