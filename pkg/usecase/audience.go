package usecase

import (
	"context"
	"sort"

	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// resolveAudience computes the recipient set for one notification. The
// acting user is removed from the result in every strategy. A non-empty
// explicit target list replaces the query outright, except for the
// innovator audience where the owner is always included.
func resolveAudience(ctx context.Context, repo interfaces.Repository, actor *model.Actor, audience types.Audience, innovationID string, explicit []string) ([]string, error) {
	var targets []string

	switch audience {
	case types.AudienceInnovators:
		innovation, err := repo.Innovation().Get(ctx, innovationID)
		if err != nil {
			return nil, goerr.Wrap(ErrNotFound, "innovation not found", goerr.V(InnovationIDKey, innovationID))
		}
		targets = append([]string{innovation.OwnerID}, explicit...)

	case types.AudienceAccessors:
		if len(explicit) > 0 {
			targets = explicit
			break
		}
		supports, err := repo.Support().ListByInnovation(ctx, innovationID,
			types.SupportStatusEngaging, types.SupportStatusComplete)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list engaged supports", goerr.V(InnovationIDKey, innovationID))
		}
		for _, s := range supports {
			targets = append(targets, s.AccessorIDs...)
		}

	case types.AudienceQualifyingAccessors:
		if len(explicit) > 0 {
			targets = explicit
			break
		}
		assessments, err := repo.Assessment().ListByInnovation(ctx, innovationID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list assessments", goerr.V(InnovationIDKey, innovationID))
		}
		var orgIDs []string
		for _, a := range assessments {
			orgIDs = append(orgIDs, a.SuggestedOrganisationIDs...)
		}
		users, err := repo.User().ListByOrganisationRole(ctx, dedupe(orgIDs), types.OrgRoleQualifyingAccessor)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list qualifying accessors", goerr.V(InnovationIDKey, innovationID))
		}
		for _, u := range users {
			targets = append(targets, u.ID)
		}

	case types.AudienceAssessmentUsers:
		if len(explicit) > 0 {
			targets = explicit
			break
		}
		users, err := repo.User().ListByType(ctx, types.UserTypeAssessment)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list assessment users")
		}
		for _, u := range users {
			targets = append(targets, u.ID)
		}

	default:
		return nil, goerr.Wrap(ErrInvalidParams, "unknown audience", goerr.V("audience", audience))
	}

	result := make([]string, 0, len(targets))
	seen := make(map[string]bool, len(targets))
	for _, id := range targets {
		if id == "" || id == actor.ID || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	sort.Strings(result)

	return result, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
