package cli

import (
	"context"

	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/inno-lab/innovaid/pkg/utils/logging"
)

func cmdMigrate() *cli.Command {
	var projectID string
	var databaseID string
	var dryRun bool

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrate Firestore indexes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "firestore-project-id",
				Usage:       "Firestore Project ID (required)",
				Required:    true,
				Sources:     cli.EnvVars("INNOVAID_FIRESTORE_PROJECT_ID"),
				Destination: &projectID,
			},
			&cli.StringFlag{
				Name:        "firestore-database-id",
				Usage:       "Firestore Database ID",
				Value:       "(default)",
				Sources:     cli.EnvVars("INNOVAID_FIRESTORE_DATABASE_ID"),
				Destination: &databaseID,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Preview changes without applying",
				Destination: &dryRun,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			logger.Info("Migrate configuration",
				"projectID", projectID,
				"databaseID", databaseID,
				"dryRun", dryRun)

			client, err := fireconf.New(ctx, projectID, databaseID, getIndexConfig(),
				fireconf.WithLogger(logger),
				fireconf.WithDryRun(dryRun))
			if err != nil {
				return goerr.Wrap(err, "failed to create fireconf client")
			}
			defer func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close fireconf client", "error", err.Error())
				}
			}()

			if dryRun {
				logger.Info("Dry run mode - previewing changes")
			}
			if err := client.Migrate(ctx); err != nil {
				return goerr.Wrap(err, "failed to apply migrations")
			}
			logger.Info("Migration finished")

			return nil
		},
	}
}

// getIndexConfig returns the Firestore index configuration
func getIndexConfig() *fireconf.Config {
	return &fireconf.Config{
		Collections: []fireconf.Collection{
			{
				Name: "supports",
				Indexes: []fireconf.Index{
					// GetByInnovationAndUnit: innovation_id ASC, organisation_unit_id ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "innovation_id", Order: fireconf.OrderAscending},
							{Path: "organisation_unit_id", Order: fireconf.OrderAscending},
						},
					},
					// ListByInnovation with status filter: innovation_id ASC, status ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "innovation_id", Order: fireconf.OrderAscending},
							{Path: "status", Order: fireconf.OrderAscending},
						},
					},
				},
			},
			{
				Name: "actions",
				Indexes: []fireconf.Index{
					// ListBySupport with status filter: support_id ASC, status ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "support_id", Order: fireconf.OrderAscending},
							{Path: "status", Order: fireconf.OrderAscending},
						},
					},
				},
			},
			{
				Name: "comments",
				Indexes: []fireconf.Index{
					// ListByInnovation: innovation_id ASC, created_at DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "innovation_id", Order: fireconf.OrderAscending},
							{Path: "created_at", Order: fireconf.OrderDescending},
						},
					},
				},
			},
			{
				Name: "activity_logs",
				Indexes: []fireconf.Index{
					// ListByInnovation: innovation_id ASC, created_at DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "innovation_id", Order: fireconf.OrderAscending},
							{Path: "created_at", Order: fireconf.OrderDescending},
						},
					},
					// ListByInnovation with category: innovation_id ASC, category ASC, created_at DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "innovation_id", Order: fireconf.OrderAscending},
							{Path: "category", Order: fireconf.OrderAscending},
							{Path: "created_at", Order: fireconf.OrderDescending},
						},
					},
				},
			},
			{
				Name: "support_logs",
				Indexes: []fireconf.Index{
					// ListByInnovation: innovation_id ASC, created_at DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "innovation_id", Order: fireconf.OrderAscending},
							{Path: "created_at", Order: fireconf.OrderDescending},
						},
					},
				},
			},
			{
				Name: "notification_recipients",
				Indexes: []fireconf.Index{
					// ListUnreadByUser: user_id ASC, read ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "user_id", Order: fireconf.OrderAscending},
							{Path: "read", Order: fireconf.OrderAscending},
						},
					},
				},
			},
			{
				Name: "users",
				Indexes: []fireconf.Index{
					// ListByOrganisationRole: organisation_id ASC, organisation_role ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "organisation_id", Order: fireconf.OrderAscending},
							{Path: "organisation_role", Order: fireconf.OrderAscending},
						},
					},
				},
			},
		},
	}
}
