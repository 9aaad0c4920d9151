package worker

import (
	"context"
	"time"

	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// DirectoryRefreshWorker manages background refresh of the user directory
// from the external identity provider into the database.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type DirectoryRefreshWorker struct {
	repo     interfaces.Repository
	source   interfaces.DirectorySource
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewDirectoryRefreshWorker creates a new worker for refreshing the user
// directory
func NewDirectoryRefreshWorker(repo interfaces.Repository, source interfaces.DirectorySource, interval time.Duration) *DirectoryRefreshWorker {
	return &DirectoryRefreshWorker{
		repo:     repo,
		source:   source,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background refresh loop
// - Initial sync and periodic refresh both run in a background goroutine
// - Does not block server startup
func (w *DirectoryRefreshWorker) Start(ctx context.Context) error {
	logging.Default().Info("directory refresh worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *DirectoryRefreshWorker) Stop() {
	logging.Default().Info("directory refresh worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("directory refresh worker stopped")
}

func (w *DirectoryRefreshWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	if err := w.refresh(ctx); err != nil {
		logging.Default().Error("initial directory refresh failed (will retry next interval)",
			"error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.refresh(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("directory refresh failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			logging.Default().Info("directory refresh worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("directory refresh worker context cancelled")
			return
		}
	}
}

// refresh performs a single refresh cycle. Identity fields come from the
// provider; service-side type, organisation and role assignments on an
// existing entry survive the refresh.
func (w *DirectoryRefreshWorker) refresh(ctx context.Context) error {
	startTime := time.Now()
	logging.Default().Info("starting directory refresh")

	sourced, err := w.source.ListUsers(ctx)
	if err != nil {
		// Old directory data is preserved on provider failure
		return goerr.Wrap(err, "failed to list users from identity provider")
	}

	for _, u := range sourced {
		existing, err := w.repo.User().Get(ctx, u.ID)
		if err == nil && existing != nil {
			u.Type = existing.Type
			u.OrganisationID = existing.OrganisationID
			u.OrganisationUnitID = existing.OrganisationUnitID
			u.OrganisationRole = existing.OrganisationRole
		}
		u.UpdatedAt = startTime
	}

	if err := w.repo.User().SaveMany(ctx, sourced); err != nil {
		return goerr.Wrap(err, "failed to save directory users", goerr.V("count", len(sourced)))
	}

	logging.Default().Info("directory refresh completed",
		"count", len(sourced),
		"duration", time.Since(startTime).String())

	return nil
}
