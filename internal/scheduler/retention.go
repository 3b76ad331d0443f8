package scheduler

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/modules/snapshots"
)

// RetentionJob prunes stored snapshots past the retention window.
type RetentionJob struct {
	repo          *snapshots.Repository
	retentionDays int
	log           zerolog.Logger
}

// NewRetentionJob creates a retention job.
func NewRetentionJob(repo *snapshots.Repository, retentionDays int, log zerolog.Logger) *RetentionJob {
	return &RetentionJob{
		repo:          repo,
		retentionDays: retentionDays,
		log:           log.With().Str("job", "snapshot_retention").Logger(),
	}
}

// Name returns the job name
func (j *RetentionJob) Name() string {
	return "snapshot_retention"
}

// Run deletes snapshots older than the retention window
func (j *RetentionJob) Run() error {
	cutoff := time.Now().AddDate(0, 0, -j.retentionDays)

	pruned, err := j.repo.PruneOlderThan(cutoff)
	if err != nil {
		return err
	}

	if pruned > 0 {
		j.log.Info().
			Int64("pruned", pruned).
			Time("cutoff", cutoff).
			Msg("Pruned old snapshots")
	}
	return nil
}
