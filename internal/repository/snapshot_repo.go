package repository

import (
	"context"

	"github.com/lingora-app/lingora-api/internal/models"
)

// SnapshotRepository persists the whole domain snapshot as one document.
// Load must succeed with a default snapshot when no document exists yet.
type SnapshotRepository interface {
	Load(ctx context.Context) (models.Snapshot, error)
	Save(ctx context.Context, snapshot models.Snapshot) error
}
