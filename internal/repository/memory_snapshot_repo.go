package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lingora-app/lingora-api/internal/models"
)

// MemorySnapshotRepository keeps the snapshot in process memory. It backs
// tests and local development when no Redis URL is configured.
type MemorySnapshotRepository struct {
	mu      sync.Mutex
	payload []byte

	// FailSaves makes Save return an error, for exercising the
	// commit-failure policy in tests.
	FailSaves bool
	SaveCalls int
}

// NewMemorySnapshotRepository constructs an empty in-memory repository.
func NewMemorySnapshotRepository() *MemorySnapshotRepository {
	return &MemorySnapshotRepository{}
}

func (m *MemorySnapshotRepository) Load(ctx context.Context) (models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var snapshot models.Snapshot
	if m.payload != nil {
		if err := json.Unmarshal(m.payload, &snapshot); err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
		}
	}
	snapshot.ApplyDefaults()
	return snapshot, nil
}

func (m *MemorySnapshotRepository) Save(ctx context.Context, snapshot models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveCalls++
	if m.FailSaves {
		return fmt.Errorf("snapshot store unavailable")
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	m.payload = payload
	return nil
}
