package snapshotting

import (
	"time"

	"github.com/vfg2006/ad-analyst-api/internal/domain"
)

// Snapshotter captura e consulta os retratos diários da conta e da saúde de
// eventos. As capturas são idempotentes por data.
type Snapshotter interface {
	CreateDailySnapshot(date time.Time) (*domain.AccountSnapshot, error)
	CreateEventsHealthSnapshot(date time.Time) (*domain.EventsHealth, error)
	ListSnapshots(limit int) ([]*domain.AccountSnapshot, error)
}
