package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-analyst-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-analyst-api/internal/domain"
)

const (
	eventsHealthTable   = "events_manager_health eh"
	eventsHealthColumns = "eh.id, eh.snapshot_date, eh.pixel_id, eh.events_received, eh.events_dropped, eh.events_duplicate, eh.events_matched, eh.quality_score, eh.diagnostics, eh.raw_data, eh.created_at"
)

// EventsHealthRepository dá acesso às leituras diárias de saúde do
// rastreamento de eventos (pixel)
type EventsHealthRepository interface {
	GetAt(date time.Time) (*domain.EventsHealth, error)
	GetMostRecentBetween(start, end time.Time) (*domain.EventsHealth, error)
	GetWindow(start, end time.Time, limit int) ([]*domain.EventsHealth, error)
	Insert(health *domain.EventsHealth) error
}

type eventsHealthRepository struct {
	conn *postgres.Connection
}

func NewEventsHealthRepository(conn *postgres.Connection) EventsHealthRepository {
	return &eventsHealthRepository{
		conn: conn,
	}
}

func (r *eventsHealthRepository) GetAt(date time.Time) (*domain.EventsHealth, error) {
	query, args, err := squirrel.
		Select(eventsHealthColumns).
		From(eventsHealthTable).
		Where(squirrel.Eq{"eh.snapshot_date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getOne(query, args)
}

// GetMostRecentBetween retorna a leitura mais recente com data em [start, end]
func (r *eventsHealthRepository) GetMostRecentBetween(start, end time.Time) (*domain.EventsHealth, error) {
	query, args, err := squirrel.
		Select(eventsHealthColumns).
		From(eventsHealthTable).
		Where(squirrel.GtOrEq{"eh.snapshot_date": start.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"eh.snapshot_date": end.Format("2006-01-02")}).
		OrderBy("eh.snapshot_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getOne(query, args)
}

// GetWindow retorna as leituras com data em [start, end), descendente
func (r *eventsHealthRepository) GetWindow(start, end time.Time, limit int) ([]*domain.EventsHealth, error) {
	query, args, err := squirrel.
		Select(eventsHealthColumns).
		From(eventsHealthTable).
		Where(squirrel.GtOrEq{"eh.snapshot_date": start.Format("2006-01-02")}).
		Where(squirrel.Lt{"eh.snapshot_date": end.Format("2006-01-02")}).
		OrderBy("eh.snapshot_date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	healths := make([]*domain.EventsHealth, 0)
	for rows.Next() {
		health, err := scanEventsHealth(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear leituras de saúde: %w", err)
		}
		healths = append(healths, health)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return healths, nil
}

func (r *eventsHealthRepository) Insert(health *domain.EventsHealth) error {
	diagnosticsJSON, err := marshalNullableRates(health.Diagnostics)
	if err != nil {
		return fmt.Errorf("erro ao serializar diagnósticos para JSON: %w", err)
	}

	rawJSON, err := marshalNullable(health.RawData)
	if err != nil {
		return fmt.Errorf("erro ao serializar dados brutos para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("events_manager_health").
		Columns("snapshot_date", "pixel_id", "events_received", "events_dropped", "events_duplicate", "events_matched", "quality_score", "diagnostics", "raw_data").
		Values(
			health.Date.Format("2006-01-02"),
			health.PixelID,
			health.EventsReceived,
			health.EventsDropped,
			health.EventsDuplicate,
			health.EventsMatched,
			health.QualityScore,
			diagnosticsJSON,
			rawJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *eventsHealthRepository) getOne(query string, args []interface{}) (*domain.EventsHealth, error) {
	row := r.conn.QueryRow(query, args...)

	health, err := scanEventsHealth(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear leitura de saúde: %w", err)
	}

	return health, nil
}

func scanEventsHealth(sc scanner) (*domain.EventsHealth, error) {
	health := &domain.EventsHealth{}
	var diagnosticsJSON, rawJSON []byte

	err := sc.Scan(
		&health.ID,
		&health.Date,
		&health.PixelID,
		&health.EventsReceived,
		&health.EventsDropped,
		&health.EventsDuplicate,
		&health.EventsMatched,
		&health.QualityScore,
		&diagnosticsJSON,
		&rawJSON,
		&health.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if diagnosticsJSON != nil {
		if err := json.Unmarshal(diagnosticsJSON, &health.Diagnostics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de diagnostics: %w", err)
		}
	}

	if err := unmarshalNullable(rawJSON, &health.RawData); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de raw_data: %w", err)
	}

	return health, nil
}

func marshalNullableRates(rates map[string]float64) ([]byte, error) {
	if rates == nil {
		return nil, nil
	}
	return json.Marshal(rates)
}
