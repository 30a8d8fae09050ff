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
	overviewsTable   = "daily_overviews ov"
	overviewsColumns = "ov.id, ov.overview_date, ov.summary, ov.key_changes, ov.insights, ov.recommendations, ov.generated_at"
)

// OverviewRepository dá acesso aos resumos diários gerados pelo modelo.
// A coluna overview_date tem constraint de unicidade: é ela que sustenta a
// idempotência da geração.
type OverviewRepository interface {
	GetByDate(date time.Time) (*domain.DailyOverview, error)
	List(limit int) ([]*domain.DailyOverview, error)
	Insert(overview *domain.DailyOverview) error
}

type overviewRepository struct {
	conn *postgres.Connection
}

func NewOverviewRepository(conn *postgres.Connection) OverviewRepository {
	return &overviewRepository{
		conn: conn,
	}
}

func (r *overviewRepository) GetByDate(date time.Time) (*domain.DailyOverview, error) {
	query, args, err := squirrel.
		Select(overviewsColumns).
		From(overviewsTable).
		Where(squirrel.Eq{"ov.overview_date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	overview, err := scanOverview(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear resumo: %w", err)
	}

	return overview, nil
}

func (r *overviewRepository) List(limit int) ([]*domain.DailyOverview, error) {
	query, args, err := squirrel.
		Select(overviewsColumns).
		From(overviewsTable).
		OrderBy("ov.overview_date DESC").
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

	overviews := make([]*domain.DailyOverview, 0)
	for rows.Next() {
		overview, err := scanOverview(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumos: %w", err)
		}
		overviews = append(overviews, overview)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return overviews, nil
}

// Insert grava um novo resumo. Se já existir um registro para a mesma data,
// retorna domain.ErrAlreadyExists para o chamador reler o vencedor da corrida.
func (r *overviewRepository) Insert(overview *domain.DailyOverview) error {
	keyChangesJSON, err := json.Marshal(overview.KeyChanges)
	if err != nil {
		return fmt.Errorf("erro ao serializar mudanças para JSON: %w", err)
	}

	insightsJSON, err := json.Marshal(overview.Insights)
	if err != nil {
		return fmt.Errorf("erro ao serializar insights para JSON: %w", err)
	}

	recommendationsJSON, err := json.Marshal(overview.Recommendations)
	if err != nil {
		return fmt.Errorf("erro ao serializar recomendações para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("daily_overviews").
		Columns("overview_date", "summary", "key_changes", "insights", "recommendations").
		Values(
			overview.Date.Format("2006-01-02"),
			overview.Summary,
			keyChangesJSON,
			insightsJSON,
			recommendationsJSON,
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

func scanOverview(sc scanner) (*domain.DailyOverview, error) {
	overview := &domain.DailyOverview{}
	var keyChangesJSON, insightsJSON, recommendationsJSON []byte

	err := sc.Scan(
		&overview.ID,
		&overview.Date,
		&overview.Summary,
		&keyChangesJSON,
		&insightsJSON,
		&recommendationsJSON,
		&overview.GeneratedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(keyChangesJSON, &overview.KeyChanges); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de key_changes: %w", err)
	}

	if err := json.Unmarshal(insightsJSON, &overview.Insights); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de insights: %w", err)
	}

	if err := json.Unmarshal(recommendationsJSON, &overview.Recommendations); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de recommendations: %w", err)
	}

	return overview, nil
}
