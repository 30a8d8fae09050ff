package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-analyst-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-analyst-api/internal/domain"
)

const (
	diagnosticsTable   = "diagnostic_results dr"
	diagnosticsColumns = "dr.id, dr.diagnostic_date, dr.diagnostic_type, dr.metric_name, dr.current_value, dr.previous_value, dr.change_percentage, dr.severity, dr.confidence, dr.explanation, dr.recommendation, dr.metadata, dr.created_at"
)

// DiagnosticRepository dá acesso aos resultados de diagnóstico persistidos.
// O histórico é append-only: resultados nunca são atualizados nem removidos.
type DiagnosticRepository interface {
	GetByDate(date time.Time) ([]*domain.DiagnosticResult, error)
	ListRecent(until time.Time, diagnosticType *domain.DiagnosticType, limit int) ([]*domain.DiagnosticResult, error)
	Save(result *domain.DiagnosticResult) error
}

type diagnosticRepository struct {
	conn *postgres.Connection
}

func NewDiagnosticRepository(conn *postgres.Connection) DiagnosticRepository {
	return &diagnosticRepository{
		conn: conn,
	}
}

func (r *diagnosticRepository) GetByDate(date time.Time) ([]*domain.DiagnosticResult, error) {
	query, args, err := squirrel.
		Select(diagnosticsColumns).
		From(diagnosticsTable).
		Where(squirrel.Eq{"dr.diagnostic_date": date.Format("2006-01-02")}).
		OrderBy("dr.diagnostic_type ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getMany(query, args)
}

// ListRecent retorna os resultados mais recentes com data <= until,
// opcionalmente filtrados por categoria
func (r *diagnosticRepository) ListRecent(until time.Time, diagnosticType *domain.DiagnosticType, limit int) ([]*domain.DiagnosticResult, error) {
	builder := squirrel.
		Select(diagnosticsColumns).
		From(diagnosticsTable).
		Where(squirrel.LtOrEq{"dr.diagnostic_date": until.Format("2006-01-02")})

	if diagnosticType != nil {
		builder = builder.Where(squirrel.Eq{"dr.diagnostic_type": string(*diagnosticType)})
	}

	query, args, err := builder.
		OrderBy("dr.diagnostic_date DESC, dr.id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getMany(query, args)
}

func (r *diagnosticRepository) Save(result *domain.DiagnosticResult) error {
	metadataJSON, err := marshalNullable(result.Metadata)
	if err != nil {
		return fmt.Errorf("erro ao serializar metadados para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("diagnostic_results").
		Columns("diagnostic_date", "diagnostic_type", "metric_name", "current_value", "previous_value", "change_percentage", "severity", "confidence", "explanation", "recommendation", "metadata").
		Values(
			result.Date.Format("2006-01-02"),
			string(result.Type),
			result.MetricName,
			result.CurrentValue,
			result.PreviousValue,
			result.ChangePercentage,
			string(result.Severity),
			result.Confidence,
			result.Explanation,
			result.Recommendation,
			metadataJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *diagnosticRepository) getMany(query string, args []interface{}) ([]*domain.DiagnosticResult, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.DiagnosticResult, 0)
	for rows.Next() {
		result, err := scanDiagnostic(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear diagnósticos: %w", err)
		}
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}

func scanDiagnostic(sc scanner) (*domain.DiagnosticResult, error) {
	result := &domain.DiagnosticResult{}
	var diagnosticType, severity string
	var metadataJSON []byte

	err := sc.Scan(
		&result.ID,
		&result.Date,
		&diagnosticType,
		&result.MetricName,
		&result.CurrentValue,
		&result.PreviousValue,
		&result.ChangePercentage,
		&severity,
		&result.Confidence,
		&result.Explanation,
		&result.Recommendation,
		&metadataJSON,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	result.Type = domain.DiagnosticType(diagnosticType)
	result.Severity = domain.Severity(severity)

	if metadataJSON != nil {
		if err := json.Unmarshal(metadataJSON, &result.Metadata); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metadata: %w", err)
		}
	}

	return result, nil
}
