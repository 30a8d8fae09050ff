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
	snapshotsTable   = "ad_account_snapshots s"
	snapshotsColumns = "s.id, s.account_id, s.snapshot_date, s.spend, s.impressions, s.clicks, s.reach, s.frequency, s.cpm, s.cpc, s.ctr, s.standard_attribution, s.incremental_attribution, s.raw_data, s.created_at"
)

// SnapshotRepository dá acesso aos snapshots diários de métricas da conta.
// Snapshots são únicos por (account_id, snapshot_date); a constraint do banco
// é a garantia real de unicidade.
type SnapshotRepository interface {
	GetByAccountAndDate(accountID string, date time.Time) (*domain.AccountSnapshot, error)
	GetMostRecentAt(date time.Time) (*domain.AccountSnapshot, error)
	GetMostRecentBefore(accountID string, date time.Time) (*domain.AccountSnapshot, error)
	GetWindow(accountID string, start, end time.Time, limit int) ([]*domain.AccountSnapshot, error)
	ListUpTo(accountID string, date time.Time) ([]*domain.AccountSnapshot, error)
	List(limit int) ([]*domain.AccountSnapshot, error)
	Insert(snapshot *domain.AccountSnapshot) error
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) GetByAccountAndDate(accountID string, date time.Time) (*domain.AccountSnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotsColumns).
		From(snapshotsTable).
		Where(squirrel.Eq{"s.account_id": accountID, "s.snapshot_date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getOne(query, args)
}

// GetMostRecentAt retorna o snapshot mais recente com data <= date,
// independente da conta. Usado para resolver a âncora do contexto.
func (r *snapshotRepository) GetMostRecentAt(date time.Time) (*domain.AccountSnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotsColumns).
		From(snapshotsTable).
		Where(squirrel.LtOrEq{"s.snapshot_date": date.Format("2006-01-02")}).
		OrderBy("s.snapshot_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getOne(query, args)
}

func (r *snapshotRepository) GetMostRecentBefore(accountID string, date time.Time) (*domain.AccountSnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotsColumns).
		From(snapshotsTable).
		Where(squirrel.Eq{"s.account_id": accountID}).
		Where(squirrel.Lt{"s.snapshot_date": date.Format("2006-01-02")}).
		OrderBy("s.snapshot_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getOne(query, args)
}

// GetWindow retorna os snapshots com data em [start, end), do mais recente
// para o mais antigo, limitado a limit registros
func (r *snapshotRepository) GetWindow(accountID string, start, end time.Time, limit int) ([]*domain.AccountSnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotsColumns).
		From(snapshotsTable).
		Where(squirrel.Eq{"s.account_id": accountID}).
		Where(squirrel.GtOrEq{"s.snapshot_date": start.Format("2006-01-02")}).
		Where(squirrel.Lt{"s.snapshot_date": end.Format("2006-01-02")}).
		OrderBy("s.snapshot_date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getMany(query, args)
}

// ListUpTo retorna todo o histórico da conta com data <= date, descendente
func (r *snapshotRepository) ListUpTo(accountID string, date time.Time) ([]*domain.AccountSnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotsColumns).
		From(snapshotsTable).
		Where(squirrel.Eq{"s.account_id": accountID}).
		Where(squirrel.LtOrEq{"s.snapshot_date": date.Format("2006-01-02")}).
		OrderBy("s.snapshot_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getMany(query, args)
}

func (r *snapshotRepository) List(limit int) ([]*domain.AccountSnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotsColumns).
		From(snapshotsTable).
		OrderBy("s.snapshot_date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getMany(query, args)
}

// Insert grava um novo snapshot. Violações da chave única (account_id,
// snapshot_date) retornam domain.ErrAlreadyExists.
func (r *snapshotRepository) Insert(snapshot *domain.AccountSnapshot) error {
	standardJSON, err := marshalNullable(snapshot.StandardAttribution)
	if err != nil {
		return fmt.Errorf("erro ao serializar atribuição padrão para JSON: %w", err)
	}

	incrementalJSON, err := marshalNullable(snapshot.IncrementalAttribution)
	if err != nil {
		return fmt.Errorf("erro ao serializar atribuição incremental para JSON: %w", err)
	}

	rawJSON, err := marshalNullable(snapshot.RawData)
	if err != nil {
		return fmt.Errorf("erro ao serializar dados brutos para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("ad_account_snapshots").
		Columns("account_id", "snapshot_date", "spend", "impressions", "clicks", "reach", "frequency", "cpm", "cpc", "ctr", "standard_attribution", "incremental_attribution", "raw_data").
		Values(
			snapshot.AccountID,
			snapshot.Date.Format("2006-01-02"),
			snapshot.Spend,
			snapshot.Impressions,
			snapshot.Clicks,
			snapshot.Reach,
			snapshot.Frequency,
			snapshot.CPM,
			snapshot.CPC,
			snapshot.CTR,
			standardJSON,
			incrementalJSON,
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

func (r *snapshotRepository) getOne(query string, args []interface{}) (*domain.AccountSnapshot, error) {
	row := r.conn.QueryRow(query, args...)

	snapshot, err := scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *snapshotRepository) getMany(query string, args []interface{}) ([]*domain.AccountSnapshot, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.AccountSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// scanner cobre sql.Row e sql.Rows para reutilizar o scan
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(sc scanner) (*domain.AccountSnapshot, error) {
	snapshot := &domain.AccountSnapshot{}
	var standardJSON, incrementalJSON, rawJSON []byte

	err := sc.Scan(
		&snapshot.ID,
		&snapshot.AccountID,
		&snapshot.Date,
		&snapshot.Spend,
		&snapshot.Impressions,
		&snapshot.Clicks,
		&snapshot.Reach,
		&snapshot.Frequency,
		&snapshot.CPM,
		&snapshot.CPC,
		&snapshot.CTR,
		&standardJSON,
		&incrementalJSON,
		&rawJSON,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalNullable(standardJSON, &snapshot.StandardAttribution); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de standard_attribution: %w", err)
	}

	if err := unmarshalNullable(incrementalJSON, &snapshot.IncrementalAttribution); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de incremental_attribution: %w", err)
	}

	if err := unmarshalNullable(rawJSON, &snapshot.RawData); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de raw_data: %w", err)
	}

	return snapshot, nil
}

func marshalNullable(data map[string]any) ([]byte, error) {
	if data == nil {
		return nil, nil
	}
	return json.Marshal(data)
}

func unmarshalNullable(raw []byte, dest *map[string]any) error {
	if raw == nil {
		return nil
	}
	return json.Unmarshal(raw, dest)
}
