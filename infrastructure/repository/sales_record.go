// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vfg2006/furusato-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
)

const (
	salesRecordTable = "sales_records"
	platformTable    = "platforms"

	// Mesmos limites da leitura no Airtable
	maxSalesRecords    = 1000
	maxPlatformRecords = 100
)

// Schema cria as tabelas espelho do Airtable
const Schema = `
CREATE TABLE IF NOT EXISTS sales_records (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL DEFAULT '',
	user_id           TEXT NOT NULL DEFAULT '',
	product_name      TEXT NOT NULL DEFAULT '',
	category          TEXT NOT NULL DEFAULT '',
	amount            BIGINT NOT NULL DEFAULT 0,
	order_date        TEXT NOT NULL DEFAULT '',
	prefecture        TEXT NOT NULL DEFAULT '',
	age_group         TEXT NOT NULL DEFAULT '',
	gender            TEXT NOT NULL DEFAULT '',
	payment_method    TEXT NOT NULL DEFAULT '',
	status            TEXT NOT NULL DEFAULT '',
	platform_category TEXT[] NOT NULL DEFAULT '{}',
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS platforms (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL DEFAULT '',
	linked_records TEXT[] NOT NULL DEFAULT '{}',
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

var salesRecordColumns = []string{
	"id",
	"name",
	"user_id",
	"product_name",
	"category",
	"amount",
	"order_date",
	"prefecture",
	"age_group",
	"gender",
	"payment_method",
	"status",
	"platform_category",
}

type SalesRecordRepository interface {
	FetchSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
	FetchPlatforms(ctx context.Context) ([]domain.Platform, error)
	UpsertSalesRecords(ctx context.Context, q postgres.Queryer, records []domain.SalesRecord) error
	UpsertPlatforms(ctx context.Context, q postgres.Queryer, platforms []domain.Platform) error
	DeleteSalesRecordsNotIn(ctx context.Context, q postgres.Queryer, ids []string) (int64, error)
	DeletePlatformsNotIn(ctx context.Context, q postgres.Queryer, ids []string) (int64, error)
}

type salesRecordRepository struct {
	conn postgres.Queryer
}

func NewSalesRecordRepository(conn postgres.Queryer) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

// O espelho guarda no máximo o que a origem devolve (maxSalesRecords), então o
// LIMIT só protege contra tabelas povoadas por fora. A ordem é só para a leitura ser estável.
func selectSalesRecordsQuery() (string, []any, error) {
	return squirrel.
		Select(salesRecordColumns...).
		From(salesRecordTable).
		OrderBy("order_date ASC", "id ASC").
		Limit(maxSalesRecords).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func selectPlatformsQuery() (string, []any, error) {
	return squirrel.
		Select("id", "name", "linked_records").
		From(platformTable).
		OrderBy("id ASC").
		Limit(maxPlatformRecords).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *salesRecordRepository) FetchSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	sqlQuery, args, err := selectSalesRecordsQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		var s domain.SalesRecord
		var platformCategory pq.StringArray
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.UserID,
			&s.ProductName,
			&s.Category,
			&s.Amount,
			&s.OrderDate,
			&s.Prefecture,
			&s.AgeGroup,
			&s.Gender,
			&s.PaymentMethod,
			&s.Status,
			&platformCategory,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler registro de venda: %w", err)
		}
		s.PlatformCategory = platformCategory
		s.Normalize()
		records = append(records, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar registros de venda: %w", err)
	}

	return records, nil
}

func (r *salesRecordRepository) FetchPlatforms(ctx context.Context) ([]domain.Platform, error) {
	sqlQuery, args, err := selectPlatformsQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	platforms := make([]domain.Platform, 0)
	for rows.Next() {
		var p domain.Platform
		var linked pq.StringArray
		if err := rows.Scan(&p.ID, &p.Name, &linked); err != nil {
			return nil, fmt.Errorf("erro ao ler plataforma: %w", err)
		}
		p.LinkedRecords = linked
		p.Normalize()
		platforms = append(platforms, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar plataformas: %w", err)
	}

	return platforms, nil
}

func upsertSalesRecordsQuery(records []domain.SalesRecord) (string, []any, error) {
	builder := squirrel.
		Insert(salesRecordTable).
		Columns(salesRecordColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, s := range records {
		builder = builder.Values(
			s.ID,
			s.Name,
			s.UserID,
			s.ProductName,
			s.Category,
			s.Amount,
			s.OrderDate,
			s.Prefecture,
			s.AgeGroup,
			s.Gender,
			s.PaymentMethod,
			s.Status,
			pq.Array(s.PlatformCategory),
		)
	}

	return builder.Suffix(`ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		user_id = EXCLUDED.user_id,
		product_name = EXCLUDED.product_name,
		category = EXCLUDED.category,
		amount = EXCLUDED.amount,
		order_date = EXCLUDED.order_date,
		prefecture = EXCLUDED.prefecture,
		age_group = EXCLUDED.age_group,
		gender = EXCLUDED.gender,
		payment_method = EXCLUDED.payment_method,
		status = EXCLUDED.status,
		platform_category = EXCLUDED.platform_category,
		updated_at = NOW()`).ToSql()
}

func upsertPlatformsQuery(platforms []domain.Platform) (string, []any, error) {
	builder := squirrel.
		Insert(platformTable).
		Columns("id", "name", "linked_records").
		PlaceholderFormat(squirrel.Dollar)

	for _, p := range platforms {
		builder = builder.Values(p.ID, p.Name, pq.Array(p.LinkedRecords))
	}

	return builder.Suffix(`ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		linked_records = EXCLUDED.linked_records,
		updated_at = NOW()`).ToSql()
}

// UpsertSalesRecords grava os registros usando q, que pode ser uma transação
func (r *salesRecordRepository) UpsertSalesRecords(ctx context.Context, q postgres.Queryer, records []domain.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}
	if q == nil {
		q = r.conn
	}

	sqlQuery, args, err := upsertSalesRecordsQuery(records)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao gravar registros de venda: %w", err)
	}

	return nil
}

// UpsertPlatforms grava as plataformas usando q, que pode ser uma transação
func (r *salesRecordRepository) UpsertPlatforms(ctx context.Context, q postgres.Queryer, platforms []domain.Platform) error {
	if len(platforms) == 0 {
		return nil
	}
	if q == nil {
		q = r.conn
	}

	sqlQuery, args, err := upsertPlatformsQuery(platforms)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao gravar plataformas: %w", err)
	}

	return nil
}

func deleteNotInQuery(table string, ids []string) (string, []any, error) {
	return squirrel.
		Delete(table).
		Where(squirrel.Expr("NOT (id = ANY(?))", pq.Array(ids))).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *salesRecordRepository) deleteNotIn(ctx context.Context, q postgres.Queryer, table string, ids []string) (int64, error) {
	if q == nil {
		q = r.conn
	}

	sqlQuery, args, err := deleteNotInQuery(table, ids)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover linhas de %s: %w", table, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao contar linhas removidas de %s: %w", table, err)
	}

	return removed, nil
}

// DeleteSalesRecordsNotIn remove os registros que não vieram na última leitura da origem.
// Com ids vazio a tabela inteira é limpa.
func (r *salesRecordRepository) DeleteSalesRecordsNotIn(ctx context.Context, q postgres.Queryer, ids []string) (int64, error) {
	return r.deleteNotIn(ctx, q, salesRecordTable, ids)
}

func (r *salesRecordRepository) DeletePlatformsNotIn(ctx context.Context, q postgres.Queryer, ids []string) (int64, error) {
	return r.deleteNotIn(ctx, q, platformTable, ids)
}
