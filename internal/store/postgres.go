package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pbaille/blueprint/internal/domain"
)

//go:embed schema_postgres.sql
var postgresSchema string

// PostgresStore persists readings in PostgreSQL. Lists are text[] columns and
// the style and charm entries are jsonb.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres connects to dsn and makes sure the schema exists
func NewPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) RunInTx(ctx context.Context, fn func(w Writer) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(&postgresWriter{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type postgresWriter struct {
	q queryer
}

func (w *postgresWriter) InsertChart(ctx context.Context, chart *domain.Chart) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := w.q.ExecContext(ctx, `
		INSERT INTO birth_charts (`+chartColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, chart.FullName, chart.BirthDate.Format(dateLayout),
		nullable(chart.BirthTime), nullable(chart.BirthPlace),
		chart.ZodiacSign, chart.LifePathNumber, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert chart: %w", err)
	}

	chart.ID = id
	chart.CreatedAt = now
	return id, nil
}

func (w *postgresWriter) InsertInsights(ctx context.Context, insights *domain.Insights) (string, error) {
	if err := validateInsights(insights); err != nil {
		return "", err
	}

	styles, err := encodeJSON(insights.StyleSuggestions)
	if err != nil {
		return "", fmt.Errorf("encode style suggestions: %w", err)
	}
	charms, err := encodeJSON(insights.LuckyCharms)
	if err != nil {
		return "", fmt.Errorf("encode lucky charms: %w", err)
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	_, err = w.q.ExecContext(ctx, `
		INSERT INTO astrology_insights (`+insightsColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, id, insights.ChartID,
		pq.Array(insights.LuckyStones), pq.Array(insights.LuckyColors), pq.Array(insights.CareerMatches),
		pq.Array(insights.Strengths), pq.Array(insights.Weaknesses), pq.Array(insights.PartnerTraits),
		pq.Array(insights.CompatibleSigns), styles, charms, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert insights: %w", err)
	}

	insights.ID = id
	insights.CreatedAt = now
	return id, nil
}

func (s *PostgresStore) GetChart(ctx context.Context, id string) (*domain.Chart, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	row := s.db.QueryRowContext(ctx, "SELECT "+chartColumns+" FROM birth_charts WHERE id = $1", id)
	chart, err := scanPostgresChart(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get chart: %w", err)
	}
	return chart, nil
}

func (s *PostgresStore) GetInsightsByChart(ctx context.Context, chartID string) (*domain.Insights, error) {
	if _, err := uuid.Parse(chartID); err != nil {
		return nil, ErrNotFound
	}
	row := s.db.QueryRowContext(ctx,
		"SELECT "+insightsColumns+" FROM astrology_insights WHERE chart_id = $1 ORDER BY created_at LIMIT 1",
		chartID,
	)
	insights, err := scanPostgresInsights(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get insights: %w", err)
	}
	return insights, nil
}

func (s *PostgresStore) GetReading(ctx context.Context, chartID string) (*domain.Reading, error) {
	chart, err := s.GetChart(ctx, chartID)
	if err != nil {
		return nil, err
	}
	insights, err := s.GetInsightsByChart(ctx, chartID)
	if err != nil {
		return nil, err
	}
	return &domain.Reading{Chart: *chart, Insights: *insights}, nil
}

func (s *PostgresStore) FindChartID(ctx context.Context, prefix string) (string, error) {
	if !isIDPrefix(prefix) {
		return "", ErrNotFound
	}
	prefix = strings.ToLower(prefix)
	var id string
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM birth_charts WHERE id::text LIKE $1 ORDER BY id::text = $2 DESC, created_at DESC LIMIT 1",
		prefix+"%", prefix,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find chart id: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) ListCharts(ctx context.Context, limit, offset int) ([]domain.Chart, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+chartColumns+" FROM birth_charts ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list charts: %w", err)
	}
	return collectPostgresCharts(rows)
}

func (s *PostgresStore) SearchCharts(ctx context.Context, query string) ([]domain.Chart, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+chartColumns+" FROM birth_charts WHERE full_name ILIKE $1 ORDER BY created_at DESC",
		"%"+query+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("search charts: %w", err)
	}
	return collectPostgresCharts(rows)
}

func (s *PostgresStore) AllReadings(ctx context.Context) ([]domain.Reading, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.full_name, c.birth_date, c.birth_time, c.birth_place, c.zodiac_sign, c.life_path_number, c.created_at,
		       i.id, i.chart_id, i.lucky_stones, i.lucky_colors, i.career_matches, i.strengths, i.weaknesses,
		       i.partner_traits, i.compatible_signs, i.style_suggestions, i.lucky_charms, i.created_at
		FROM birth_charts c
		JOIN astrology_insights i ON i.chart_id = c.id
		ORDER BY c.created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("all readings: %w", err)
	}
	defer rows.Close()

	var readings []domain.Reading
	for rows.Next() {
		var c postgresChartRow
		var i postgresInsightsRow
		if err := rows.Scan(append(c.dest(), i.dest()...)...); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		insights, err := i.toInsights()
		if err != nil {
			return nil, err
		}
		readings = append(readings, domain.Reading{Chart: c.toChart(), Insights: *insights})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("all readings: %w", err)
	}
	return readings, nil
}

type postgresChartRow struct {
	id, fullName, sign    string
	birthDate, createdAt  time.Time
	birthTime, birthPlace sql.NullString
	lifePath              int
}

func (r *postgresChartRow) dest() []any {
	return []any{&r.id, &r.fullName, &r.birthDate, &r.birthTime, &r.birthPlace, &r.sign, &r.lifePath, &r.createdAt}
}

func (r *postgresChartRow) toChart() domain.Chart {
	return domain.Chart{
		ID:             r.id,
		FullName:       r.fullName,
		BirthDate:      time.Date(r.birthDate.Year(), r.birthDate.Month(), r.birthDate.Day(), 0, 0, 0, 0, time.UTC),
		BirthTime:      fromNullable(r.birthTime),
		BirthPlace:     fromNullable(r.birthPlace),
		ZodiacSign:     r.sign,
		LifePathNumber: r.lifePath,
		CreatedAt:      r.createdAt,
	}
}

type postgresInsightsRow struct {
	insights       domain.Insights
	styles, charms []byte
}

func (r *postgresInsightsRow) dest() []any {
	in := &r.insights
	return []any{
		&in.ID, &in.ChartID,
		pq.Array(&in.LuckyStones), pq.Array(&in.LuckyColors), pq.Array(&in.CareerMatches),
		pq.Array(&in.Strengths), pq.Array(&in.Weaknesses), pq.Array(&in.PartnerTraits),
		pq.Array(&in.CompatibleSigns), &r.styles, &r.charms, &in.CreatedAt,
	}
}

func (r *postgresInsightsRow) toInsights() (*domain.Insights, error) {
	if err := decodeJSON(r.styles, &r.insights.StyleSuggestions); err != nil {
		return nil, fmt.Errorf("decode style suggestions: %w", err)
	}
	if err := decodeJSON(r.charms, &r.insights.LuckyCharms); err != nil {
		return nil, fmt.Errorf("decode lucky charms: %w", err)
	}
	return &r.insights, nil
}

func scanPostgresChart(row scanner) (*domain.Chart, error) {
	var r postgresChartRow
	if err := row.Scan(r.dest()...); err != nil {
		return nil, err
	}
	chart := r.toChart()
	return &chart, nil
}

func scanPostgresInsights(row scanner) (*domain.Insights, error) {
	var r postgresInsightsRow
	if err := row.Scan(r.dest()...); err != nil {
		return nil, err
	}
	return r.toInsights()
}

func collectPostgresCharts(rows *sql.Rows) ([]domain.Chart, error) {
	defer rows.Close()

	var charts []domain.Chart
	for rows.Next() {
		c, err := scanPostgresChart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chart: %w", err)
		}
		charts = append(charts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan chart: %w", err)
	}
	return charts, nil
}
