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
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbaille/blueprint/internal/domain"
)

//go:embed schema.sql
var schema string

const chartColumns = "id, full_name, birth_date, birth_time, birth_place, zodiac_sign, life_path_number, created_at"

const insightsColumns = "id, chart_id, lucky_stones, lucky_colors, career_matches, strengths, weaknesses, " +
	"partner_traits, compatible_signs, style_suggestions, lucky_charms, created_at"

// SQLiteStore handles database operations on a local sqlite file
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at dbPath
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", sqliteDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Initialize schema
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func sqliteDSN(dbPath string) string {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + "_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RunInTx runs fn with a writer bound to one transaction. The transaction
// commits only if fn returns nil.
func (s *SQLiteStore) RunInTx(ctx context.Context, fn func(w Writer) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(&sqliteWriter{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type sqliteWriter struct {
	q queryer
}

// InsertChart stores the parent row and returns its generated id
func (w *sqliteWriter) InsertChart(ctx context.Context, chart *domain.Chart) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := w.q.ExecContext(ctx,
		"INSERT INTO birth_charts ("+chartColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		id, chart.FullName, chart.BirthDate.Format(dateLayout),
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

// InsertInsights stores the child row referencing insights.ChartID
func (w *sqliteWriter) InsertInsights(ctx context.Context, insights *domain.Insights) (string, error) {
	if err := validateInsights(insights); err != nil {
		return "", err
	}

	cols := make([]any, 0, 9)
	for _, v := range []any{
		insights.LuckyStones, insights.LuckyColors, insights.CareerMatches,
		insights.Strengths, insights.Weaknesses, insights.PartnerTraits,
		insights.CompatibleSigns, insights.StyleSuggestions, insights.LuckyCharms,
	} {
		encoded, err := encodeJSON(v)
		if err != nil {
			return "", fmt.Errorf("encode insights: %w", err)
		}
		cols = append(cols, encoded)
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	args := append([]any{id, insights.ChartID}, cols...)
	args = append(args, now)

	_, err := w.q.ExecContext(ctx,
		"INSERT INTO astrology_insights ("+insightsColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		args...,
	)
	if err != nil {
		return "", fmt.Errorf("insert insights: %w", err)
	}

	insights.ID = id
	insights.CreatedAt = now
	return id, nil
}

// GetChart retrieves a chart by its full id
func (s *SQLiteStore) GetChart(ctx context.Context, id string) (*domain.Chart, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+chartColumns+" FROM birth_charts WHERE id = ?", id)
	chart, err := scanSQLiteChart(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get chart: %w", err)
	}
	return chart, nil
}

// GetInsightsByChart retrieves the insights row linked to a chart
func (s *SQLiteStore) GetInsightsByChart(ctx context.Context, chartID string) (*domain.Insights, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+insightsColumns+" FROM astrology_insights WHERE chart_id = ? ORDER BY created_at LIMIT 1",
		chartID,
	)
	insights, err := scanSQLiteInsights(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get insights: %w", err)
	}
	return insights, nil
}

// GetReading retrieves a chart with its insights
func (s *SQLiteStore) GetReading(ctx context.Context, chartID string) (*domain.Reading, error) {
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

// FindChartID resolves an id prefix to the newest matching chart id
func (s *SQLiteStore) FindChartID(ctx context.Context, prefix string) (string, error) {
	if !isIDPrefix(prefix) {
		return "", ErrNotFound
	}
	var id string
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM birth_charts WHERE id LIKE ? ORDER BY id = ? DESC, created_at DESC LIMIT 1",
		strings.ToLower(prefix)+"%", strings.ToLower(prefix),
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find chart id: %w", err)
	}
	return id, nil
}

// ListCharts returns recent charts with pagination
func (s *SQLiteStore) ListCharts(ctx context.Context, limit, offset int) ([]domain.Chart, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+chartColumns+" FROM birth_charts ORDER BY created_at DESC LIMIT ? OFFSET ?",
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list charts: %w", err)
	}
	return collectSQLiteCharts(rows)
}

// SearchCharts performs a simple name search
func (s *SQLiteStore) SearchCharts(ctx context.Context, query string) ([]domain.Chart, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+chartColumns+" FROM birth_charts WHERE full_name LIKE ? ORDER BY created_at DESC",
		"%"+query+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("search charts: %w", err)
	}
	return collectSQLiteCharts(rows)
}

// AllReadings returns every chart that has insights, oldest first
func (s *SQLiteStore) AllReadings(ctx context.Context) ([]domain.Reading, error) {
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
		var c sqliteChartRow
		var i sqliteInsightsRow
		if err := rows.Scan(append(c.dest(), i.dest()...)...); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		chart, err := c.toChart()
		if err != nil {
			return nil, err
		}
		insights, err := i.toInsights()
		if err != nil {
			return nil, err
		}
		readings = append(readings, domain.Reading{Chart: *chart, Insights: *insights})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("all readings: %w", err)
	}

	return readings, nil
}

type sqliteChartRow struct {
	id, fullName, birthDate, sign string
	birthTime, birthPlace         sql.NullString
	lifePath                      int
	createdAt                     time.Time
}

func (r *sqliteChartRow) dest() []any {
	return []any{&r.id, &r.fullName, &r.birthDate, &r.birthTime, &r.birthPlace, &r.sign, &r.lifePath, &r.createdAt}
}

func (r *sqliteChartRow) toChart() (*domain.Chart, error) {
	birthDate, err := parseStoredDate(r.birthDate)
	if err != nil {
		return nil, err
	}
	return &domain.Chart{
		ID:             r.id,
		FullName:       r.fullName,
		BirthDate:      birthDate,
		BirthTime:      fromNullable(r.birthTime),
		BirthPlace:     fromNullable(r.birthPlace),
		ZodiacSign:     r.sign,
		LifePathNumber: r.lifePath,
		CreatedAt:      r.createdAt,
	}, nil
}

type sqliteInsightsRow struct {
	id, chartID string
	lists       [7]string
	styles      string
	charms      string
	createdAt   time.Time
}

func (r *sqliteInsightsRow) dest() []any {
	d := []any{&r.id, &r.chartID}
	for i := range r.lists {
		d = append(d, &r.lists[i])
	}
	return append(d, &r.styles, &r.charms, &r.createdAt)
}

func (r *sqliteInsightsRow) toInsights() (*domain.Insights, error) {
	insights := &domain.Insights{ID: r.id, ChartID: r.chartID, CreatedAt: r.createdAt}
	targets := []*[]string{
		&insights.LuckyStones, &insights.LuckyColors, &insights.CareerMatches,
		&insights.Strengths, &insights.Weaknesses, &insights.PartnerTraits,
		&insights.CompatibleSigns,
	}
	for i, target := range targets {
		if err := decodeJSON([]byte(r.lists[i]), target); err != nil {
			return nil, fmt.Errorf("decode insights: %w", err)
		}
	}
	if err := decodeJSON([]byte(r.styles), &insights.StyleSuggestions); err != nil {
		return nil, fmt.Errorf("decode style suggestions: %w", err)
	}
	if err := decodeJSON([]byte(r.charms), &insights.LuckyCharms); err != nil {
		return nil, fmt.Errorf("decode lucky charms: %w", err)
	}
	return insights, nil
}

func scanSQLiteChart(row scanner) (*domain.Chart, error) {
	var r sqliteChartRow
	if err := row.Scan(r.dest()...); err != nil {
		return nil, err
	}
	return r.toChart()
}

func scanSQLiteInsights(row scanner) (*domain.Insights, error) {
	var r sqliteInsightsRow
	if err := row.Scan(r.dest()...); err != nil {
		return nil, err
	}
	return r.toInsights()
}

func collectSQLiteCharts(rows *sql.Rows) ([]domain.Chart, error) {
	defer rows.Close()

	var charts []domain.Chart
	for rows.Next() {
		c, err := scanSQLiteChart(rows)
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
