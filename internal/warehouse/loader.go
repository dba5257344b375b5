// Package warehouse pulls six read-only reference tables from the analytical
// warehouse. It is strictly optional: any failure degrades to empty tables
// plus a warning, and the dashboard renders without the dependent charts.
package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	sf "github.com/snowflakedb/gosnowflake"

	"github.com/priyank-sharma/bharat-explorer/internal/config"
	"github.com/priyank-sharma/bharat-explorer/internal/observability"
)

type VisitorsRow struct {
	StateUT string  `json:"state_ut"`
	DTV2019 float64 `json:"dtvs_2019"`
	FTV2019 float64 `json:"ftvs_2019"`
	DTV2020 float64 `json:"dtvs_2020"`
	FTV2020 float64 `json:"ftvs_2020"`
	DTV2021 float64 `json:"dtvs_2021"`
	FTV2021 float64 `json:"ftvs_2021"`
}

type MonumentsRow struct {
	StateUT   string `json:"state_ut"`
	Monuments int64  `json:"monuments"`
}

// GIStateRow is geographical-indication registrations per state across nine
// fiscal years.
type GIStateRow struct {
	StateUT string    `json:"state_ut"`
	ByYear  []float64 `json:"by_year"`
	Total   float64   `json:"total"`
}

type GIYearRow struct {
	Year         string  `json:"year"`
	Applications float64 `json:"applications"`
}

type BudgetRow struct {
	Year        string  `json:"year"`
	Allocation  float64 `json:"allocation"`
	Expenditure float64 `json:"expenditure"`
}

type ASIVisitorsRow struct {
	Year     string  `json:"year"`
	Domestic float64 `json:"domestic_visitors"`
	Foreign  float64 `json:"foreign_visitors"`
}

// Tables is the full warehouse snapshot. Warning is non-empty when the
// loader degraded; the slices are then empty, never nil-panicky surprises.
type Tables struct {
	Visitors    []VisitorsRow    `json:"visitors"`
	Monuments   []MonumentsRow   `json:"monuments"`
	GIByState   []GIStateRow     `json:"gi_by_state"`
	GIByYear    []GIYearRow      `json:"gi_by_year"`
	Budget      []BudgetRow      `json:"budget"`
	ASIVisitors []ASIVisitorsRow `json:"asi_visitors"`
	Warning     string           `json:"warning,omitempty"`
}

func (t Tables) Empty() bool {
	return len(t.Visitors) == 0 && len(t.Monuments) == 0 && len(t.GIByState) == 0 &&
		len(t.GIByYear) == 0 && len(t.Budget) == 0 && len(t.ASIVisitors) == 0
}

type Loader struct {
	logger  *slog.Logger
	open    func() (*sql.DB, error)
	timeout time.Duration
}

func New(logger *slog.Logger, cfg config.WarehouseCfg, timeout time.Duration) *Loader {
	return &Loader{
		logger: logger,
		open: func() (*sql.DB, error) {
			dsn, err := sf.DSN(&sf.Config{
				User:      cfg.User,
				Password:  cfg.Password,
				Account:   cfg.Account,
				Warehouse: cfg.Warehouse,
				Database:  cfg.Database,
				Schema:    cfg.Schema,
			})
			if err != nil {
				return nil, fmt.Errorf("build dsn: %w", err)
			}
			db, err := sql.Open("snowflake", dsn)
			if err != nil {
				return nil, fmt.Errorf("open: %w", err)
			}
			return db, nil
		},
		timeout: timeout,
	}
}

// NewWithOpener is the seam used by tests to substitute the connection.
func NewWithOpener(logger *slog.Logger, open func() (*sql.DB, error), timeout time.Duration) *Loader {
	return &Loader{logger: logger, open: open, timeout: timeout}
}

// Load fetches all six tables. It never returns an error: on any failure the
// result carries empty tables and a user-facing warning.
func (l *Loader) Load(ctx context.Context) Tables {
	start := time.Now()
	t, err := l.load(ctx)
	observability.ObserveUpstreamLatency("warehouse", time.Since(start).Seconds())
	if err != nil {
		observability.IncUpstreamFailure("warehouse")
		if l.logger != nil {
			l.logger.Warn("warehouse load failed, serving without warehouse charts", "err", err)
		}
		return Tables{Warning: fmt.Sprintf("Error loading warehouse data: %v", err)}
	}
	return t
}

func (l *Loader) load(ctx context.Context) (Tables, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	db, err := l.open()
	if err != nil {
		return Tables{}, fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	var t Tables
	if t.Visitors, err = loadVisitors(ctx, db); err != nil {
		return Tables{}, err
	}
	if t.Monuments, err = loadMonuments(ctx, db); err != nil {
		return Tables{}, err
	}
	if t.GIByState, err = loadGIByState(ctx, db); err != nil {
		return Tables{}, err
	}
	if t.GIByYear, err = loadGIByYear(ctx, db); err != nil {
		return Tables{}, err
	}
	if t.Budget, err = loadBudget(ctx, db); err != nil {
		return Tables{}, err
	}
	if t.ASIVisitors, err = loadASIVisitors(ctx, db); err != nil {
		return Tables{}, err
	}
	return t, nil
}

func loadVisitors(ctx context.Context, db *sql.DB) ([]VisitorsRow, error) {
	const q = `
		SELECT STATE_UT, "DTVS_2019", "FTVS_2019", "DTVS_2020", "FTVS_2020", "DTVS_2021", "FTVS_2021"
		FROM TOURIST_VISITS`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("tourist visits: %w", err)
	}
	defer rows.Close()

	var out []VisitorsRow
	for rows.Next() {
		var r VisitorsRow
		var vals [6]sql.NullFloat64
		var state sql.NullString
		if err := rows.Scan(&state, &vals[0], &vals[1], &vals[2], &vals[3], &vals[4], &vals[5]); err != nil {
			return nil, fmt.Errorf("tourist visits scan: %w", err)
		}
		r.StateUT = state.String
		r.DTV2019, r.FTV2019 = vals[0].Float64, vals[1].Float64
		r.DTV2020, r.FTV2020 = vals[2].Float64, vals[3].Float64
		r.DTV2021, r.FTV2021 = vals[4].Float64, vals[5].Float64
		out = append(out, r)
	}
	return out, rows.Err()
}

func loadMonuments(ctx context.Context, db *sql.DB) ([]MonumentsRow, error) {
	const q = `SELECT STATE_UT, NOS_OF_MONUMENTS FROM MONUMENTS`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("monuments: %w", err)
	}
	defer rows.Close()

	var out []MonumentsRow
	for rows.Next() {
		var state sql.NullString
		var n sql.NullInt64
		if err := rows.Scan(&state, &n); err != nil {
			return nil, fmt.Errorf("monuments scan: %w", err)
		}
		out = append(out, MonumentsRow{StateUT: state.String, Monuments: n.Int64})
	}
	return out, rows.Err()
}

func loadGIByState(ctx context.Context, db *sql.DB) ([]GIStateRow, error) {
	const q = `
		SELECT STATE_UT, "YEAR_2014_2015", "YEAR_2015_2016", "YEAR_2016_2017", "YEAR_2017_2018",
		       "YEAR_2018_2019", "YEAR_2019_2020", "YEAR_2020_2021", "YEAR_2021_2022", "YEAR_2022_2023", TOTAL
		FROM HERITAGE_SITES`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("gi by state: %w", err)
	}
	defer rows.Close()

	var out []GIStateRow
	for rows.Next() {
		var state sql.NullString
		var years [9]sql.NullFloat64
		var total sql.NullFloat64
		if err := rows.Scan(&state,
			&years[0], &years[1], &years[2], &years[3], &years[4],
			&years[5], &years[6], &years[7], &years[8], &total); err != nil {
			return nil, fmt.Errorf("gi by state scan: %w", err)
		}
		r := GIStateRow{StateUT: state.String, Total: total.Float64, ByYear: make([]float64, len(years))}
		for i, y := range years {
			r.ByYear[i] = y.Float64
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func loadGIByYear(ctx context.Context, db *sql.DB) ([]GIYearRow, error) {
	const q = `SELECT YEAR, NO_OF_GI_APPLICATIONS FROM GI_APPLICATIONS`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("gi by year: %w", err)
	}
	defer rows.Close()

	var out []GIYearRow
	for rows.Next() {
		var year sql.NullString
		var n sql.NullFloat64
		if err := rows.Scan(&year, &n); err != nil {
			return nil, fmt.Errorf("gi by year scan: %w", err)
		}
		out = append(out, GIYearRow{Year: year.String, Applications: n.Float64})
	}
	return out, rows.Err()
}

func loadBudget(ctx context.Context, db *sql.DB) ([]BudgetRow, error) {
	const q = `SELECT YEAR, ALLOCATION, EXPENDITURE FROM BUDGET`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("budget: %w", err)
	}
	defer rows.Close()

	var out []BudgetRow
	for rows.Next() {
		var year sql.NullString
		var alloc, spent sql.NullFloat64
		if err := rows.Scan(&year, &alloc, &spent); err != nil {
			return nil, fmt.Errorf("budget scan: %w", err)
		}
		out = append(out, BudgetRow{Year: year.String, Allocation: alloc.Float64, Expenditure: spent.Float64})
	}
	return out, rows.Err()
}

// The ASI table's column naming has drifted across published revisions, so
// columns are located by normalized name instead of position.
func loadASIVisitors(ctx context.Context, db *sql.DB) ([]ASIVisitorsRow, error) {
	const q = `SELECT * FROM ASI_VISITORS`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("asi visitors: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("asi visitors columns: %w", err)
	}
	yearIdx := FindYearColumn(cols)
	domIdx := FindColumnContaining(cols, "domestic")
	forIdx := FindColumnContaining(cols, "foreign")
	if yearIdx < 0 {
		return nil, fmt.Errorf("asi visitors: no year-like column in %v", cols)
	}

	var out []ASIVisitorsRow
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("asi visitors scan: %w", err)
		}
		r := ASIVisitorsRow{Year: asString(raw[yearIdx])}
		if domIdx >= 0 {
			r.Domestic = asFloat(raw[domIdx])
		}
		if forIdx >= 0 {
			r.Foreign = asFloat(raw[forIdx])
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func asFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	default:
		return 0
	}
}
