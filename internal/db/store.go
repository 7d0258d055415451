package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/gyeongsan/ansimtalk-backend/internal/models"
)

var ErrNotFound = errors.New("not found")

// Store is the local report store. Reports live in a single SQLite file
// (or in memory for tests); there is no durable multi-node persistence.
type Store struct {
	DB *sql.DB
}

func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	s := &Store{DB: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS reports (
			id              TEXT PRIMARY KEY,
			user_id         TEXT NOT NULL,
			created_at      TIMESTAMP NOT NULL,
			lat             REAL NOT NULL,
			lng             REAL NOT NULL,
			address         TEXT,
			accuracy_m      REAL,
			admin_area      TEXT,
			road_name       TEXT,
			location_source TEXT,
			image           TEXT,
			description     TEXT,
			status          TEXT NOT NULL,
			category        TEXT NOT NULL,
			subcategory     TEXT,
			urgency         TEXT,
			department      TEXT,
			department_code TEXT,
			ai_confidence   REAL,
			ai_reasoning    TEXT,
			risk_score      INTEGER,
			priority        INTEGER
		)`)
	return err
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

const reportColumns = `id, user_id, created_at, lat, lng, address, accuracy_m, admin_area, road_name, location_source,
	image, description, status, category, subcategory, urgency, department, department_code,
	ai_confidence, ai_reasoning, risk_score, priority`

func (s *Store) InsertReport(ctx context.Context, r models.ComplaintReport) error {
	_, err := s.DB.ExecContext(ctx, `INSERT INTO reports (`+reportColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.UserID, r.CreatedAt, r.Location.Lat, r.Location.Lng, r.Location.Address,
		r.Location.AccuracyM, r.Location.AdminArea, r.Location.RoadName, r.Location.Source,
		r.Image, r.Description, string(r.Status), string(r.Category), r.Subcategory, string(r.Urgency),
		r.Department, r.DepartmentCode, r.AIConfidence, r.AIReasoning, r.RiskScore, r.Priority)
	return err
}

// ListReports returns reports newest first, optionally filtered by status
// and/or category.
func (s *Store) ListReports(ctx context.Context, status string, category string) ([]models.ComplaintReport, error) {
	query := `SELECT ` + reportColumns + ` FROM reports`
	var args []any
	var wheres []string
	if status != "" {
		args = append(args, status)
		wheres = append(wheres, "status = ?")
	}
	if category != "" {
		args = append(args, category)
		wheres = append(wheres, "category = ?")
	}
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ComplaintReport
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetReport(ctx context.Context, id string) (models.ComplaintReport, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = ?`, id)
	r, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ComplaintReport{}, ErrNotFound
	}
	return r, err
}

func (s *Store) UpdateReportStatus(ctx context.Context, id string, status models.ComplaintStatus) error {
	res, err := s.DB.ExecContext(ctx, `UPDATE reports SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (models.ComplaintReport, error) {
	var r models.ComplaintReport
	var status, category, urgency string
	err := row.Scan(&r.ID, &r.UserID, &r.CreatedAt,
		&r.Location.Lat, &r.Location.Lng, &r.Location.Address, &r.Location.AccuracyM,
		&r.Location.AdminArea, &r.Location.RoadName, &r.Location.Source,
		&r.Image, &r.Description, &status, &category, &r.Subcategory, &urgency,
		&r.Department, &r.DepartmentCode, &r.AIConfidence, &r.AIReasoning, &r.RiskScore, &r.Priority)
	if err != nil {
		return models.ComplaintReport{}, err
	}
	r.Status = models.ComplaintStatus(status)
	r.Category = models.ComplaintCategory(category)
	r.Urgency = models.Urgency(urgency)
	return r, nil
}
