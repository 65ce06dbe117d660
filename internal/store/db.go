package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"geo-density-pipeline/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the sqlite database and creates tables. Only job metadata
// and cell aggregates are persisted here; raw records and addresses are
// never written anywhere durable.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			spec TEXT,
			status TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS job_errors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id TEXT,
			error_message TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS stage_progress (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id TEXT,
			stage TEXT,
			status TEXT,
			started_at DATETIME,
			finished_at DATETIME,
			records INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS cells (
			job_id TEXT,
			cell_id TEXT,
			lat REAL,
			lng REAL,
			total_count INTEGER,
			weighted_sum REAL,
			surnames TEXT,
			PRIMARY KEY (job_id, cell_id)
		);`,
		`CREATE TABLE IF NOT EXISTS job_stats (
			job_id TEXT PRIMARY KEY,
			records_ingested INTEGER,
			records_matched INTEGER,
			records_unmatched INTEGER,
			records_resolved INTEGER,
			records_unresolved INTEGER,
			cell_count INTEGER
		);`,
	}
	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			return err
		}
	}
	return nil
}

// SaveJob stores a new aggregation job
func SaveJob(jobID string, spec model.AggregationJobSpec) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO jobs (id, spec, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		jobID, specJSON, "pending", now, now)
	return err
}

// SaveJobError records an error for a job
func SaveJobError(jobID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO job_errors (job_id, error_message, created_at) VALUES (?, ?, ?)`,
		jobID, err.Error(), now)
	return e
}

// GetJobErrors returns recorded errors for a job
func GetJobErrors(jobID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT error_message, created_at FROM job_errors WHERE job_id = ? ORDER BY created_at`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errs []map[string]interface{}
	for rows.Next() {
		var msg string
		var createdAt time.Time
		if err := rows.Scan(&msg, &createdAt); err != nil {
			return nil, err
		}
		errs = append(errs, map[string]interface{}{
			"message":   msg,
			"createdAt": createdAt,
		})
	}
	return errs, rows.Err()
}

// ListJobs returns all jobs with basic info
func ListJobs() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, status, created_at, updated_at FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []map[string]interface{}
	for rows.Next() {
		var id, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, map[string]interface{}{
			"id":        id,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return jobs, rows.Err()
}

// GetJob fetches full job spec, status and stats
func GetJob(jobID string) (map[string]interface{}, error) {
	var specJSON string
	var status string
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT spec, status, created_at, updated_at FROM jobs WHERE id = ?`, jobID).
		Scan(&specJSON, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	var spec model.AggregationJobSpec
	if err := json.Unmarshal([]byte(specJSON), &spec); err != nil {
		return nil, err
	}

	result := map[string]interface{}{
		"id":        jobID,
		"spec":      spec,
		"status":    status,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
	}
	if stats, err := GetJobStats(jobID); err == nil && stats != nil {
		result["stats"] = stats
	}
	return result, nil
}

// UpdateJobStatus updates job status
func UpdateJobStatus(jobID string, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE jobs SET status = ?, updated_at = ? WHERE id = ?`, status, now, jobID)
	return err
}

// SaveStageProgress records start/completion of a pipeline stage
func SaveStageProgress(jobID, stage, status string, startedAt, finishedAt *time.Time, records int64) error {
	_, err := db.Exec(`INSERT INTO stage_progress (job_id, stage, status, started_at, finished_at, records) VALUES (?, ?, ?, ?, ?, ?)`,
		jobID, stage, status, startedAt, finishedAt, records)
	return err
}

// GetStageProgress returns recorded stage progress for a job
func GetStageProgress(jobID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT stage, status, started_at, finished_at, records FROM stage_progress WHERE job_id = ? ORDER BY id`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stages []map[string]interface{}
	for rows.Next() {
		var stage, status string
		var startedAt, finishedAt sql.NullTime
		var records int64
		if err := rows.Scan(&stage, &status, &startedAt, &finishedAt, &records); err != nil {
			return nil, err
		}
		entry := map[string]interface{}{
			"stage":   stage,
			"status":  status,
			"records": records,
		}
		if startedAt.Valid {
			entry["startedAt"] = startedAt.Time
		}
		if finishedAt.Valid {
			entry["finishedAt"] = finishedAt.Time
		}
		stages = append(stages, entry)
	}
	return stages, rows.Err()
}

// SaveCells persists the aggregate rows for a completed job in one
// transaction. Surname counts are stored as a JSON object per cell.
func SaveCells(jobID string, cells map[string]*model.PrivacyCell) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO cells (job_id, cell_id, lat, lng, total_count, weighted_sum, surnames) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, cell := range cells {
		surnamesJSON, err := json.Marshal(cell.SurnameCounts)
		if err != nil {
			tx.Rollback()
			return err
		}
		if _, err := stmt.Exec(jobID, cell.CellID, cell.Centroid.Lat, cell.Centroid.Lng,
			cell.TotalCount, cell.WeightedSum(), string(surnamesJSON)); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// CellRow is one persisted cell aggregate as loaded back from the store.
// WeightedSum is stored explicitly; per-surname weights are not retained.
type CellRow struct {
	CellID        string         `json:"cell_id"`
	Centroid      model.GeoPoint `json:"centroid"`
	TotalCount    int            `json:"total_count"`
	WeightedSum   float64        `json:"weighted_sum"`
	SurnameCounts map[string]int `json:"surname_counts"`
}

// GetCells loads the aggregate rows for a job, ordered by cell id.
func GetCells(jobID string) ([]CellRow, error) {
	rows, err := db.Query(`SELECT cell_id, lat, lng, total_count, weighted_sum, surnames FROM cells WHERE job_id = ? ORDER BY cell_id`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cells []CellRow
	for rows.Next() {
		var row CellRow
		var surnamesJSON string
		if err := rows.Scan(&row.CellID, &row.Centroid.Lat, &row.Centroid.Lng,
			&row.TotalCount, &row.WeightedSum, &surnamesJSON); err != nil {
			return nil, err
		}
		row.SurnameCounts = make(map[string]int)
		if err := json.Unmarshal([]byte(surnamesJSON), &row.SurnameCounts); err != nil {
			return nil, err
		}
		cells = append(cells, row)
	}
	return cells, rows.Err()
}

// SaveJobStats persists the run summary counters for a job
func SaveJobStats(jobID string, stats model.JobStats) error {
	_, err := db.Exec(`INSERT OR REPLACE INTO job_stats
		(job_id, records_ingested, records_matched, records_unmatched, records_resolved, records_unresolved, cell_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		jobID, stats.RecordsIngested, stats.RecordsMatched, stats.RecordsUnmatched,
		stats.RecordsResolved, stats.RecordsUnresolved, stats.CellCount)
	return err
}

// GetJobStats loads the run summary for a job; nil when none recorded yet
func GetJobStats(jobID string) (*model.JobStats, error) {
	var stats model.JobStats
	err := db.QueryRow(`SELECT records_ingested, records_matched, records_unmatched, records_resolved, records_unresolved, cell_count
		FROM job_stats WHERE job_id = ?`, jobID).
		Scan(&stats.RecordsIngested, &stats.RecordsMatched, &stats.RecordsUnmatched,
			&stats.RecordsResolved, &stats.RecordsUnresolved, &stats.CellCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Totals aggregates store-wide counters for the stats endpoint.
func Totals() (map[string]int64, error) {
	totals := map[string]int64{}

	var jobs int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM jobs`).Scan(&jobs); err != nil {
		return nil, err
	}
	totals["jobs"] = jobs

	var cellCount, resolved sql.NullInt64
	if err := db.QueryRow(`SELECT COUNT(*), SUM(total_count) FROM cells`).Scan(&cellCount, &resolved); err != nil {
		return nil, err
	}
	totals["cells"] = cellCount.Int64
	totals["records_resolved"] = resolved.Int64

	return totals, nil
}
