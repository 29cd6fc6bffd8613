package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/aquaguard/water-monitor/internal/domain"
)

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

func (r *Repos) ListZones() ([]domain.Zone, error) {
	var out []domain.Zone
	err := r.db.Select(&out, `SELECT id, code, name FROM zones ORDER BY id`)
	return out, err
}

func (r *Repos) GetZone(code string) (*domain.Zone, error) {
	var z domain.Zone
	if err := r.db.Get(&z, `SELECT id, code, name FROM zones WHERE code = $1`, code); err != nil {
		return nil, err
	}
	return &z, nil
}

func (r *Repos) InsertAssessment(a *domain.Assessment) error {
	_, err := r.db.Exec(
		`INSERT INTO assessments(id, zone, timestamp, risk, label, root_cause, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.Zone, a.Timestamp, a.Risk, a.Label, a.RootCause, a.Status)
	return err
}

func (r *Repos) RecentAssessments(zone string, limit int) ([]domain.Assessment, error) {
	var out []domain.Assessment
	err := r.db.Select(&out,
		`SELECT id, zone, timestamp, risk, label, root_cause, status
		 FROM assessments WHERE zone = $1 ORDER BY timestamp DESC LIMIT $2`,
		zone, limit)
	return out, err
}

func (r *Repos) InsertWarning(zone string, w *domain.EarlyWarning) error {
	_, err := r.db.Exec(
		`INSERT INTO warnings(zone, severity, sensor, message, hours_until)
		 VALUES ($1,$2,$3,$4,$5)`,
		zone, w.Severity, w.Sensor, w.Message, w.HoursUntil)
	return err
}
