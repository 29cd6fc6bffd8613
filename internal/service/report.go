package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aquaguard/water-monitor/internal/domain"
)

// QualityReport is the archived per-zone snapshot: the latest assessment
// plus the current prediction cycle.
type QualityReport struct {
	Zone        string             `json:"zone"`
	GeneratedAt time.Time          `json:"generated_at"`
	Assessment  *domain.Assessment `json:"assessment"`
	Prediction  *domain.Prediction `json:"prediction"`
}

// GenerateReport builds a zone's quality report and, when cloud services are
// wired, archives it to S3. Returns the report and the archive URL (empty
// when archival is disabled).
func (s *MonitorService) GenerateReport(zone string) (*QualityReport, string, error) {
	s.mu.RLock()
	assessment, ok := s.latest[zone]
	s.mu.RUnlock()
	if !ok {
		return nil, "", fmt.Errorf("no assessment recorded for zone %s", zone)
	}

	report := &QualityReport{
		Zone:        zone,
		GeneratedAt: time.Now(),
		Assessment:  assessment,
		Prediction:  s.Predict(zone),
	}

	if s.s3 == nil {
		return report, "", nil
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("marshal report: %w", err)
	}
	key := fmt.Sprintf("reports/%s/%s.json", zone, report.GeneratedAt.Format("2006-01-02T15-04-05"))
	url, err := s.s3.UploadReport(key, data, "application/json")
	if err != nil {
		return nil, "", fmt.Errorf("archive report: %w", err)
	}
	return report, url, nil
}
