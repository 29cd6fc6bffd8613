package service

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/aquaguard/water-monitor/internal/cloud"
	"github.com/aquaguard/water-monitor/internal/domain"
	"github.com/aquaguard/water-monitor/internal/history"
	"github.com/aquaguard/water-monitor/internal/repository"
	"github.com/aquaguard/water-monitor/internal/risk"
	"github.com/aquaguard/water-monitor/internal/thresholds"
	"github.com/aquaguard/water-monitor/internal/trend"
)

type Services struct {
	Repos   *repository.Repos
	Monitor *MonitorService
}

// Options configures the monitoring pipeline. Zero values fall back to the
// formula scorer and the table defaults.
type Options struct {
	Scorer          risk.Scorer
	SNS             *cloud.SNSClient
	S3              *cloud.S3Client
	HistoryCapacity int
	DangerWindow    float64
	WarningWindow   float64
}

func New(db *sqlx.DB, opts Options) *Services {
	var repos *repository.Repos
	if db != nil {
		repos = repository.New(db)
	}
	if opts.Scorer == nil {
		opts.Scorer = risk.Engine{}
	}
	if opts.HistoryCapacity <= 0 {
		opts.HistoryCapacity = thresholds.DefaultHistoryCapacity
	}
	if opts.DangerWindow <= 0 {
		opts.DangerWindow = thresholds.DefaultDangerWindowHours
	}
	if opts.WarningWindow <= 0 {
		opts.WarningWindow = thresholds.DefaultWarningWindowHours
	}
	return &Services{
		Repos: repos,
		Monitor: &MonitorService{
			repos:         repos,
			store:         history.NewStore(opts.HistoryCapacity),
			scorer:        opts.Scorer,
			sns:           opts.SNS,
			s3:            opts.S3,
			dangerWindow:  opts.DangerWindow,
			warningWindow: opts.WarningWindow,
			latest:        make(map[string]*domain.Assessment),
		},
	}
}

// MonitorService runs the per-zone scoring and prediction pipelines. All
// state lives in the injected history store and the latest-assessment cache;
// zones are independent and safe to process in parallel.
type MonitorService struct {
	repos         *repository.Repos
	store         *history.Store
	scorer        risk.Scorer
	sns           *cloud.SNSClient
	s3            *cloud.S3Client
	dangerWindow  float64
	warningWindow float64

	mu     sync.RWMutex
	latest map[string]*domain.Assessment
}

func (s *MonitorService) History() *history.Store { return s.store }

// Assess scores one reading: risk index with breakdown, root cause, pipe
// status and interpretation. The breakdown always comes from the formula
// engine; an alternate scorer only replaces the numeric index, exactly as
// the classifiers expect. Persistence and notification failures are logged,
// never fatal to the scoring call.
func (s *MonitorService) Assess(r domain.Reading) *domain.Assessment {
	_, breakdown := risk.Score(r)
	score := s.scorer.Score(r)

	cause := risk.Classify(r, score)
	status := risk.Status(r)

	a := &domain.Assessment{
		ID:             uuid.NewString(),
		Zone:           r.Zone,
		Timestamp:      r.Timestamp,
		Risk:           score,
		Label:          domain.LabelFor(score),
		Breakdown:      breakdown,
		RootCause:      cause,
		Status:         status,
		Interpretation: risk.Interpret(r, score, cause, breakdown),
	}

	s.mu.Lock()
	s.latest[r.Zone] = a
	s.mu.Unlock()

	if s.repos != nil {
		if err := s.repos.InsertAssessment(a); err != nil {
			log.Error().Err(err).Str("zone", a.Zone).Msg("assessment insert failed")
		}
	}
	if s.sns != nil && a.Label == domain.LabelCritical {
		if err := s.sns.SendCriticalAssessment(a); err != nil {
			log.Error().Err(err).Str("zone", a.Zone).Msg("critical alert publish failed")
		}
	}

	return a
}

// Record appends a reading's tracked metrics to the zone's history buffers.
func (s *MonitorService) Record(r domain.Reading) {
	for _, m := range thresholds.TrendMetrics {
		s.store.Append(r.Zone, string(m), r.Timestamp, metricValue(r, m))
	}
}

// Predict fits trends over a zone's buffered history, forecasts threshold
// breaches and grades early warnings. Metrics with insufficient history are
// omitted rather than guessed at.
func (s *MonitorService) Predict(zone string) *domain.Prediction {
	forecasts := make(map[string]domain.Forecast)
	for _, m := range thresholds.TrendMetrics {
		samples := s.store.Read(zone, string(m))
		estimate, err := trend.Estimate(m, samples)
		if err != nil {
			continue
		}
		forecasts[string(m)] = trend.Forecast(m, estimate)
	}

	warnings := trend.GenerateWarnings(forecasts, s.dangerWindow, s.warningWindow)

	if s.repos != nil {
		for i := range warnings {
			if err := s.repos.InsertWarning(zone, &warnings[i]); err != nil {
				log.Error().Err(err).Str("zone", zone).Msg("warning insert failed")
			}
		}
	}
	if s.sns != nil {
		var danger []domain.EarlyWarning
		for _, w := range warnings {
			if w.Severity == domain.SeverityDanger {
				danger = append(danger, w)
			}
		}
		if err := s.sns.SendEarlyWarnings(zone, danger); err != nil {
			log.Error().Err(err).Str("zone", zone).Msg("early warning publish failed")
		}
	}

	return &domain.Prediction{
		Zone:      zone,
		Summary:   trend.Summarize(forecasts),
		Forecasts: forecasts,
		Warnings:  warnings,
	}
}

// FromMQTT ingests one published reading: default substitution, scoring and
// history recording.
func (s *MonitorService) FromMQTT(topic string, payload []byte) error {
	var in domain.ReadingInput
	if err := json.Unmarshal(payload, &in); err != nil {
		return fmt.Errorf("decode reading: %w", err)
	}
	if in.Zone == "" {
		return fmt.Errorf("reading on %s has no zone", topic)
	}

	r := in.Reading(time.Now())
	a := s.Assess(r)
	s.Record(r)

	log.Info().
		Str("zone", r.Zone).
		Float64("risk", a.Risk).
		Str("status", string(a.Status)).
		Msg("reading ingested")
	return nil
}

// Latest returns the most recent assessment per zone.
func (s *MonitorService) Latest() map[string]*domain.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]*domain.Assessment, len(s.latest))
	for zone, a := range s.latest {
		out[zone] = a
	}
	return out
}

// Stats aggregates the latest assessments into fleet-level counts.
func (s *MonitorService) Stats() domain.FleetStats {
	latest := s.Latest()
	stats := domain.FleetStats{Zones: len(latest)}
	if stats.Zones == 0 {
		return stats
	}

	sum := 0.0
	for _, a := range latest {
		sum += a.Risk
		switch a.Label {
		case domain.LabelSafe:
			stats.Safe++
		case domain.LabelWarning:
			stats.Warning++
		default:
			stats.Critical++
		}
	}
	stats.AvgRisk = sum / float64(stats.Zones)
	return stats
}

func metricValue(r domain.Reading, m thresholds.Metric) float64 {
	switch m {
	case thresholds.Temperature:
		return r.Temperature
	case thresholds.Flow:
		return r.Flow
	case thresholds.Pressure:
		return r.Pressure
	case thresholds.Chlorine:
		return r.Chlorine
	case thresholds.PH:
		return r.PH
	case thresholds.Turbidity:
		return r.Turbidity
	case thresholds.Conductivity:
		return r.Conductivity
	default:
		return 0
	}
}
