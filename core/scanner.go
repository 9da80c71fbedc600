package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Check interface - setiap pemeriksaan harus implement ini.
// Run boleh mengembalikan 1..n Finding (cek cascading menghasilkan satu
// Finding per titik keputusan).
type Check interface {
	ID() string
	Name() string
	Category() string
	Run(ctx context.Context) []Finding
}

// Scanner adalah orchestrator utama
type Scanner struct {
	checks   []Check
	config   Config
	progress *ProgressReporter
	mu       sync.Mutex
}

// Config untuk scanner
type Config struct {
	Timeout      time.Duration
	MaxWorkers   int
	ShowProgress bool
}

// NewScanner membuat instance scanner baru
func NewScanner(cfg Config) *Scanner {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	return &Scanner{
		checks:   make([]Check, 0),
		config:   cfg,
		progress: NewProgressReporter(),
	}
}

// RegisterCheck menambahkan check ke scanner
func (s *Scanner) RegisterCheck(check Check) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks = append(s.checks, check)
}

// Run menjalankan semua checks yang terdaftar (paralel, dibatasi MaxWorkers).
// Setiap check independen; cek yang gagal tidak menggagalkan cek lain,
// jadi caller selalu dapat hasil parsial.
func (s *Scanner) Run(ctx context.Context, filterIDs []string) []CheckResult {
	checksToRun := s.filterChecks(filterIDs)
	if len(checksToRun) == 0 {
		return []CheckResult{}
	}

	if s.config.ShowProgress {
		s.progress.SetTotal(len(checksToRun))
		s.progress.Start()
		defer s.progress.Stop()
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	resultsCh := make(chan CheckResult, len(checksToRun))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.config.MaxWorkers)

	for _, check := range checksToRun {
		c := check
		eg.Go(func() error {
			resultsCh <- s.runSingleCheck(ctx, c)
			return nil
		})
	}

	_ = eg.Wait()
	close(resultsCh)

	results := make([]CheckResult, 0, len(checksToRun))
	for result := range resultsCh {
		results = append(results, result)
		if s.config.ShowProgress {
			s.progress.Increment(result.CheckID, result.Status)
		}
	}

	return results
}

// runSingleCheck menjalankan satu check dengan error handling.
// Return value dinamai supaya assignment di deferred recovery ikut
// terbawa keluar saat check panic.
func (s *Scanner) runSingleCheck(ctx context.Context, check Check) (result CheckResult) {
	result = CheckResult{
		CheckID:   check.ID(),
		CheckName: check.Name(),
		Category:  check.Category(),
		StartTime: time.Now(),
		Status:    "running",
	}

	// Panic recovery: cek yang panic jadi status error, bukan crash proses
	defer func() {
		if r := recover(); r != nil {
			result.Status = "error"
			result.Error = fmt.Sprintf("panic: %v", r)
			result.Duration = time.Since(result.StartTime)
		}
	}()

	select {
	case <-ctx.Done():
		result.Status = "timeout"
		result.Error = "context cancelled or timeout"
		result.Duration = time.Since(result.StartTime)
		return result
	default:
	}

	findings := check.Run(ctx)
	result.Findings = findings
	result.Duration = time.Since(result.StartTime)
	result.Status = string(WorstCompliance(findings))

	return result
}

// filterChecks memfilter checks berdasarkan ID
func (s *Scanner) filterChecks(ids []string) []Check {
	if len(ids) == 0 {
		return s.checks
	}

	idMap := make(map[string]bool)
	for _, id := range ids {
		idMap[id] = true
	}

	filtered := make([]Check, 0)
	for _, check := range s.checks {
		if idMap[check.ID()] {
			filtered = append(filtered, check)
		}
	}

	return filtered
}

// CheckResult adalah hasil dari satu check
type CheckResult struct {
	CheckID   string        `json:"check_id"`
	CheckName string        `json:"check_name"`
	Category  string        `json:"category"`
	Status    string        `json:"status"` // compliant, non_compliant, unknown, not_applicable, error, timeout
	Findings  []Finding     `json:"findings,omitempty"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
	StartTime time.Time     `json:"-"`
}
