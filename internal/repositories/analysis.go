package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/cv-matcher/internal/analysis"
	"alfredoptarigan/cv-matcher/internal/models"
)

type AnalysisRepository interface {
	Create(a *models.Analysis) error
	FindByID(id uuid.UUID) (*models.Analysis, error)
	UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error
	UpdateResult(id uuid.UUID, result *analysis.Result) error
	UpdateError(id uuid.UUID, kind analysis.Kind, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Analysis, error)
}

// analysisRepository keeps every record in process memory behind a RWMutex.
// Persistence is deliberately out of scope; a restart drops all analyses.
type analysisRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*models.Analysis
	order   []uuid.UUID
}

func NewAnalysisRepository() AnalysisRepository {
	return &analysisRepository{
		records: make(map[uuid.UUID]*models.Analysis),
	}
}

func (r *analysisRepository) Create(a *models.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[a.ID]; exists {
		return fmt.Errorf("analysis %s already exists", a.ID)
	}

	stored := *a
	r.records[a.ID] = &stored
	r.order = append(r.order, a.ID)
	return nil
}

func (r *analysisRepository) FindByID(id uuid.UUID) (*models.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("analysis not found")
	}

	found := *a
	return &found, nil
}

func (r *analysisRepository) UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.records[id]
	if !ok {
		return fmt.Errorf("analysis not found")
	}

	a.Status = status
	a.UpdatedAt = time.Now()
	return nil
}

func (r *analysisRepository) UpdateResult(id uuid.UUID, result *analysis.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.records[id]
	if !ok {
		return fmt.Errorf("analysis not found")
	}

	a.Status = models.StatusCompleted
	a.Result = result
	a.ErrorKind = ""
	a.ErrorMessage = ""
	a.UpdatedAt = time.Now()
	return nil
}

func (r *analysisRepository) UpdateError(id uuid.UUID, kind analysis.Kind, errorMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.records[id]
	if !ok {
		return fmt.Errorf("analysis not found")
	}

	a.Status = models.StatusFailed
	a.ErrorKind = kind
	a.ErrorMessage = errorMsg
	a.UpdatedAt = time.Now()
	return nil
}

// FindPendingJobs returns queued analyses in submission order, oldest first.
// The worker's poller uses it to pick up jobs that never made it onto the
// channel.
func (r *analysisRepository) FindPendingJobs(limit int) ([]models.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var pending []models.Analysis
	for _, id := range r.order {
		if len(pending) >= limit {
			break
		}
		if a := r.records[id]; a.Status == models.StatusQueued {
			pending = append(pending, *a)
		}
	}
	return pending, nil
}
