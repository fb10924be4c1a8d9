package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"alfredoptarigan/cv-matcher/internal/analysis"
	"alfredoptarigan/cv-matcher/internal/models"
	"alfredoptarigan/cv-matcher/internal/repositories"
)

// AnalyzerService runs one queued analysis end to end: load the record, mark
// it processing, run the pipeline, store the result or the typed error.
type AnalyzerService interface {
	AnalyzeApplication(ctx context.Context, analysisID uuid.UUID) error
}

type analyzerService struct {
	repo     repositories.AnalysisRepository
	pipeline *analysis.Pipeline
}

func NewAnalyzerService(
	repo repositories.AnalysisRepository,
	pipeline *analysis.Pipeline,
) AnalyzerService {
	return &analyzerService{
		repo:     repo,
		pipeline: pipeline,
	}
}

func (s *analyzerService) AnalyzeApplication(ctx context.Context, analysisID uuid.UUID) error {
	if err := s.repo.UpdateStatus(analysisID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting analysis %s\n", analysisID)

	record, err := s.repo.FindByID(analysisID)
	if err != nil {
		s.repo.UpdateError(analysisID, "", err.Error())
		return fmt.Errorf("failed to load analysis: %w", err)
	}

	result, err := s.pipeline.Run(ctx, analysis.Request{
		CVText:         record.CVText,
		JobDescription: record.JobDescription,
		Language:       record.Language,
		Tone:           record.Tone,
	})
	if err != nil {
		s.repo.UpdateError(analysisID, analysis.KindOf(err), analysis.UserMessage(err))
		return fmt.Errorf("analysis %s failed: %w", analysisID, err)
	}

	if err := s.repo.UpdateResult(analysisID, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	log.Printf("✅ Analysis %s completed (score %d)\n", analysisID, result.MatchScore)
	return nil
}
