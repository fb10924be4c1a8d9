package models

import (
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/cv-matcher/internal/analysis"
)

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// Analysis is one submitted request and its lifecycle. Records live only in
// process memory; nothing is persisted across restarts.
type Analysis struct {
	ID             uuid.UUID         `json:"id"`
	CVText         string            `json:"-"`
	JobDescription string            `json:"-"`
	Language       analysis.Language `json:"language"`
	Tone           analysis.Tone     `json:"tone"`
	Status         AnalysisStatus    `json:"status"`
	Result         *analysis.Result  `json:"result,omitempty"`
	ErrorKind      analysis.Kind     `json:"error_kind,omitempty"`
	ErrorMessage   string            `json:"error_message,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
