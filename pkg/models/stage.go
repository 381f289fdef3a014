package models

// Stage is a step of the analysis pipeline surfaced to the user
// through progress message edits.
type Stage string

const (
	StagePreparing         Stage = "preparing"
	StageDownloading       Stage = "downloading"
	StageExifExtraction    Stage = "exif_extraction"
	StageAIDetection       Stage = "ai_detection"
	StageFrequencyAnalysis Stage = "frequency_analysis"
	StageFinalScoring      Stage = "final_scoring"
)

// FailureKind classifies an analysis failure for user messaging.
// The notification layer owns the actual copy per kind.
type FailureKind string

const (
	FailureTimeout     FailureKind = "timeout"
	FailureUnavailable FailureKind = "unavailable"
	FailureInternal    FailureKind = "internal"
)
