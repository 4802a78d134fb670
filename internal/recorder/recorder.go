package recorder

import "TrendScout/internal/model"

// Recorder persists evaluation history for later analysis.
type Recorder interface {
	RecordEvaluation(eval *model.Evaluation) error
	RecordSqueezeEvent(eval *model.Evaluation) error
	Close() error
}
