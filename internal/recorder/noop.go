package recorder

import "context"

// NoopRecorder is a no-op implementation used when history is disabled.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Record(context.Context, *CalculationRecord) error { return nil }
func (n *NoopRecorder) Recent(context.Context, int) ([]CalculationRecord, error) {
	return []CalculationRecord{}, nil
}
func (n *NoopRecorder) Close() error { return nil }
