package events

import "MapForge/internal/terrain/domain"

// MultiSink 把同一事件依次分发给每个下游。
type MultiSink struct {
	sinks []domain.Sink
}

func NewMultiSink(sinks ...domain.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (s *MultiSink) Record(e domain.Event) {
	for _, sink := range s.sinks {
		sink.Record(e)
	}
}
