package events

import (
	"MapForge/internal/terrain/domain"
	"MapForge/modules/kit/logx"

	"go.uber.org/zap"
)

// LoggerSink 把编辑事件写成结构化日志，字段随事件种类裁剪。
type LoggerSink struct {
	log logx.Logger
}

func NewLoggerSink(log logx.Logger) *LoggerSink {
	return &LoggerSink{log: log}
}

func (s *LoggerSink) Record(e domain.Event) {
	fields := []zap.Field{
		zap.String("kind", string(e.Kind)),
		zap.String("map", e.Map),
	}
	switch e.Kind {
	case domain.EventTileSet:
		fields = append(fields,
			zap.Int("x", e.X), zap.Int("y", e.Y), zap.String("tile", e.Tile))
	case domain.EventUnitAdded, domain.EventUnitRemoved, domain.EventUnitPruned:
		fields = append(fields,
			zap.Int("x", e.X), zap.Int("y", e.Y),
			zap.String("faction", e.Faction), zap.String("battle_class", e.BattleClass))
	case domain.EventResized:
		fields = append(fields, zap.Int("width", e.Width), zap.Int("height", e.Height))
	case domain.EventRenamed:
		fields = append(fields, zap.String("old_name", e.Detail))
	}
	s.log.Info("editor event", fields...)
}
