package ecs

import "github.com/rs/zerolog"

// Logger wraps a zerolog logger with world- and scheduler-shaped events.
type Logger struct {
	*zerolog.Logger
}

func (l *Logger) loadArchetypeIntoArrayLogger(arch *Archetype, arrayLogger *zerolog.Array) *zerolog.Array {
	dict := zerolog.Dict()
	dict = dict.Uint64("signature", arch.Signature().Hash)
	dict = dict.Int("components", len(arch.Components()))
	dict = dict.Int("chunks", arch.ChunkCount())
	dict = dict.Int("rows", arch.EntityCount())
	return arrayLogger.Dict(dict)
}

// LogArchetypes logs every archetype's storage shape at the given level.
func (l *Logger) LogArchetypes(w *World, level zerolog.Level) {
	event := l.WithLevel(level)
	event.Uint64("epoch", w.CurrentEpoch())
	event.Uint64("alive_entities", w.AliveCount())
	event.Int("total_archetypes", len(w.Archetypes()))
	arrayLogger := zerolog.Arr()
	for _, arch := range w.Archetypes() {
		arrayLogger = l.loadArchetypeIntoArrayLogger(arch, arrayLogger)
	}
	event.Array("archetypes", arrayLogger)
	event.Send()
}

// LogSystems logs the scheduler's stage layout at the given level.
func (l *Logger) LogSystems(s *Scheduler, level zerolog.Level) {
	event := l.WithLevel(level)
	names := s.SystemNames()
	event.Int("total_systems", len(names))
	event.Int("total_stages", s.StageCount())
	arrayLogger := zerolog.Arr()
	for i := 0; i < s.StageCount(); i++ {
		dict := zerolog.Dict()
		dict = dict.Int("stage", i)
		stageNames := zerolog.Arr()
		for _, id := range s.StageAt(i) {
			stageNames = stageNames.Str(names[id])
		}
		dict = dict.Array("systems", stageNames)
		arrayLogger = arrayLogger.Dict(dict)
	}
	event.Array("stages", arrayLogger)
	event.Send()
}

// CreateSystemLogger returns a sub-logger tagged with the system's name.
func (l *Logger) CreateSystemLogger(systemName string) zerolog.Logger {
	return l.With().Str("system", systemName).Logger()
}
