package telemetry

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/docksim/internal/rendezvous"
)

type Logger struct {
	log *zap.Logger
}

func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log.Named("controller")}
}

func (l *Logger) Initialized(id rendezvous.Identity, body rendezvous.BodyConfig) {
	l.log.Info("initialized",
		zap.String("team", id.Name),
		zap.Int("team_id", id.ID),
		zap.Float64("mass", body.Mass),
		zap.Float64("inertia", body.Inertia),
	)
}

func (l *Logger) Tick(r rendezvous.TickReport) {
	if ce := l.log.Check(zapcore.DebugLevel, "tick"); ce != nil {
		ce.Write(
			zap.Int("tick", r.Tick),
			zap.Duration("elapsed", r.Elapsed),
			zap.Stringer("mode", r.Mode),
			zap.Float64("f_x", r.Command.FX),
			zap.Float64("f_y", r.Command.FY),
			zap.Float64("tau", r.Command.Tau),
			zap.Float64("displacement", r.Displacement),
			zap.Float64("velocity", r.Speed),
			zap.Float64("angle", r.Heading),
		)
	}
}

func (l *Logger) Warn(tick int, adv rendezvous.Advisory) {
	l.log.Warn(adv.Message(),
		zap.Int("tick", tick),
		zap.Float64("displacement", adv.Displacement),
		zap.Float64("velocity", adv.Speed),
	)
}

// NewZap builds a console logger at the given level ("debug", "info", ...).
func NewZap(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}
