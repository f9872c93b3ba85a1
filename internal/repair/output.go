package repair

import (
	"go.uber.org/zap"
)

// Output is the progress sink supplied by the upgrade runner. It is
// purely observational, nothing here feeds back into the repair.
type Output interface {
	StartProgress(total int64)
	Advance()
	FinishProgress()
	Info(msg string)
}

// LogOutput reports progress through a zap logger.
type LogOutput struct {
	log   *zap.Logger
	total int64
	done  int64
}

func NewLogOutput(log *zap.Logger) *LogOutput {
	return &LogOutput{log: log}
}

func (o *LogOutput) StartProgress(total int64) {
	o.total = total
	o.done = 0
	o.log.Info("start", zap.Int64("total", total))
}

func (o *LogOutput) Advance() {
	o.done++
}

func (o *LogOutput) FinishProgress() {
	o.log.Info("finished", zap.Int64("done", o.done), zap.Int64("total", o.total))
}

func (o *LogOutput) Info(msg string) {
	o.log.Info(msg)
}
