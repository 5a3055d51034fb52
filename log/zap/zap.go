// Package zap adapts a *zap.Logger to the lazyseq.Logger interface.
package zap

import (
	"github.com/chemacortes/lazyseq"
	"go.uber.org/zap"
)

// Logger wraps a *zap.Logger. The zero value is not usable; set L.
type Logger struct{ L *zap.Logger }

func (z Logger) Debug(msg string, f lazyseq.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f lazyseq.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f lazyseq.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f lazyseq.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f lazyseq.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}

var _ lazyseq.Logger = Logger{}
