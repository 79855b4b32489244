package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/campusdesk/internal/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileRecorder appends "[timestamp] message" lines to a log file and mirrors
// every event to a structured logger.
type FileRecorder struct {
	core   zapcore.Core
	close  func()
	logger logging.Logger
	now    func() time.Time
}

// lineEncoder renders an entry as its bracketed timestamp followed by the
// message. Level, logger name and caller are not part of the line.
func lineEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + t.Format(TimeLayout) + "]")
		},
	})
}

// NewFileRecorder opens path for appending, creating it if needed. logger
// may be nil. Close releases the file.
func NewFileRecorder(path string, logger logging.Logger) (*FileRecorder, error) {
	ws, closeFn, err := zap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	return &FileRecorder{
		core:   zapcore.NewCore(lineEncoder(), ws, zapcore.InfoLevel),
		close:  closeFn,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Record writes one line for e. A write failure is returned and the event is
// not mirrored.
func (r *FileRecorder) Record(ctx context.Context, e Event) error {
	ent := zapcore.Entry{Level: zapcore.InfoLevel, Time: r.now(), Message: e.Message}
	if err := r.core.Write(ent, nil); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}

	if r.logger != nil {
		args := append([]any{"kind", string(e.Kind)}, e.Attrs...)
		r.logger.Info(ctx, e.Message, args...)
	}
	return nil
}

// Close flushes and closes the log file.
func (r *FileRecorder) Close() error {
	err := r.core.Sync()
	r.close()
	return err
}
