package core

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide structured logger.
//
// Remarks:
//   - Discards all entries until SetupLog or SetLogger is called.
var Log = zap.NewNop().Sugar()

// SetupLog builds the JSON logger and installs it as Log.
//
// Parameters:
//   - level - zap level name, e.g. "debug", "info", "warn", "error".
//   - path - log file path, stderr is used if empty.
//
// Returns a Closer that flushes the buffered log entries and closes the output.
func SetupLog(level string, path string) (Closer, error) {
	var al zap.AtomicLevel
	if err := al.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log: invalid level: level=%s err=%w", level, err)
	}

	output := "stderr"
	if path != "" {
		output = path
	}

	sink, closeSink, err := zap.Open(output)
	if err != nil {
		return nil, fmt.Errorf("log: failed to open output: path=%s err=%w", output, err)
	}

	errSink, closeErrSink, err := zap.Open("stderr")
	if err != nil {
		closeSink()

		return nil, fmt.Errorf("log: failed to open error output: %w", err)
	}

	encConfig := zap.NewProductionEncoderConfig()
	encConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl := zap.New(
		zapcore.NewCore(zapcore.NewJSONEncoder(encConfig), sink, al),
		zap.ErrorOutput(errSink),
	)

	SetLogger(zl)

	return FuncCloser(func() error {
		err := zl.Sync()

		closeSink()
		closeErrSink()

		// Sync on stderr returns EINVAL on some platforms.
		if path == "" {
			return nil
		}

		return err
	}), nil
}

// SetLogger replaces the process-wide logger.
func SetLogger(zl *zap.Logger) {
	Log = zl.Sugar()
}
