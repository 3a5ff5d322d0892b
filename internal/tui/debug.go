package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/javiermolinar/rangecal/internal/drag"
	"github.com/javiermolinar/rangecal/internal/event"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "rangecal-debug.log"

// Global debug logger instance. It is a no-op until InitDebugLogger
// enables it.
var (
	debugLog  = zap.NewNop()
	debugFile *os.File
)

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = zap.NewNop()
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugFile = f
	debugLog = newDebugLogger(zapcore.AddSync(f))

	debugLog.Debug("DEBUG_START",
		zap.String("log_file", DebugLogPath),
		zap.String("time", time.Now().Format(time.RFC3339)),
	)
	return nil
}

// CloseDebugLogger flushes and closes the debug log file.
func CloseDebugLogger() {
	if debugFile == nil {
		return
	}
	debugLog.Debug("DEBUG_END", zap.String("time", time.Now().Format(time.RFC3339)))
	_ = debugLog.Sync()
	_ = debugFile.Close()
	debugFile = nil
	debugLog = zap.NewNop()
}

// newDebugLogger writes one JSON object per line, with the event name in
// the "event" field.
func newDebugLogger(w zapcore.WriteSyncer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.MessageKey = "event"
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	enc.CallerKey = ""
	enc.StacktraceKey = ""
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), w, zapcore.DebugLevel)
	return zap.New(core)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.Debug("KEY_PRESS",
		zap.String("key", msg.String()),
		zap.String("type", fmt.Sprintf("%T", msg.Type)),
	)
}

// LogMouse logs a mouse event and the grid cell it resolved to.
func LogMouse(msg tea.MouseMsg, target drag.Target) {
	fields := []zap.Field{
		zap.String("mouse", tea.MouseEvent(msg).String()),
		zap.Int("x", msg.X),
		zap.Int("y", msg.Y),
		zap.Int("grid", int(target.Grid)),
	}
	if target.Cell != nil {
		fields = append(fields, zap.Int("day", target.Cell.Value))
	}
	debugLog.Debug("MOUSE", fields...)
}

// LogEmit logs the events a month view emitted.
func LogEmit(id drag.GridID, evs []event.Event) {
	names := make([]string, 0, len(evs))
	for _, ev := range evs {
		names = append(names, ev.Name())
	}
	debugLog.Debug("EMIT", zap.Int("grid", int(id)), zap.Strings("events", names))
}

// LogDrag logs the drag phase of a month view.
func LogDrag(id drag.GridID, phase drag.Phase, reason string) {
	debugLog.Debug("DRAG",
		zap.Int("grid", int(id)),
		zap.Stringer("phase", phase),
		zap.String("reason", reason),
	)
}

// LogError logs an error.
func LogError(context string, err error) {
	debugLog.Debug("ERROR", zap.String("context", context), zap.Error(err))
}
