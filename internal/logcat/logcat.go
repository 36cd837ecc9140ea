// Package logcat builds zap loggers whose records end up where the host
// runtime expects native diagnostics: the Android log buffer on devices,
// stderr everywhere else.
package logcat

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Priority mirrors android_LogPriority from <android/log.h>.
type Priority int

const (
	PriorityVerbose Priority = 2
	PriorityDebug   Priority = 3
	PriorityInfo    Priority = 4
	PriorityWarn    Priority = 5
	PriorityError   Priority = 6
	PriorityFatal   Priority = 7
)

// PriorityFor maps a zap level onto a log priority.
func PriorityFor(l zapcore.Level) Priority {
	switch {
	case l < zapcore.DebugLevel:
		return PriorityVerbose
	case l == zapcore.DebugLevel:
		return PriorityDebug
	case l == zapcore.InfoLevel:
		return PriorityInfo
	case l == zapcore.WarnLevel:
		return PriorityWarn
	case l == zapcore.ErrorLevel:
		return PriorityError
	default:
		return PriorityFatal
	}
}

// WriteFunc delivers one encoded record.
type WriteFunc func(prio Priority, tag, msg string)

// New returns a logger writing records at or above level to the platform log.
// Records from a named logger use the logger name as their tag; unnamed
// records use tag.
func New(tag string, level zapcore.LevelEnabler) *zap.Logger {
	return zap.New(NewCore(tag, level, platformWrite))
}

// NewCore returns a core that encodes each record on one line and hands it to
// write. The timestamp, level and logger name are left to the receiving log
// system, which carries them as priority and tag.
func NewCore(tag string, level zapcore.LevelEnabler, write WriteFunc) zapcore.Core {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	})
	return &core{LevelEnabler: level, enc: enc, tag: tag, write: write}
}

type core struct {
	zapcore.LevelEnabler
	enc   zapcore.Encoder
	tag   string
	write WriteFunc
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	clone := c.enc.Clone()
	for i := range fields {
		fields[i].AddTo(clone)
	}
	return &core{LevelEnabler: c.LevelEnabler, enc: clone, tag: c.tag, write: c.write}
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	tag := c.tag
	if ent.LoggerName != "" {
		tag = ent.LoggerName
	}
	// zap appends its default line ending when none is configured.
	c.write(PriorityFor(ent.Level), tag, strings.TrimSuffix(buf.String(), zapcore.DefaultLineEnding))
	buf.Free()
	return nil
}

func (c *core) Sync() error { return nil }
