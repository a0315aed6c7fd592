package render

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBufferWrapsAndFilters(t *testing.T) {
	lb := NewLogBuffer(3)
	levels := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	for i, level := range levels {
		lb.Add(LogEntry{Level: level, Message: string(rune('a' + i))})
	}

	assert.Equal(t, 3, lb.Len())

	all := lb.GetRecent(0, slog.LevelDebug)
	require.Len(t, all, 3)
	assert.Equal(t, "d", all[0].Message, "newest first")
	assert.Equal(t, "b", all[2].Message, "oldest entry was overwritten")

	warn := lb.GetRecent(0, slog.LevelWarn)
	require.Len(t, warn, 2)
	assert.Equal(t, 1, len(lb.GetRecent(1, slog.LevelDebug)))

	lb.Clear()
	assert.Empty(t, lb.GetRecent(0, slog.LevelDebug))
}

func TestLogBufferHandler(t *testing.T) {
	lb := NewLogBuffer(10)
	logger := slog.New(NewLogBufferHandler(lb, slog.LevelInfo))

	logger.Debug("hidden")
	logger.With("rom", "game.sms").WithGroup("vdp").Info("frame", "line", 193)

	entries := lb.GetRecent(0, slog.LevelDebug)
	require.Len(t, entries, 1)
	assert.Equal(t, "frame rom=game.sms vdp.line=193", entries[0].Message)

	assert.False(t, NewLogBufferHandler(lb, slog.LevelWarn).Enabled(context.Background(), slog.LevelInfo))
}

func TestFormatLogEntry(t *testing.T) {
	entry := LogEntry{
		Time:    time.Date(2024, 1, 1, 12, 30, 45, 0, time.UTC),
		Level:   slog.LevelWarn,
		Message: "careful",
	}
	assert.Equal(t, "12:30:45 [WRN] careful", FormatLogEntry(entry))
}

func TestPixelHelpers(t *testing.T) {
	r, g, b := PixelToRGB(0x1155AAFF)
	assert.Equal(t, int32(0x11), r)
	assert.Equal(t, int32(0x55), g)
	assert.Equal(t, int32(0xAA), b)

	pixels := []uint32{0, 1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, uint32(6), Sample(pixels, 4, 1, 1, 2))

	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab...", Truncate("abcdefgh", 5))
	assert.Equal(t, "ab", Truncate("abcdefgh", 2))
	assert.Equal(t, "", Truncate("abc", 0))
}
