package logger

import (
	"testing"

	"github.com/asticode/go-astiav"
	"github.com/stretchr/testify/require"
)

func TestLogLevelAstiav(t *testing.T) {
	t.Parallel()

	for _, level := range []Level{
		LevelFatal,
		LevelPanic,
		LevelError,
		LevelWarning,
		LevelInfo,
		LevelDebug,
		LevelTrace,
	} {
		require.Equal(t, level, LogLevelFromAstiav(LogLevelToAstiav(level)), level.String())
	}
	require.Equal(t, LevelTrace, LogLevelFromAstiav(astiav.LogLevelDebug))
}
