package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerIsShared(t *testing.T) {
	assert.Same(t, NewLogger(), NewLogger())
}

func TestConfigure(t *testing.T) {
	log := NewLogger()
	t.Cleanup(func() { log.SetLevel(logrus.DebugLevel) })

	testCases := []struct {
		name    string
		level   string
		debug   bool
		want    logrus.Level
		wantErr bool
	}{
		{"debug mode overrides level", "error", true, logrus.DebugLevel, false},
		{"info", "info", false, logrus.InfoLevel, false},
		{"warn", "warn", false, logrus.WarnLevel, false},
		{"mixed case", "ERROR", false, logrus.ErrorLevel, false},
		{"unknown level", "loud", false, logrus.DebugLevel, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log.SetLevel(logrus.DebugLevel)
			err := Configure(tc.level, tc.debug)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, log.GetLevel())
		})
	}
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	NewLogger().Warnf("servo at %d degrees", 90)
	assert.Contains(t, buf.String(), "servo at 90 degrees")
	assert.Contains(t, buf.String(), "level=warning")
}
