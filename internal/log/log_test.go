// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := map[string]log.Level{
		"trace":  log.DebugLevel,
		"debug":  log.DebugLevel,
		"info":   log.InfoLevel,
		"warn":   log.WarnLevel,
		"error":  log.ErrorLevel,
		"fatal":  log.FatalLevel,
		"chatty": log.ErrorLevel,
		"":       log.ErrorLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, levelFor(in), in)
	}
}

func TestCustomHandler(t *testing.T) {
	tests := []struct {
		name  string
		entry *log.Entry
		want  string
	}{
		{
			name:  "warn",
			entry: &log.Entry{Level: log.WarnLevel, Message: "range is backwards"},
			want:  " W range is backwards\n",
		},
		{
			name:  "trace prefix",
			entry: &log.Entry{Level: log.DebugLevel, Message: "TRACE: rows=3"},
			want:  " T rows=3\n",
		},
		{
			name: "error field",
			entry: &log.Entry{
				Level:   log.ErrorLevel,
				Message: "read failed",
				Fields:  log.Fields{"error": errors.New("boom")},
			},
			want: " E read failed: error=boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &CustomHandler{W: &buf}
			assert.NoError(t, h.HandleLog(tt.entry))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestInitLogger_Trace(t *testing.T) {
	t.Setenv("TRIPCTL_LOG", "TRACE")
	InitLogger()
	assert.True(t, traceEnabled)

	t.Setenv("TRIPCTL_LOG", "")
	InitLogger()
	assert.False(t, traceEnabled)
}
