package blaeck

import "testing"

func TestDetectCapabilities(t *testing.T) {
	type tc struct {
		env       map[string]string
		trueColor bool
	}

	tests := map[string]tc{
		"colorterm truecolor": {
			env:       map[string]string{"TERM": "xterm-256color", "COLORTERM": "truecolor"},
			trueColor: true,
		},
		"plain 256color term": {
			env:       map[string]string{"TERM": "xterm-256color", "COLORTERM": ""},
			trueColor: false,
		},
		"dumb terminal": {
			env:       map[string]string{"TERM": "dumb", "COLORTERM": ""},
			trueColor: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			caps := DetectCapabilities()
			if caps.TrueColor != tt.trueColor {
				t.Errorf("TrueColor = %v, want %v", caps.TrueColor, tt.trueColor)
			}
			if !caps.Unicode {
				t.Error("Unicode should default to true")
			}
		})
	}
}
