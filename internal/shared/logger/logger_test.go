package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "info level", verbose: false, wantDebug: false},
		{name: "debug level", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			log := New(&out, &errOut, tt.verbose)

			log.Debug("debug line")
			log.Info("info line")
			log.Error("error line", "path", "notes/x.md")

			if got := strings.Contains(out.String(), "debug line"); got != tt.wantDebug {
				t.Errorf("debug present = %v, want %v", got, tt.wantDebug)
			}
			if !strings.Contains(out.String(), "info line") {
				t.Error("info line missing from text output")
			}
			if strings.Contains(errOut.String(), "info line") {
				t.Error("info line leaked into error output")
			}
			if !strings.Contains(errOut.String(), `"msg":"error line"`) {
				t.Errorf("error output = %q, want JSON error record", errOut.String())
			}
		})
	}
}
