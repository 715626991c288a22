package errmsg

import (
	"errors"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		err  error
		want string
	}{
		{
			name: "history open failure",
			op:   OpHistoryOpen,
			err:  errors.New("database is locked"),
			want: "Failed to open notification history: database is locked",
		},
		{
			name: "config load failure",
			op:   OpConfigLoad,
			err:  errors.New("permission denied"),
			want: "Failed to load configuration: permission denied",
		},
		{
			name: "desktop notify failure",
			op:   OpDesktopNotify,
			err:  errors.New("no session bus"),
			want: "Failed to send desktop notification: no session bus",
		},
		{
			name: "nil error means no message",
			op:   OpHistoryOpen,
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.want {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, got, tt.want)
			}
		})
	}
}

func TestOpsReadAsSentences(t *testing.T) {
	ops := []Op{
		OpConfigLoad,
		OpHistoryOpen, OpHistoryLoad, OpHistoryDelete, OpHistoryClear,
		OpDesktopNotify,
		OpInitialize,
	}

	for _, op := range ops {
		// Each op slots into "Failed to <op>: ..." as a verb phrase,
		// so it must be non-empty, lowercase, and unpunctuated.
		s := string(op)
		if s == "" {
			t.Error("empty Op constant")
			continue
		}
		if s != strings.ToLower(s) {
			t.Errorf("Op %q is not all lowercase", s)
		}
		if strings.ContainsAny(s, ".:;,") {
			t.Errorf("Op %q carries punctuation", s)
		}
	}
}
