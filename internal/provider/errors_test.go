package provider

import (
	"errors"
	"strings"
	"testing"
)

func TestConnectError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConnectError
		wantSub  string
		wantHint bool
	}{
		{
			name: "with hint",
			err: &ConnectError{
				Provider: "aws",
				Cause:    errors.New("no credentials"),
				Hint:     "Run 'aws configure' or set AWS_PROFILE",
			},
			wantSub:  "connect aws: no credentials",
			wantHint: true,
		},
		{
			name: "without hint",
			err: &ConnectError{
				Provider: "aws",
				Cause:    errors.New("bad region"),
			},
			wantSub:  "connect aws: bad region",
			wantHint: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if !strings.Contains(got, tt.wantSub) {
				t.Errorf("Error() = %q, want substring %q", got, tt.wantSub)
			}
			if tt.wantHint && !strings.Contains(got, tt.err.Hint) {
				t.Errorf("Error() = %q, should contain hint %q", got, tt.err.Hint)
			}
		})
	}
}

func TestConnectError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ConnectError{
		Provider: "test",
		Cause:    cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is() should match the cause")
	}
}
