package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/samber/oops"

	"github.com/forgetpass/forgetpass/internal/clipboard"
	"github.com/forgetpass/forgetpass/internal/derive"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing secret",
			err:  oops.Code(derive.CodeMissingSecret).Errorf("secret required"),
			want: "a master key is required: enter one manually or use the hardware fingerprint",
		},
		{
			name: "missing keywords",
			err:  oops.Code(derive.CodeMissingKeywords).Errorf("no keywords"),
			want: "at least one keyword is required",
		},
		{
			name: "invalid length",
			err:  oops.Code(derive.CodeInvalidLength).Errorf("length 0"),
			want: "password length must be between 8 and 128",
		},
		{
			name: "encoding failure",
			err:  oops.Code(derive.CodeEncodingFailure).Errorf("invalid byte sequence"),
			want: "inputs could not be encoded; remove invalid characters and retry",
		},
		{
			name: "clipboard unavailable",
			err:  oops.Code(clipboard.CodeUnavailable).Errorf("no helper"),
			want: "no clipboard is available on this system",
		},
		{
			name: "clipboard write failed",
			err:  oops.Code(clipboard.CodeWriteFailed).Errorf("xclip exited 1"),
			want: "could not write to the clipboard",
		},
		{
			name: "clipboard clear failed",
			err:  oops.Code(clipboard.CodeClearFailed).Errorf("timeout"),
			want: "could not clear the clipboard; overwrite it manually",
		},
		{
			name: "plain error",
			err:  errors.New("plain failure"),
			want: "plain failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userMessage(tt.err); got != tt.want {
				t.Errorf("userMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessage_UnknownCode(t *testing.T) {
	err := oops.Code("SOMETHING_ELSE").Errorf("backing detail")
	got := userMessage(err)
	if !strings.Contains(got, "backing detail") {
		t.Errorf("userMessage() = %q, should carry the original message", got)
	}
}
