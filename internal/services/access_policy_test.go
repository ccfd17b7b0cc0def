package services

import (
	"errors"
	"testing"
)

func TestAuthorize(t *testing.T) {
	keys := []string{"key_aaa", "key_bbb"}

	tests := []struct {
		name      string
		presented string
		wantErr   error
	}{
		{"valid key", "key_aaa", nil},
		{"second valid key", "key_bbb", nil},
		{"missing key", "", ErrMissingAPIKey},
		{"unknown key", "key_zzz", ErrInvalidAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.presented, keys)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got err=%v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeEmptyKeySetRejectsEverything(t *testing.T) {
	if err := Authorize("anything", nil); !errors.Is(err, ErrInvalidAPIKey) {
		t.Fatalf("got err=%v, want ErrInvalidAPIKey", err)
	}
}
