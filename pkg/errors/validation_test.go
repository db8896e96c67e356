package errors

import "testing"

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"input.txt", false},
		{"layouts/input.toml", false},
		{"/tmp/input.json", false},
		{"", true},
		{"../secret.txt", true},
		{"a\x00b", true},
		{string(make([]byte, 501)), true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidPath) {
			t.Errorf("ValidatePath(%q) code = %v, want %v", tt.path, GetCode(err), ErrCodeInvalidPath)
		}
	}
}

func TestValidateRank(t *testing.T) {
	tests := []struct {
		rank string
		code Code
	}{
		{"1", ""},
		{" 42 ", ""},
		{"100000000000000000000000000000", ""},
		{"", ErrCodeInvalidInput},
		{"-3", ErrCodeInvalidInput},
		{"1e3", ErrCodeInvalidInput},
		{"0", ErrCodePrecondition},
		{"000", ErrCodePrecondition},
	}

	for _, tt := range tests {
		err := ValidateRank(tt.rank)
		if got := GetCode(err); got != tt.code {
			t.Errorf("ValidateRank(%q) code = %q, want %q (err %v)", tt.rank, got, tt.code, err)
		}
	}
}
