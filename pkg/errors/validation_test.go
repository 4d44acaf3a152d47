package errors

import (
	"errors"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{}
	if !fe.Empty() {
		t.Fatal("new FieldErrors should be empty")
	}
	if fe.Err() != nil {
		t.Error("Err() on empty FieldErrors should be nil")
	}

	fe.Add("name", "name is required")
	fe.Add("name", "second message is ignored")
	fe.Add("capacity", "minimum exceeds maximum")

	if fe.Empty() {
		t.Fatal("FieldErrors should not be empty after Add")
	}
	if !fe.Has("name") || !fe.Has("capacity") {
		t.Errorf("Has() missing fields: %v", fe)
	}
	if fe["name"] != "name is required" {
		t.Errorf("first message should win, got %q", fe["name"])
	}

	want := "capacity: minimum exceeds maximum; name: name is required"
	if got := fe.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err := fe.Err()
	if !Is(err, ErrCodeInvalidInput) {
		t.Errorf("Err() code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
	}
	var got FieldErrors
	if !errors.As(err, &got) {
		t.Fatal("Err() should wrap FieldErrors")
	}
	if len(got) != 2 {
		t.Errorf("wrapped FieldErrors len = %d, want 2", len(got))
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"table id", "table-1", false},
		{"uuid id", "table-7f3c2a9e-0d5b-4f8a-9c1e-2b6d4e8f0a1c", false},
		{"element id", "element-42", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"space", "table 1", true},
		{"slash", "table/1", true},
		{"backslash", "table\\1", true},
		{"control char", "table\x01", true},
		{"newline", "table\n1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
