package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "plain",
			err:  New(ErrCodeTableNotFound, "table %q not found", "table-9"),
			want: `TABLE_NOT_FOUND: table "table-9" not found`,
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeFileNotFound, os.ErrNotExist, "plan file %s", "terraza.json"),
			want: "FILE_NOT_FOUND: plan file terraza.json: file does not exist",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrCodeInvalidInput, os.ErrNotExist, "decode plan")
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("wrapped cause should match errors.Is")
	}
	if errors.Unwrap(err) != os.ErrNotExist {
		t.Error("Unwrap should return the cause")
	}
	if New(ErrCodeInternal, "x").Unwrap() != nil {
		t.Error("New should have no cause")
	}
}

func TestCodeLookup(t *testing.T) {
	capacity := New(ErrCodeInvalidCapacity, "min above max")
	tests := []struct {
		name    string
		err     error
		code    Code
		message string
	}{
		{"coded", capacity, ErrCodeInvalidCapacity, "min above max"},
		{"fmt wrapped", fmt.Errorf("save table: %w", capacity), ErrCodeInvalidCapacity, "min above max"},
		{"outermost wins", Wrap(ErrCodeInvalidElement, capacity, "element 3"), ErrCodeInvalidElement, "element 3"},
		{"uncoded", errors.New("disk full"), "", "disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false", tt.code)
			}
			if Is(tt.err, ErrCodeInternal) {
				t.Error("Is(ErrCodeInternal) = true")
			}
			if got := UserMessage(tt.err); got != tt.message {
				t.Errorf("UserMessage() = %q, want %q", got, tt.message)
			}
		})
	}

	if GetCode(nil) != "" || Is(nil, "") {
		t.Error("nil error should carry no code")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"invalid", New(ErrCodeInvalidCapacity, "min above max"), KindInvalid},
		{"not found", New(ErrCodeTableNotFound, "table-9"), KindNotFound},
		{"wrapped", fmt.Errorf("load: %w", New(ErrCodeFileNotFound, "plan.json")), KindNotFound},
		{"internal", New(ErrCodeInternal, "encode"), KindInternal},
		{"uncoded", errors.New("boom"), KindInternal},
		{"unknown code", New(Code("SOMETHING_ELSE"), "x"), KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}
