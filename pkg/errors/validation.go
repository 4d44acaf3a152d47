package errors

import (
	"slices"
	"strings"
	"unicode"
)

// FieldErrors collects per-field validation messages, keyed by form field name.
// An empty FieldErrors means the input is valid.
//
// FieldErrors are values, not failures: form validation reports them inline and
// the caller decides whether to surface them. Use [FieldErrors.Err] to convert to
// an error at API or CLI boundaries.
type FieldErrors map[string]string

// Add records msg for field. The first message for a field wins.
func (f FieldErrors) Add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

// Has reports whether field has a message.
func (f FieldErrors) Has(field string) bool {
	_, ok := f[field]
	return ok
}

// Empty reports whether no field failed validation.
func (f FieldErrors) Empty() bool { return len(f) == 0 }

// Fields returns the failing field names in sorted order.
func (f FieldErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	slices.Sort(fields)
	return fields
}

// Error implements the error interface with a stable "field: message" listing.
func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for _, k := range f.Fields() {
		parts = append(parts, k+": "+f[k])
	}
	return strings.Join(parts, "; ")
}

// Err returns nil when f is empty, otherwise an *Error with code
// ErrCodeInvalidInput wrapping f.
func (f FieldErrors) Err() error {
	if f.Empty() {
		return nil
	}
	return Wrap(ErrCodeInvalidInput, f, "validation failed")
}

// ValidateID validates a table or element identifier.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or whitespace
//   - No path separators (IDs appear in HTTP routes and cache keys)
//   - Maximum length of 128 characters
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "id too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "id contains invalid characters")
		}
	}
	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidInput, "id cannot contain path separators")
	}
	return nil
}
