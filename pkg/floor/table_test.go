package floor

import "testing"

func TestTableSize(t *testing.T) {
	tests := []struct {
		max  int
		want float64
	}{
		{max: 0, want: 40},
		{max: 4, want: 40},
		{max: 5, want: 40},
		{max: 6, want: 48},
		{max: 10, want: 80},
	}
	for _, tt := range tests {
		tbl := Table{Capacity: Capacity{Min: 1, Max: tt.max}}
		if got := tbl.Size(); got != tt.want {
			t.Errorf("Size(max=%d) = %v, want %v", tt.max, got, tt.want)
		}
	}

	rect := Table{Shape: ShapeRectangular, Capacity: Capacity{Min: 2, Max: 10}}
	if got := rect.RectSize(); got != 64 {
		t.Errorf("RectSize() = %v, want 64", got)
	}
}

func TestValidateTable(t *testing.T) {
	tests := []struct {
		name      string
		table     Table
		wantField string
	}{
		{"valid", Table{Name: "Mesa 1", Shape: ShapeCircular, Capacity: Capacity{2, 4}}, ""},
		{"equal bounds", Table{Name: "Bar", Shape: ShapeRectangular, Capacity: Capacity{4, 4}}, ""},
		{"zero minimum", Table{Name: "Mesa", Shape: ShapeCircular, Capacity: Capacity{0, 4}}, "minCapacity"},
		{"zero maximum", Table{Name: "Mesa", Shape: ShapeCircular, Capacity: Capacity{1, 0}}, "maxCapacity"},
		{"inverted range", Table{Name: "Mesa", Shape: ShapeCircular, Capacity: Capacity{5, 2}}, "capacity"},
		{"blank name", Table{Name: "   ", Shape: ShapeCircular, Capacity: Capacity{2, 4}}, "name"},
		{"bad shape", Table{Name: "Mesa", Shape: "oval", Capacity: Capacity{2, 4}}, "shape"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := ValidateTable(tt.table)
			if tt.wantField == "" {
				if !fe.Empty() {
					t.Fatalf("expected valid, got %v", fe)
				}
				return
			}
			if !fe.Has(tt.wantField) {
				t.Fatalf("expected error on %q, got %v", tt.wantField, fe)
			}
		})
	}
}

func TestTableConfigValidate(t *testing.T) {
	cfg := DefaultTableConfig(ShapeCircular, "Mesa 9")
	if fe := cfg.Validate(); !fe.Empty() {
		t.Fatalf("default config invalid: %v", fe)
	}
	cfg.MinCapacity = 5
	cfg.MaxCapacity = 2
	if fe := cfg.Validate(); !fe.Has("capacity") {
		t.Fatalf("expected capacity error, got %v", fe)
	}
}

func TestCapacityString(t *testing.T) {
	if got := (Capacity{2, 6}).String(); got != "2-6" {
		t.Errorf("String() = %q, want 2-6", got)
	}
}
