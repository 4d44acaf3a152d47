package floor

import (
	"fmt"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// ValidateElement checks that an element has an id and a valid payload.
func ValidateElement(e Element) error {
	if err := errors.ValidateID(e.ID); err != nil {
		return err
	}
	return ValidateProps(e)
}

// ValidateProps checks an element's payload only, so elements can be checked
// before [Plan.AddElement] assigns their id.
func ValidateProps(e Element) error {
	switch p := e.Props.(type) {
	case nil:
		return errors.New(errors.ErrCodeInvalidElement, "element %q has no properties", e.ID)
	case Unknown:
		return errors.New(errors.ErrCodeInvalidElement, "element %q has unknown type %q", e.ID, p.Kind)
	case Stairs:
		if p.StepCount < 0 {
			return errors.New(errors.ErrCodeInvalidElement, "stairs %q: negative step count", e.ID)
		}
	case Bar:
		if p.SeatCount < 0 {
			return errors.New(errors.ErrCodeInvalidElement, "bar %q: negative seat count", e.ID)
		}
	}
	return nil
}

// Validate checks every table and element in the plan and returns the problems
// found, one message per line item. Table ids must be unique.
func (p *Plan) Validate() []error {
	var errs []error
	seen := map[string]bool{}
	for _, t := range p.Tables {
		if err := errors.ValidateID(t.ID); err != nil {
			errs = append(errs, fmt.Errorf("table %q: %w", t.ID, err))
			continue
		}
		if seen[t.ID] {
			errs = append(errs, errors.New(errors.ErrCodeInvalidInput, "duplicate table id %q", t.ID))
		}
		seen[t.ID] = true
		if fe := ValidateTable(t); !fe.Empty() {
			errs = append(errs, errors.Wrap(codeFor(fe), fe, "table %q", t.ID))
		}
		if t.Status != StatusActive && t.Status != StatusExcluded {
			errs = append(errs, errors.New(errors.ErrCodeInvalidInput, "table %q: unknown status %q", t.ID, t.Status))
		}
	}
	for _, e := range p.Elements {
		if err := ValidateElement(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func codeFor(fe errors.FieldErrors) errors.Code {
	switch {
	case fe.Has("name"):
		return errors.ErrCodeInvalidName
	case fe.Has("capacity"), fe.Has("minCapacity"), fe.Has("maxCapacity"):
		return errors.ErrCodeInvalidCapacity
	}
	return errors.ErrCodeInvalidInput
}
