package inventory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the inventory file format major version this build reads.
const SupportedMajor = "v1"

var structValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Text flows into exported CSV, where a carriage return cannot round-trip.
	if err := v.RegisterValidation("nocr", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), '\r')
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate performs all structural checks on inv.
// Returns a combined error describing every problem found, or nil if valid.
func Validate(inv *Inventory) error {
	var errs []string

	if err := structValidator.Struct(inv); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("inventory validation: %w", err)
		}
		for _, fe := range verrs {
			if fe.Tag() == "nocr" {
				errs = append(errs, fmt.Sprintf("%s: must not contain a carriage return", fe.Namespace()))
				continue
			}
			errs = append(errs, fmt.Sprintf("%s: failed %q check", fe.Namespace(), fe.Tag()))
		}
	}

	if inv.SchemaVersion != "" {
		switch {
		case !semver.IsValid(inv.SchemaVersion):
			errs = append(errs, fmt.Sprintf("schema_version %q is not a valid semantic version", inv.SchemaVersion))
		case semver.Major(inv.SchemaVersion) != SupportedMajor:
			errs = append(errs, fmt.Sprintf("schema_version %q is not supported (want %s.x)", inv.SchemaVersion, SupportedMajor))
		}
	}

	n := len(inv.Questions)
	labels := make(map[string]bool, len(inv.Categories))
	for _, c := range inv.Categories {
		if labels[c.Label] {
			errs = append(errs, fmt.Sprintf("duplicate category label: %q", c.Label))
		}
		labels[c.Label] = true

		seen := make(map[int]bool, len(c.Members))
		for _, id := range c.Members {
			if id < 0 || id >= n {
				errs = append(errs, fmt.Sprintf("category %q references question %d, but only %d questions exist (ids are 0-based)", c.Label, id, n))
			}
			if seen[id] {
				errs = append(errs, fmt.Sprintf("category %q lists question %d more than once", c.Label, id))
			}
			seen[id] = true
		}
	}

	if inv.ChartMax > 0 && inv.ChartMax < inv.MaxTotal() {
		errs = append(errs, fmt.Sprintf("chart_max %d is below the largest category total %d", inv.ChartMax, inv.MaxTotal()))
	}

	if len(errs) > 0 {
		return fmt.Errorf("inventory validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
