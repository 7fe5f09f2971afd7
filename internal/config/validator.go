package config

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/variantkit/internal/variant"
	apperrors "github.com/alexisbeaulieu97/variantkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	componentNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	propNamePattern      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
	platformScopes       = map[string]struct{}{"all": {}, "web": {}, "native": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			return componentNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("prop_name", func(fl validator.FieldLevel) bool {
			return propNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("platform_scope", func(fl validator.FieldLevel) bool {
			_, ok := platformScopes[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateFile performs schema and cross-field validation on a component file.
func ValidateFile(file *File) error {
	if file == nil {
		return apperrors.NewValidationError("component", "component file is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(file); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(file.Variants))
	for i, vr := range file.Variants {
		if prev, exists := seen[vr.Name]; exists {
			return apperrors.NewValidationError(fieldForVariant(i, "name"), fmt.Sprintf("duplicate variant %q (first declared at variants[%d])", vr.Name, prev), nil)
		}
		seen[vr.Name] = i

		if err := validateVariant(vr, i); err != nil {
			return err
		}
	}

	return nil
}

func validateVariant(vr Variant, index int) error {
	shared := vr.shared()
	if shared.empty() && (vr.Web == nil || vr.Web.empty()) && (vr.Native == nil || vr.Native.empty()) {
		return apperrors.NewValidationError(fieldForVariant(index, "cases"), "variant declares no rules", nil)
	}

	scopes := []struct {
		prefix string
		rules  *Rules
	}{
		{"", &shared},
		{"web.", vr.Web},
		{"native.", vr.Native},
	}
	for _, scope := range scopes {
		if scope.rules == nil {
			continue
		}
		if err := validateRules(*scope.rules, fieldForVariant(index, scope.prefix)); err != nil {
			return err
		}
	}
	return nil
}

func validateRules(r Rules, field string) error {
	v := validatorInstance()
	for key := range r.Cases {
		if key == variant.NumberKey {
			return apperrors.NewValidationError(field+"cases", fmt.Sprintf("use a number rule instead of the %q case", key), nil)
		}
		if key == variant.WildcardKey {
			return apperrors.NewValidationError(field+"cases", fmt.Sprintf("use a wildcard rule instead of the %q case", key), nil)
		}
	}
	if r.Number != nil {
		if err := v.Struct(r.Number); err != nil {
			return convertValidationError(err)
		}
		if r.Number.Min != nil && r.Number.Max != nil && *r.Number.Min > *r.Number.Max {
			return apperrors.NewValidationError(field+"number", "min must not exceed max", nil)
		}
	}
	if r.Wildcard != nil {
		if err := v.Struct(r.Wildcard); err != nil {
			return convertValidationError(err)
		}
		if r.Wildcard.Ignore && len(r.Wildcard.Style) > 0 {
			return apperrors.NewValidationError(field+"wildcard", "ignore and style are mutually exclusive", nil)
		}
	}
	return nil
}
