package dataset

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/poku-e/MopacAssistant/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so messages match the data files.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkRecord validates one decoded record. what names the record in the
// error, e.g. `elements[3]`.
func checkRecord(what string, rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return parseError(errors.Wrapf(err, "%s", what))
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return parseError(errors.Newf("%s: missing field %q", what, fe.Field()))
	}
	return parseError(errors.Newf("%s: field %q fails %s=%s (got %v)", what, fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
}
