// Validation of the decoded rules.json with translated messages
package rulepack

import (
	"reflect"
	"strings"
	"sync"

	perr "later/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// validatorSvc holds a singleton validator and translator
type validatorSvc struct {
	validator  *validator.Validate
	translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *validatorSvc
)

// getValidator initializes the singleton validator with english translations and json tag names
func getValidator() *validatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages so failures point at rules.json keys
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerShortGT(v, trans)
		registerShortMin(v, trans)

		vSvc = &validatorSvc{validator: v, translator: trans}
	})
	return vSvc
}

// validateRaw maps the first validation failure to a project error carrying the offending field
func validateRaw(rp *rawPack) error {
	svc := getValidator()
	err := svc.validator.Struct(rp)
	if err == nil {
		return nil
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		return perr.Wrap(inv, perr.ErrorCodeValidation, "rulepack: validator internal error")
	}
	field, msg := firstFieldAndMessage(err, svc.translator)
	return perr.WithField(perr.Validationf("rulepack: %s", msg), field)
}

// firstFieldAndMessage returns the first field and translated message
func firstFieldAndMessage(err error, trans ut.Translator) (field, message string) {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(trans)
		}
	}
	return "", err.Error()
}

// custom translations with short messages

func registerShortGT(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("gt", trans,
		func(ut ut.Translator) error {
			return ut.Add("gt", "{0} must be greater than {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("gt", fe.Field(), fe.Param())
			return msg
		},
	)
}

func registerShortMin(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("min", trans,
		func(ut ut.Translator) error {
			return ut.Add("min", "{0} must have at least {1} entries", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("min", fe.Field(), fe.Param())
			return msg
		},
	)
}
