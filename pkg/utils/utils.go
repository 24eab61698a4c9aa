package utils

import (
	"crypto/md5"
	"encoding/hex"
	"reflect"
	"strings"

	"github.com/Atul9/coveralls-api/pkg/errs"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
)

const (
	emptyTagName    = "-"
	jsonTagName     = "json"
	requiredTagName = "required"
)

// ComputeDigest returns the lowercase hex md5 of content.
func ComputeDigest(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])
}

// GenerateUUID generates uuid v4
func GenerateUUID() string {
	uuidV4 := uuid.New() // panics on error
	return strings.Map(func(r rune) rune {
		if r == '-' {
			return -1
		}
		return r
	}, uuidV4.String())
}

// ValidateStruct validates s against its `validate` tags and returns an
// ERR::CNF::FLD::VLD error listing every violation in plain english.
func ValidateStruct(s interface{}) error {
	validate, trans, err := getValidator()
	if err != nil {
		return err
	}
	validateErr := validate.Struct(s)
	if validateErr == nil {
		return nil
	}
	validationErrs, ok := validateErr.(validator.ValidationErrors)
	if !ok {
		return validateErr
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, e.Translate(trans))
	}
	return errs.ERR_VLD_CFG(messages)
}

// configureValidator configure the struct validator
func configureValidator(validate *validator.Validate, trans ut.Translator) {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// nolint: gomnd
		name := strings.SplitN(fld.Tag.Get(jsonTagName), ",", 2)[0]
		if name == emptyTagName || name == "" {
			return fld.Name
		}
		return name
	})

	// nolint: errcheck
	validate.RegisterTranslation(requiredTagName, trans, func(ut ut.Translator) error {
		return ut.Add(requiredTagName, "{0} field is required!", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(requiredTagName, fe.Field())
		return t
	})
}

func getValidator() (*validator.Validate, ut.Translator, error) {
	enObj := en.New()
	uni := ut.New(enObj, enObj)
	trans, _ := uni.GetTranslator("en")
	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, err
	}
	configureValidator(validate, trans)
	return validate, trans, nil
}
