package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"msc-team.backend/internal/domain/entities"
	domainerrors "msc-team.backend/internal/domain/errors"
)

const (
	tagLettersSpaces   = "letters_spaces"
	tagDigits          = "digits"
	tagGithubProfile   = "github_profile"
	tagLinkedinProfile = "linkedin_profile"
	tagDepartment      = "department"

	// tagType is not a validator tag; it keys the message used when a JSON
	// body carries the wrong type for a field.
	tagType = "type"
)

// patternTags maps the regexp-backed custom tags to their expressions.
var patternTags = map[string]*regexp.Regexp{
	tagLettersSpaces:   regexp.MustCompile(`^[a-zA-Z\s]+$`),
	tagDigits:          regexp.MustCompile(`^[0-9]+$`),
	tagGithubProfile:   regexp.MustCompile(`^https://github\.com/`),
	tagLinkedinProfile: regexp.MustCompile(`^https://(www\.)?linkedin\.com/in/`),
}

var customTagTexts = map[string]string{
	tagLettersSpaces:   "{0} can only contain letters and spaces",
	tagDigits:          "{0} can only contain digits",
	tagGithubProfile:   "{0} must be a GitHub profile URL",
	tagLinkedinProfile: "{0} must be a LinkedIn profile URL",
	tagDepartment:      "{0} must be a valid department",
}

// fieldMessages holds the user-facing message per field and failing tag.
var fieldMessages = map[string]map[string]string{
	"name": {
		"required":       "Name is required",
		"min":            "Name must be between 2 and 100 characters",
		"max":            "Name must be between 2 and 100 characters",
		tagLettersSpaces: "Name can only contain letters and spaces",
		tagType:          "Name must be text",
	},
	"regNumber": {
		"required": "Registration number is required",
		"max":      "Registration number cannot exceed 20 characters",
		tagType:    "Registration number must be text",
	},
	"email": {
		"required": "Email is required",
		"email":    "Please provide a valid email",
		tagType:    "Please provide a valid email",
	},
	"contactNumber": {
		"required": "Contact Number is required",
		"len":      "Contact Number must be exactly 10 digits",
		tagDigits:  "Contact Number can only contain digits",
		tagType:    "Contact Number must be exactly 10 digits",
	},
	"department": {
		"required":    "Department is required",
		tagDepartment: "Please select a valid department",
		tagType:       "Please select a valid department",
	},
	"role": {
		"required": "Role is required",
		"max":      "Role cannot exceed 100 characters",
		tagType:    "Role must be text",
	},
	"githubLink": {
		"required":       "GitHub Link is required",
		"url":            "GitHub Link must be a valid URL",
		tagGithubProfile: "GitHub Link must start with https://github.com/",
		tagType:          "GitHub Link must be a valid URL",
	},
	"linkedinLink": {
		"required":         "LinkedIn Link is required",
		"url":              "LinkedIn Link must be a valid URL",
		tagLinkedinProfile: "LinkedIn Link must start with https://www.linkedin.com/in/",
		tagType:            "LinkedIn Link must be a valid URL",
	},
	"resumeLink": {
		"required": "Resume Link is required",
		"url":      "Resume Link must be a valid URL",
		tagType:    "Resume Link must be a valid URL",
	},
	"portfolioLink": {
		"required": "Portfolio Link is required",
		"url":      "Portfolio Link must be a valid URL",
		tagType:    "Portfolio Link must be a valid URL",
	},
	"skills": {
		"required": "Skills is required",
		tagType:    "Skills must be a comma-separated string",
	},
	"shortBio": {
		"required": "Short Bio is required",
		"max":      "Bio cannot exceed 500 characters",
		tagType:    "Short Bio must be text",
	},
}

// Validator checks team member submissions against the rule set declared
// on entities.TeamMemberInput.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
	rules      []FieldRule
}

// New builds a Validator with the custom tags and English messages registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(jsonFieldName)

	for tag, re := range patternTags {
		re := re
		_ = validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}
	_ = validate.RegisterValidation(tagDepartment, func(fl validator.FieldLevel) bool {
		return entities.IsValidDepartment(fl.Field().String())
	})

	for tag, text := range customTagTexts {
		registerCustomTranslation(validate, translator, tag, text)
	}

	v := &Validator{validate: validate, translator: translator}
	v.rules = buildRules(reflect.TypeOf(entities.TeamMemberInput{}))
	return v
}

// Validate returns every failing field of in, in declaration order.
// The input is expected to be sanitized already.
func (v *Validator) Validate(in *entities.TeamMemberInput) []domainerrors.FieldError {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domainerrors.FieldError{{Message: err.Error()}}
	}

	out := make([]domainerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domainerrors.FieldError{
			Field:   fe.Field(),
			Message: v.message(fe),
		})
	}
	return out
}

func (v *Validator) message(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()][fe.Tag()]; ok {
		return msg
	}
	return fe.Translate(v.translator)
}

// TypeMismatch is the error reported when a body carries a non-text value
// for a text field.
func TypeMismatch(field string) domainerrors.FieldError {
	if msg, ok := fieldMessages[field][tagType]; ok {
		return domainerrors.FieldError{Field: field, Message: msg}
	}
	return domainerrors.FieldError{Field: field, Message: field + " must be text"}
}

// Merge returns base with overrides applied: an override replaces the
// entry for the same field, or is appended when the field has none.
func Merge(base []domainerrors.FieldError, overrides ...domainerrors.FieldError) []domainerrors.FieldError {
	out := append([]domainerrors.FieldError(nil), base...)
	for _, o := range overrides {
		replaced := false
		for i := range out {
			if out[i].Field == o.Field {
				out[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func registerCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}
