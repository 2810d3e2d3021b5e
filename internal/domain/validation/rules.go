package validation

import (
	"reflect"
	"strconv"
	"strings"

	"msc-team.backend/internal/domain/entities"
)

// FieldRule describes the constraints on one submission field so that an
// interactive form can enforce the same contract the server does.
type FieldRule struct {
	Field     string            `json:"field"`
	Required  bool              `json:"required"`
	MinLength *int              `json:"minLength,omitempty"`
	MaxLength *int              `json:"maxLength,omitempty"`
	Length    *int              `json:"length,omitempty"`
	Format    string            `json:"format,omitempty"`
	Patterns  []string          `json:"patterns,omitempty"`
	Enum      []string          `json:"enum,omitempty"`
	Messages  map[string]string `json:"messages"`
}

// Rules returns the field rule set derived from the validate tags.
func (v *Validator) Rules() []FieldRule {
	out := make([]FieldRule, len(v.rules))
	copy(out, v.rules)
	return out
}

func buildRules(t reflect.Type) []FieldRule {
	rules := make([]FieldRule, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		tag := fld.Tag.Get("validate")
		if tag == "" || tag == "-" {
			continue
		}
		rule := FieldRule{
			Field:    jsonFieldName(fld),
			Messages: map[string]string{},
		}
		for _, part := range strings.Split(tag, ",") {
			name, param, _ := strings.Cut(part, "=")
			switch name {
			case "required":
				rule.Required = true
			case "min":
				rule.MinLength = intParam(param)
			case "max":
				rule.MaxLength = intParam(param)
			case "len":
				rule.Length = intParam(param)
			case "email", "url":
				rule.Format = name
			case tagDepartment:
				rule.Enum = entities.DepartmentNames()
			default:
				if re, ok := patternTags[name]; ok {
					rule.Patterns = append(rule.Patterns, re.String())
				}
			}
		}
		for k, msg := range fieldMessages[rule.Field] {
			if k == tagType {
				continue
			}
			rule.Messages[k] = msg
		}
		rules = append(rules, rule)
	}
	return rules
}

func intParam(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
