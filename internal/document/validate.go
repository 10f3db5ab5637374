package document

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tonal/internal/theme"
	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	colorNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
)

// colorSchema is the validated view of the "color" section.
type colorSchema struct {
	Colors map[string][]string `validate:"dive,keys,color_name,endkeys,min=1,dive,required,tone_value"`
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("color_name", func(fl validator.FieldLevel) bool {
			return colorNamePattern.MatchString(fl.Field().String())
		})

		// Tones are concrete values; a "|" would make them references.
		_ = v.RegisterValidation("tone_value", func(fl validator.FieldLevel) bool {
			tone := fl.Field().String()
			return strings.TrimSpace(tone) != "" && !strings.Contains(tone, "|")
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the "color" section of a document and reports every
// violation as a ValidationErrors value.
func Validate(doc theme.Document) error {
	values := doc.Values()
	section, present := values[theme.ColorKey]
	if !present || section == nil {
		return nil
	}

	colors, ok := section.(map[string]any)
	if !ok {
		return tonalerrors.ValidationErrors{
			{Field: theme.ColorKey, Message: fmt.Sprintf("must map color names to tone lists, got %T", section)},
		}
	}

	var issues tonalerrors.ValidationErrors
	schema := colorSchema{Colors: make(map[string][]string, len(colors))}
	for name, raw := range colors {
		tones, issue := toneStrings(name, raw)
		if issue != nil {
			issues = append(issues, issue)
			continue
		}
		schema.Colors[name] = tones
	}

	if err := validatorInstance().Struct(schema); err != nil {
		issues = append(issues, convertValidationErrors(err)...)
	}

	if len(issues) == 0 {
		return nil
	}
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Field < issues[j].Field })
	return issues
}

func toneStrings(name string, raw any) ([]string, *tonalerrors.ValidationError) {
	field := colorField(name)
	switch tones := raw.(type) {
	case []string:
		return tones, nil
	case []any:
		out := make([]string, 0, len(tones))
		for i, tone := range tones {
			s, ok := tone.(string)
			if !ok {
				return nil, &tonalerrors.ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Message: fmt.Sprintf("tone must be a string, got %T", tone)}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &tonalerrors.ValidationError{Field: field, Message: fmt.Sprintf("must be a list of tones, got %T", raw)}
	}
}

func convertValidationErrors(err error) tonalerrors.ValidationErrors {
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return tonalerrors.ValidationErrors{{Field: theme.ColorKey, Message: err.Error(), Err: err}}
	}

	out := make(tonalerrors.ValidationErrors, 0, len(ves))
	for _, fe := range ves {
		out = append(out, &tonalerrors.ValidationError{
			Field:   schemaField(fe),
			Message: tagMessage(fe),
		})
	}
	return out
}

// schemaField maps "colorSchema.Colors[primary][0]" to "color.primary[0]".
func schemaField(fe validator.FieldError) string {
	ns := strings.TrimPrefix(fe.Namespace(), "colorSchema.Colors")
	if !strings.HasPrefix(ns, "[") {
		return theme.ColorKey
	}
	end := strings.Index(ns, "]")
	if end < 0 {
		return theme.ColorKey
	}
	return colorField(ns[1:end]) + ns[end+1:]
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "color_name":
		return fmt.Sprintf("invalid color name %q", fmt.Sprint(fe.Value()))
	case "min":
		return "needs at least one tone"
	case "required":
		return "tone must not be empty"
	case "tone_value":
		return fmt.Sprintf("tone %q must be a concrete value", fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func colorField(name string) string {
	return theme.ColorKey + "." + name
}
