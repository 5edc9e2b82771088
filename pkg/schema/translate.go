package schema

import (
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

// Translate converts a validation failure returned by a compiled
// jsonschema.Schema into taxonomy errors. instance must be the value that was
// validated; offending values are read from it. Failures whose keyword has
// no taxonomy kind are returned as KeywordErrors.
//
// Errors that are not *jsonschema.ValidationError yield nothing.
func Translate(err error, instance any, opts ...Option) (schemaerrors.List, []*KeywordError) {
	var jerr *jsonschema.ValidationError
	if !schemaerrors.As(err, &jerr) {
		return nil, nil
	}
	o := options{root: schemaerrors.RootReference()}
	for _, opt := range opts {
		opt(&o)
	}
	return translate(jerr, instance, o)
}

type translator struct {
	instance any
	opts     options
	printer  *message.Printer
	errs     schemaerrors.List
	unmapped []*KeywordError
}

func translate(jerr *jsonschema.ValidationError, instance any, opts options) (schemaerrors.List, []*KeywordError) {
	t := &translator{
		instance: instance,
		opts:     opts,
		printer:  message.NewPrinter(language.English),
	}
	t.walk(jerr)
	return t.errs, t.unmapped
}

func (t *translator) walk(e *jsonschema.ValidationError) {
	if verr := t.convert(e); verr != nil {
		t.errs.Add(verr)
		return
	}

	if len(e.Causes) > 0 {
		for _, cause := range e.Causes {
			t.walk(cause)
		}
		return
	}

	keyword := "schema"
	if path := e.ErrorKind.KeywordPath(); len(path) > 0 {
		keyword = strings.Join(path, "/")
	}
	t.unmapped = append(t.unmapped, NewKeywordError(t.reference(e).String(), keyword, e.ErrorKind.LocalizedString(t.printer)))
}

// convert maps one validator error onto a taxonomy kind, or returns nil when
// the keyword has no kind.
func (t *translator) convert(e *jsonschema.ValidationError) schemaerrors.ValidationError {
	ref := t.reference(e)
	value := lookup(t.instance, e.InstanceLocation)

	switch k := e.ErrorKind.(type) {
	case *kind.Type:
		if k.Got == "null" {
			return schemaerrors.NewNullNotAllowed(ref)
		}
		return schemaerrors.NewTypeMismatch(value, strings.Join(k.Want, " or "), ref)
	case *kind.Required:
		return schemaerrors.NewMissingRequiredKeys(k.Missing, ref)
	case *kind.AdditionalProperties:
		return schemaerrors.NewUnknownProperties(k.Properties, ref)
	case *kind.Enum, *kind.Const:
		return schemaerrors.NewEnumMismatch(value, ref)
	case *kind.OneOf:
		return schemaerrors.NewNotOneOf(value, ref)
	case *kind.AnyOf:
		return schemaerrors.NewNotAnyOf(value, ref)
	case *kind.Minimum:
		return schemaerrors.NewLessThanMinimum(value, ref)
	case *kind.ExclusiveMinimum:
		return schemaerrors.NewLessThanExclusiveMinimum(value, ref)
	case *kind.Maximum:
		return schemaerrors.NewMoreThanMaximum(value, ref)
	case *kind.ExclusiveMaximum:
		return schemaerrors.NewMoreThanExclusiveMaximum(value, ref)
	case *kind.Pattern:
		return schemaerrors.NewPatternMismatch(k.Got, k.Want, ref)
	case *kind.Format:
		if k.Want == "email" || k.Want == "idn-email" {
			return schemaerrors.NewInvalidEmailFormat(value, ref)
		}
	case *kind.MinLength:
		return schemaerrors.NewMinLengthViolated(value, ref)
	case *kind.MaxLength:
		return schemaerrors.NewMaxLengthExceeded(value, ref)
	case *kind.MinItems:
		return schemaerrors.NewMinItemsViolated(value, ref)
	case *kind.MaxItems:
		return schemaerrors.NewMaxItemsExceeded(value, ref)
	}
	return nil
}

func (t *translator) reference(e *jsonschema.ValidationError) schemaerrors.Reference {
	if t.opts.schemaLocation {
		return schemaReference(e)
	}
	ref := t.opts.root
	for _, token := range e.InstanceLocation {
		ref = ref.Append(token)
	}
	return ref
}

// schemaReference turns the location of the schema node that failed into a
// reference, e.g. "#/properties/age".
func schemaReference(e *jsonschema.ValidationError) schemaerrors.Reference {
	ref := schemaerrors.RootReference()

	_, fragment, _ := strings.Cut(e.SchemaURL, "#")
	fragment = strings.TrimPrefix(fragment, "/")
	if fragment == "" {
		return ref
	}

	for _, token := range strings.Split(fragment, "/") {
		ref = ref.Append(pointerUnescaper.Replace(token))
	}
	return ref
}

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// lookup resolves an instance location, returning nil when it does not exist.
func lookup(instance any, location []string) any {
	cur := instance
	for _, token := range location {
		switch node := cur.(type) {
		case map[string]any:
			cur = node[token]
		case []any:
			i, err := strconv.Atoi(token)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			cur = node[i]
		default:
			return nil
		}
	}
	return cur
}
