// Package schema validates documents against JSON Schema and reports every
// failure in the validation error taxonomy of package errors.
//
// Validation itself is delegated to github.com/santhosh-tekuri/jsonschema;
// this package compiles schemas, normalizes instances and translates the
// validator's error tree into errors.ValidationError values.
package schema

import (
	"errors"
	"log/slog"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

// Option configures a Validator.
type Option func(*options)

type options struct {
	root           schemaerrors.Reference
	schemaLocation bool
	logger         *slog.Logger
}

// WithRoot sets the Reference that instance locations are appended to.
// Default: "#".
func WithRoot(root schemaerrors.Reference) Option {
	return func(o *options) {
		o.root = root
	}
}

// WithSchemaLocation reports the location of the failing schema node instead
// of the location of the failing value.
func WithSchemaLocation() Option {
	return func(o *options) {
		o.schemaLocation = true
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Validator checks documents against one compiled schema.
// It is safe for concurrent use.
type Validator struct {
	name   string
	schema *jsonschema.Schema
	opts   options
}

// Report is the outcome of validating one document.
type Report struct {
	// Errors lists the failures in the order the validator reported them.
	Errors schemaerrors.List

	// Unmapped lists failed keywords that have no taxonomy kind.
	Unmapped []*KeywordError
}

// Valid reports whether the document passed.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0 && len(r.Unmapped) == 0
}

// Err returns every failure joined into one error, or nil when valid.
func (r *Report) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, 0, len(r.Errors)+len(r.Unmapped))
	for _, e := range r.Errors {
		errs = append(errs, e)
	}
	for _, e := range r.Unmapped {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// Compile compiles doc, a schema already decoded into the JSON data model
// (see Decode). name identifies the schema in errors.
func Compile(name string, doc any, opts ...Option) (*Validator, error) {
	o := options{
		root:   schemaerrors.RootReference(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()

	resource := resourceURL(name)
	if err := compiler.AddResource(resource, doc); err != nil {
		return nil, &CompileError{Name: name, Cause: err}
	}

	sch, err := compiler.Compile(resource)
	if err != nil {
		return nil, &CompileError{Name: name, Cause: err}
	}

	return &Validator{name: name, schema: sch, opts: o}, nil
}

// CompileBytes decodes data in the given format and compiles it.
func CompileBytes(name string, data []byte, format Format, opts ...Option) (*Validator, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return nil, &CompileError{Name: name, Cause: err}
	}
	return Compile(name, doc, opts...)
}

// CompileFile loads and compiles the schema at path.
func CompileFile(path string, opts ...Option) (*Validator, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, &CompileError{Name: path, Cause: err}
	}
	return Compile(path, doc, opts...)
}

// Name returns the name the schema was compiled with.
func (v *Validator) Name() string {
	return v.name
}

// Validate checks instance and reports every failure. Instances that are not
// already in the JSON data model are normalized first. The returned error is
// non-nil only when the instance cannot be validated at all.
func (v *Validator) Validate(instance any) (*Report, error) {
	normalized, err := Normalize(instance)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	verr := v.schema.Validate(normalized)
	if verr != nil {
		var jerr *jsonschema.ValidationError
		if !schemaerrors.As(verr, &jerr) {
			return nil, schemaerrors.Wrapf(verr, "validating against %s", v.name)
		}
		report.Errors, report.Unmapped = translate(jerr, normalized, v.opts)
	}

	v.opts.logger.Debug("document validated",
		slog.String("schema", v.name),
		slog.Int("errors", len(report.Errors)),
		slog.Int("unmapped", len(report.Unmapped)),
	)

	return report, nil
}

// resourceURL is the in-memory location schemas are registered under. The
// name is not used: relative $refs to other files are not resolved.
func resourceURL(string) string {
	return "https://schemaerr.local/schema.json"
}
