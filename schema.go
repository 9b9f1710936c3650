package sas7bdat

import "time"

// Schema is an immutable dataset definition: a creation timestamp, a
// dataset name/type/label, and an ordered list of variables.
type Schema struct {
	created time.Time
	name    string
	typ     string
	label   string
	vars    []Variable
}

// SchemaOptions configures NewSchema; the zero value uses the documented
// defaults (creation time now, dataset type "DATA", empty name/label).
type SchemaOptions struct {
	Created time.Time
	Name    string
	Type    string
	Label   string
}

// NewSchema builds a Schema from opts and the given variables, enforcing
// spec.md §3's invariants: name <=64 bytes, type <=8 bytes, label <=256
// bytes, 1..32767 variables with names unique after normalisation.
func NewSchema(opts SchemaOptions, vars []Variable) (*Schema, error) {
	created := opts.Created
	if created.IsZero() {
		created = time.Now()
	}
	typ := opts.Type
	if typ == "" {
		typ = "DATA"
	}

	if len(opts.Name) > 64 {
		return nil, newErr(KindBadArgument, "dataset name exceeds 64 bytes")
	}
	if len(typ) > 8 {
		return nil, newErr(KindBadArgument, "dataset type exceeds 8 bytes")
	}
	if len(opts.Label) > 256 {
		return nil, newErr(KindBadArgument, "dataset label exceeds 256 bytes")
	}

	if len(vars) == 0 {
		return nil, newErr(KindBadSchema, "schema must have at least 1 variable")
	}
	if len(vars) > 32767 {
		return nil, newErr(KindBadSchema, "schema has %d variables, exceeding 32767", len(vars))
	}

	seen := make(map[string]string, len(vars))
	for _, v := range vars {
		norm := normalizedName(v.Name())
		if existing, ok := seen[norm]; ok {
			return nil, newErr(KindBadSchema, "duplicate variable name %q collides with %q after normalisation", v.Name(), existing)
		}
		seen[norm] = v.Name()
	}

	out := make([]Variable, len(vars))
	copy(out, vars)

	return &Schema{
		created: created,
		name:    opts.Name,
		typ:     typ,
		label:   opts.Label,
		vars:    out,
	}, nil
}

// Created returns the dataset's creation timestamp.
func (s *Schema) Created() time.Time { return s.created }

// Name returns the dataset name.
func (s *Schema) Name() string { return s.name }

// Type returns the dataset type (defaults to "DATA").
func (s *Schema) Type() string { return s.typ }

// Label returns the dataset label.
func (s *Schema) Label() string { return s.label }

// Variables returns the schema's variables in declaration order. The
// returned slice is a copy; mutating it does not affect the Schema.
func (s *Schema) Variables() []Variable {
	out := make([]Variable, len(s.vars))
	copy(out, s.vars)
	return out
}

// VariableCount returns the number of variables in the schema.
func (s *Schema) VariableCount() int {
	return len(s.vars)
}
