// Package validation holds the pure per-entity validators. Each validator
// collects every applicable field error — it never fails fast — and takes the
// current time as an argument so it stays deterministic and side-effect free.
package validation

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result accumulates field errors in the order the rules ran. An empty
// result means the input is valid.
type Result struct {
	errs []FieldError
}

func (r *Result) add(field, message string) {
	r.errs = append(r.errs, FieldError{Field: field, Message: message})
}

// Valid reports whether no rule was violated.
func (r Result) Valid() bool { return len(r.errs) == 0 }

// FieldErrors returns the collected errors in rule order.
func (r Result) FieldErrors() []FieldError { return r.errs }

// ByField groups messages per field, preserving order within each field.
func (r Result) ByField() map[string][]string {
	if len(r.errs) == 0 {
		return map[string][]string{}
	}
	m := make(map[string][]string, len(r.errs))
	for _, fe := range r.errs {
		m[fe.Field] = append(m[fe.Field], fe.Message)
	}
	return m
}
