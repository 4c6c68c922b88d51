package fieldwise

import "go.uber.org/multierr"

type ResultType int

const (
	OkType ResultType = iota
	NoChangesType
	ErrorType
)

func (t ResultType) String() string {
	s, ok := map[ResultType]string{
		OkType:        "Ok",
		NoChangesType: "NoChanges",
		ErrorType:     "Error",
	}[t]
	if ok {
		return s
	}
	return "<unknown result type>"
}

// FieldError is one validation failure attributed to a dotted field path.
// An empty path addresses the object as a whole.
type FieldError struct {
	Path    string
	Message string
}

func (e FieldError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// Result is the sole channel by which success, partial failure, or
// triviality crosses the engine boundary; exactly one variant per call.
type Result struct {
	typ     ResultType
	changed []string
	errs    []FieldError
}

func Ok(changed []string) *Result {
	return &Result{typ: OkType, changed: changed}
}

func NoChanges() *Result {
	return &Result{typ: NoChangesType}
}

func Failed(errs ...FieldError) *Result {
	return &Result{typ: ErrorType, errs: errs}
}

func (r *Result) Type() ResultType {
	return r.typ
}

// Changed returns the changed field paths of an Ok result, in apply order.
func (r *Result) Changed() []string {
	return r.changed
}

// Errors returns the failures of an Error result, in encounter order.
func (r *Result) Errors() []FieldError {
	return r.errs
}

// Err flattens an Error result into a single error, nil otherwise.
func (r *Result) Err() error {
	if r.typ != ErrorType {
		return nil
	}
	var err error
	for _, fe := range r.errs {
		err = multierr.Append(err, fe)
	}
	return err
}
