package schema

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Rule is a predicate over a candidate field value paired with a failure
// message. Rules run in declaration order once coercion succeeds; every
// failing rule contributes one error entry.
type Rule struct {
	Message string
	Check   func(v any) bool
}

func RuleFunc(message string, check func(v any) bool) Rule {
	return Rule{Message: message, Check: check}
}

// Expr compiles an expr-lang predicate over the candidate value, bound to the
// identifier "this". Example: Expr(`this != ""`, "must not be empty").
func Expr(src, message string) (Rule, error) {
	prog, err := expr.Compile(src)
	if err != nil {
		return Rule{}, fmt.Errorf("bad rule expression %q: %w", src, err)
	}
	return Rule{Message: message, Check: exprPred(prog)}, nil
}

// MustExpr is Expr for registration-time rule tables.
func MustExpr(src, message string) Rule {
	r, err := Expr(src, message)
	if err != nil {
		panic(err)
	}
	return r
}

func exprPred(prog *vm.Program) func(v any) bool {
	return func(v any) bool {
		out, err := expr.Run(prog, map[string]any{"this": v})
		if err != nil {
			return false
		}
		b, ok := out.(bool)
		return ok && b
	}
}
