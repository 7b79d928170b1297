package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// newEvalContext exposes the environment as the `env` map and a small set of
// functions to profile expressions.
func newEvalContext(env map[string]string) *hcl.EvalContext {
	envVal := cty.MapValEmpty(cty.String)
	if len(env) > 0 {
		vals := make(map[string]cty.Value, len(env))
		for k, v := range env {
			vals[k] = cty.StringVal(v)
		}
		envVal = cty.MapVal(vals)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envVal,
		},
		Functions: map[string]function.Function{
			"coalesce":  stdlib.CoalesceFunc,
			"lookup":    stdlib.LookupFunc,
			"lower":     stdlib.LowerFunc,
			"max":       stdlib.MaxFunc,
			"min":       stdlib.MinFunc,
			"trimspace": stdlib.TrimSpaceFunc,
			"upper":     stdlib.UpperFunc,
		},
	}
}

// evalValue evaluates expr and converts it to ty. A nil result means the
// attribute was absent or null.
func evalValue(expr hcl.Expression, evalCtx *hcl.EvalContext, ty cty.Type) (*cty.Value, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known")
	}
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return nil, fmt.Errorf("expected %s: %w", ty.FriendlyName(), err)
	}
	return &converted, nil
}

func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	val, err := evalValue(expr, evalCtx, cty.String)
	if err != nil || val == nil {
		return "", err
	}
	return val.AsString(), nil
}

func evalNumber(expr hcl.Expression, evalCtx *hcl.EvalContext) (*float64, error) {
	val, err := evalValue(expr, evalCtx, cty.Number)
	if err != nil || val == nil {
		return nil, err
	}
	var f float64
	if err := gocty.FromCtyValue(*val, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
