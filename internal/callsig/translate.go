package callsig

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// literalSpellings maps the legacy server's notation for bare constants onto
// the spellings the expression syntax understands.
var literalSpellings = map[string]string{
	"True":  "true",
	"False": "false",
	"None":  "null",
}

// Translate converts command-line tokens into a Signature. Each token
// contributes exactly one entry: a token containing '=' is split at the
// first occurrence into a keyword entry (so values may themselves contain
// '='), everything else is appended to the positional sequence in order.
// Values parse as constant literals where possible and silently fall back
// to the raw string otherwise.
func Translate(tokens []string) *Signature {
	sig := NewSignature()
	for _, token := range tokens {
		if key, value, found := strings.Cut(token, "="); found {
			sig.Keyword[key] = ParseLiteral(value)
		} else {
			sig.Positional = append(sig.Positional, ParseLiteral(token))
		}
	}
	return sig
}

// ParseLiteral interprets a token as a constant expression. Evaluation runs
// with no scope and no function table, and expressions that reference a
// variable or call a function are rejected before evaluation, so a token can
// never cause anything to execute. Any token that fails to parse as a
// literal yields its raw string instead.
func ParseLiteral(raw string) cty.Value {
	src := raw
	if spelled, ok := literalSpellings[raw]; ok {
		src = spelled
	}

	expr, diags := hclsyntax.ParseExpression([]byte(src), "<arg>", hcl.InitialPos)
	if diags.HasErrors() {
		return cty.StringVal(raw)
	}
	if len(expr.Variables()) > 0 || referencesFunctions(expr) {
		return cty.StringVal(raw)
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() || !val.IsWhollyKnown() {
		return cty.StringVal(raw)
	}
	return val
}

// referencesFunctions walks the expression's syntax tree looking for
// function calls, the one construct Variables() doesn't report.
func referencesFunctions(expr hclsyntax.Expression) bool {
	found := false
	hclsyntax.VisitAll(expr, func(node hclsyntax.Node) hcl.Diagnostics {
		if _, ok := node.(*hclsyntax.FunctionCallExpr); ok {
			found = true
		}
		return nil
	})
	return found
}
