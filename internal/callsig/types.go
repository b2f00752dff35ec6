package callsig

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Signature is a deferred invocation: an ordered sequence of positional
// values plus a mapping of keyword names to values.
type Signature struct {
	Positional []cty.Value
	Keyword    map[string]cty.Value
}

// NewSignature creates an empty Signature.
func NewSignature() *Signature {
	return &Signature{Keyword: make(map[string]cty.Value)}
}

// CommandArgs renders the signature back into the legacy server's argument
// convention: positionals in their original order, then --key=value pairs
// with keys sorted so the command line is deterministic.
func (s *Signature) CommandArgs() []string {
	args := make([]string, 0, len(s.Positional)+len(s.Keyword))
	for _, val := range s.Positional {
		args = append(args, ValueString(val))
	}

	keys := make([]string, 0, len(s.Keyword))
	for key := range s.Keyword {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		args = append(args, fmt.Sprintf("--%s=%s", key, ValueString(s.Keyword[key])))
	}
	return args
}

// ValueString renders a single value as a command-line token. Strings render
// bare, primitives in their literal spelling, and collections as JSON.
func ValueString(val cty.Value) string {
	switch {
	case val.IsNull():
		return "null"
	case val.Type() == cty.String:
		return val.AsString()
	case val.Type() == cty.Number:
		return val.AsBigFloat().Text('f', -1)
	case val.Type() == cty.Bool:
		if val.True() {
			return "true"
		}
		return "false"
	}

	out, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return val.GoString()
	}
	return string(out)
}
