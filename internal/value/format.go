package value

import (
	"fmt"
	"strconv"
	"strings"
)

func (v Integer) Inspect() string { return v.Val.String() }

func (v Float) Inspect() string {
	s := strconv.FormatFloat(v.Val, 'g', -1, 64)
	// Keep a visible float marker on integral values.
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && s != "NaN" {
		s += ".0"
	}
	return s
}

func (v Char) Inspect() string {
	switch v.Val {
	case '\n':
		return `'\n'`
	case '\t':
		return `'\t'`
	case '\\':
		return `'\\'`
	case '\'':
		return `'\''`
	}
	return "'" + string(v.Val) + "'"
}

func (v Boolean) Inspect() string {
	if v.Val {
		return "true"
	}
	return "false"
}

func (v String) Inspect() string { return strconv.Quote(v.Val) }

func (v Symbol) Inspect() string { return v.Name }

func (v List) Inspect() string {
	parts := make([]string, len(v.Elems))
	for i, e := range v.Elems {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (v Quotation) Inspect() string {
	parts := make([]string, len(v.Terms))
	for i, t := range v.Terms {
		parts[i] = inspectTerm(t)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func inspectTerm(t Term) string {
	switch t := t.(type) {
	case Push:
		return t.Val.Inspect()
	case Word:
		return t.Name
	case Def:
		return "DEFINE " + t.Name + " == " + strings.TrimSuffix(strings.TrimPrefix(t.Body.Inspect(), "["), "]") + " ."
	}
	return "?"
}

func (v Set) Inspect() string {
	members := v.Members()
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = strconv.FormatInt(m, 10)
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func (v File) Inspect() string { return "file:" + v.Name }

func (v Object) Inspect() string { return fmt.Sprintf("object<%v>", v.Val) }
