package techniques

import (
	"bytes"
	"sort"
	"strings"
	"sync"
	"text/template"
	"text/template/parse"
)

var templateFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"add": func(a, b int) int { return a + b },
	"join": func(items []string, sep string) string {
		return strings.Join(items, sep)
	},
}

// parsed templates keyed by source text
var templateCache sync.Map

func parseTemplate(src string) (*template.Template, error) {
	if cached, ok := templateCache.Load(src); ok {
		return cached.(*template.Template), nil
	}
	tmpl, err := template.New("technique").Funcs(templateFuncs).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, err
	}
	templateCache.Store(src, tmpl)
	return tmpl, nil
}

// renderTemplate executes src with vars. A single trailing newline is
// dropped so templates can end on a line break.
func renderTemplate(src string, vars map[string]any) (string, error) {
	tmpl, err := parseTemplate(src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// templateVariables lists the top-level fields a template reads from its
// data. Fields referenced inside range or with bodies are relative to the
// element and are not reported.
func templateVariables(src string) ([]string, error) {
	tmpl, err := parseTemplate(src)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, t := range tmpl.Templates() {
		if t.Tree != nil && t.Tree.Root != nil {
			collectVars(t.Tree.Root, seen, true)
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func collectVars(node parse.Node, seen map[string]struct{}, topLevel bool) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, child := range n.Nodes {
			collectVars(child, seen, topLevel)
		}
	case *parse.ActionNode:
		collectVars(n.Pipe, seen, topLevel)
	case *parse.PipeNode:
		if n == nil {
			return
		}
		for _, cmd := range n.Cmds {
			for _, arg := range cmd.Args {
				collectVars(arg, seen, topLevel)
			}
		}
	case *parse.FieldNode:
		if topLevel && len(n.Ident) > 0 {
			seen[n.Ident[0]] = struct{}{}
		}
	case *parse.VariableNode:
		if len(n.Ident) > 1 && n.Ident[0] == "$" {
			seen[n.Ident[1]] = struct{}{}
		}
	case *parse.ChainNode:
		collectVars(n.Node, seen, topLevel)
	case *parse.IfNode:
		collectVars(n.Pipe, seen, topLevel)
		collectVars(n.List, seen, topLevel)
		collectVars(n.ElseList, seen, topLevel)
	case *parse.RangeNode:
		collectVars(n.Pipe, seen, topLevel)
		collectVars(n.List, seen, false)
		collectVars(n.ElseList, seen, topLevel)
	case *parse.WithNode:
		collectVars(n.Pipe, seen, topLevel)
		collectVars(n.List, seen, false)
		collectVars(n.ElseList, seen, topLevel)
	case *parse.TemplateNode:
		collectVars(n.Pipe, seen, topLevel)
	}
}
