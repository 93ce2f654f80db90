// Package validate checks generated dashboards and rules for PromQL
// syntax errors and references to metrics the service does not export.
package validate

import (
	"encoding/json"
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors are malformed PromQL;
// Warnings are references to metrics outside the known set.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// Dashboard validates every query expression in a built dashboard
// against the known metric set.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	data, err := json.Marshal(dash)
	if err != nil {
		return Result{Errors: []string{fmt.Sprintf("marshaling dashboard: %v", err)}}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Result{Errors: []string{fmt.Sprintf("decoding dashboard: %v", err)}}
	}

	return Exprs(collectExprs(doc), known)
}

// Exprs parses each PromQL expression and checks every metric selector
// against the known set.
func Exprs(exprs []string, known map[string]bool) Result {
	var res Result
	for _, e := range exprs {
		expr, err := parser.ParseExpr(e)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("invalid PromQL %q: %v", e, err))
			continue
		}

		//nolint:errcheck // the inspector never returns an error
		parser.Inspect(expr, func(node parser.Node, _ []parser.Node) error {
			if vs, ok := node.(*parser.VectorSelector); ok {
				if vs.Name != "" && !known[vs.Name] {
					res.Warnings = append(res.Warnings,
						fmt.Sprintf("unknown metric %q in %q", vs.Name, e))
				}
			}
			return nil
		})
	}
	return res
}

// collectExprs walks the decoded dashboard JSON and gathers every
// string value stored under an "expr" key.
func collectExprs(doc any) []string {
	var exprs []string
	switch v := doc.(type) {
	case map[string]any:
		for key, val := range v {
			if key == "expr" {
				if s, ok := val.(string); ok && s != "" {
					exprs = append(exprs, s)
					continue
				}
			}
			exprs = append(exprs, collectExprs(val)...)
		}
	case []any:
		for _, item := range v {
			exprs = append(exprs, collectExprs(item)...)
		}
	}
	return exprs
}
