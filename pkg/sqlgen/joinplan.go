package sqlgen

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/quillhq/quill/pkg/semantic"
)

// JoinStep is one edge of a join plan. Table is the newly-introduced table;
// Reversed marks traversal against the declared edge direction.
type JoinStep struct {
	RelIndex int
	Table    string
	Alias    string
	Kind     string
	Reversed bool
}

// JoinPlan is the ordered sequence of join steps rooted at a base table,
// plus the alias map every compiled expression goes through. The base table
// is always t0; each newly-introduced table receives t<n> in plan order.
type JoinPlan struct {
	BaseTable string
	Steps     []JoinStep

	aliases map[string]string
}

// Alias returns the alias for a planned table, or "" if the table is not in
// the plan.
func (p *JoinPlan) Alias(tableKey string) string {
	return p.aliases[tableKey]
}

// Tables returns all planned table keys, base first, in alias order.
func (p *JoinPlan) Tables() []string {
	out := []string{p.BaseTable}
	for _, s := range p.Steps {
		out = append(out, s.Table)
	}
	return out
}

// RewriteRefs rewrites every `<table_key>.<column>` reference in a
// user-written expression (join_on, metric, stored filter condition) to
// `<alias>.<quoted column>`. References to unplanned tables are left alone.
func (p *JoinPlan) RewriteRefs(expr string, d Dialect) string {
	return refPattern.ReplaceAllStringFunc(expr, func(match string) string {
		parts := strings.SplitN(match, ".", 2)
		alias, ok := p.aliases[parts[0]]
		if !ok {
			return match
		}
		return alias + "." + d.QuoteIdent(parts[1])
	})
}

var refPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*\.[A-Za-z_][A-Za-z0-9_]*`)

// PlanJoins computes a minimal join plan from base to every required table
// with a breadth-first search over the relationship graph. Edges are
// expanded in declaration order, which also breaks ties between equal-length
// paths. Forward traversal follows from_table -> to_table; reverse traversal
// is allowed but logged.
func PlanJoins(model *semantic.Model, baseTable string, required []string) (*JoinPlan, error) {
	if _, ok := model.Table(baseTable); !ok {
		return nil, fmt.Errorf("%w: base table %q", ErrUnknownMember, baseTable)
	}

	plan := &JoinPlan{
		BaseTable: baseTable,
		aliases:   map[string]string{baseTable: "t0"},
	}

	// parent[t] records the edge used to first reach t.
	type parentEdge struct {
		relIndex int
		from     string
		reversed bool
	}
	parents := map[string]parentEdge{}
	visited := map[string]bool{baseTable: true}
	frontier := []string{baseTable}

	for len(frontier) > 0 {
		next := make([]string, 0)
		for _, at := range frontier {
			for i := range model.Relationships {
				rel := &model.Relationships[i]
				var neighbor string
				var reversed bool
				switch at {
				case rel.FromTable:
					neighbor, reversed = rel.ToTable, false
				case rel.ToTable:
					neighbor, reversed = rel.FromTable, true
				default:
					continue
				}
				if visited[neighbor] {
					continue
				}
				visited[neighbor] = true
				parents[neighbor] = parentEdge{relIndex: i, from: at, reversed: reversed}
				next = append(next, neighbor)
			}
		}
		frontier = next
	}

	inPlan := map[string]bool{baseTable: true}
	for _, target := range required {
		if target == baseTable || inPlan[target] {
			continue
		}
		if !visited[target] {
			return nil, &UnreachableTableError{BaseTable: baseTable, Target: target}
		}

		// Walk the parent chain back to the base, then append the path
		// edges in base-to-target order, skipping already-planned tables.
		var path []string
		for at := target; at != baseTable; at = parents[at].from {
			path = append(path, at)
		}
		for i := len(path) - 1; i >= 0; i-- {
			table := path[i]
			if inPlan[table] {
				continue
			}
			edge := parents[table]
			rel := &model.Relationships[edge.relIndex]
			if edge.reversed {
				slog.Debug("Join plan traverses relationship in reverse",
					"relationship", rel.Name, "from", rel.ToTable, "to", rel.FromTable)
			}
			alias := fmt.Sprintf("t%d", len(plan.Steps)+1)
			plan.aliases[table] = alias
			plan.Steps = append(plan.Steps, JoinStep{
				RelIndex: edge.relIndex,
				Table:    table,
				Alias:    alias,
				Kind:     rel.Type.JoinKind(),
				Reversed: edge.reversed,
			})
			inPlan[table] = true
		}
	}
	return plan, nil
}
