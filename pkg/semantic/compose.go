package semantic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateTable is returned when two source models claim the same
// table key during composition.
var ErrDuplicateTable = errors.New("duplicate table key across source models")

// Source pairs a semantic model with the connector that can execute it.
type Source struct {
	ConnectorID string
	Model       *Model
}

// ComposeOptions carries optional cross-source joins and metrics that only
// make sense once all sources live in one namespace.
type ComposeOptions struct {
	Name    string
	Dialect string
	Joins   []Relationship
	Metrics map[string]Metric
}

// Compose merges N source models into a single unified model for federated
// execution. Returns the merged model and a table_key -> source connector id
// map used later for tenant catalog assignment.
func Compose(sources []Source, opts ComposeOptions) (*Model, map[string]string, error) {
	if len(sources) == 0 {
		return nil, nil, invalid("compose requires at least one source model")
	}

	name := opts.Name
	if name == "" {
		names := make([]string, 0, len(sources))
		for _, s := range sources {
			names = append(names, s.Model.Name)
		}
		name = strings.Join(names, "+")
	}

	unified := &Model{
		Name:    name,
		Dialect: opts.Dialect,
		Tables:  make(map[string]*Table),
		Metrics: make(map[string]Metric),
	}
	connectorByTable := make(map[string]string)

	for _, src := range sources {
		clone := src.Model.Clone()
		for _, key := range clone.OrderedTableKeys() {
			if _, exists := unified.Tables[key]; exists {
				return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateTable, key)
			}
			unified.Tables[key] = clone.Tables[key]
			unified.TableOrder = append(unified.TableOrder, key)
			connectorByTable[key] = src.ConnectorID
		}
		unified.Relationships = append(unified.Relationships, clone.Relationships...)
		for mk, mv := range clone.Metrics {
			if _, exists := unified.Metrics[mk]; exists {
				return nil, nil, invalid("metric %q defined by more than one source", mk)
			}
			unified.Metrics[mk] = mv
		}
	}

	unified.Relationships = append(unified.Relationships, opts.Joins...)
	for mk, mv := range opts.Metrics {
		if _, exists := unified.Metrics[mk]; exists {
			return nil, nil, invalid("cross-source metric %q collides with a source metric", mk)
		}
		unified.Metrics[mk] = mv
	}

	if err := Validate(unified); err != nil {
		return nil, nil, err
	}
	return unified, connectorByTable, nil
}

// ApplyTenantAwareContext returns a deep copy of the model with a tenant
// catalog assigned to every table that lacks one. The catalog token is
// org_<12>__src_<12>, derived from the organisation and the table's source
// connector (falling back to the execution connector). A schema that already
// embeds a dot is split into catalog.schema and both halves are preserved.
func ApplyTenantAwareContext(m *Model, orgID, executionConnectorID string, connectorByTable map[string]string) *Model {
	out := m.Clone()
	for key, tbl := range out.Tables {
		if tbl.Schema != "" && strings.Contains(tbl.Schema, ".") {
			parts := strings.SplitN(tbl.Schema, ".", 2)
			tbl.Catalog = parts[0]
			tbl.Schema = parts[1]
		}
		if tbl.Catalog != "" {
			continue
		}
		sourceID := connectorByTable[key]
		if sourceID == "" {
			sourceID = executionConnectorID
		}
		tbl.Catalog = TenantCatalog(orgID, sourceID)
	}
	return out
}

// TenantCatalog builds the org_<12>__src_<12> catalog token.
func TenantCatalog(orgID, connectorID string) string {
	return fmt.Sprintf("org_%s__src_%s", catalogToken(orgID), catalogToken(connectorID))
}

// catalogToken lowercases, strips non-alphanumerics, and truncates to 12
// characters so the token is a safe identifier in every dialect.
func catalogToken(id string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(id) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == 12 {
			break
		}
	}
	return b.String()
}
