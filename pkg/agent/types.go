package agent

// Agent names used in plan steps and tool-call records.
const (
	AgentAnalyst      = "Analyst"
	AgentVisual       = "Visual"
	AgentWebSearch    = "WebSearch"
	AgentDocRetrieval = "DocRetrieval"
	AgentClarify      = "Clarify"
)

// AnalystQueryRequest is the input to the SQL analyst pipeline.
type AnalystQueryRequest struct {
	Question            string            `json:"question"`
	Filters             map[string]string `json:"filters,omitempty"`
	Limit               int               `json:"limit,omitempty"`
	ConversationContext string            `json:"conversation_context,omitempty"`
}

// AnalystQueryResponse is always fully populated; pipeline failures land in
// Error with SQLExecutable left empty. Nothing past the pipeline boundary
// panics or returns a Go error.
type AnalystQueryResponse struct {
	SQLCanonical    string       `json:"sql_canonical"`
	SQLExecutable   string       `json:"sql_executable"`
	Dialect         string       `json:"dialect"`
	ModelName       string       `json:"model_name"`
	Result          *QueryResult `json:"result,omitempty"`
	Error           string       `json:"error,omitempty"`
	ExecutionTimeMS int64        `json:"execution_time_ms"`
}

// WebSource is one ranked web search hit.
type WebSource struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Snippet string  `json:"snippet,omitempty"`
	Score   float64 `json:"score"`
}

// WebSearchResult is the web search agent's artifact.
type WebSearchResult struct {
	Query   string      `json:"query"`
	Sources []WebSource `json:"sources"`
}

// Document is retrievable evidence: a web page promoted into the research
// set, or a caller-provided document.
type Document struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	URL     string `json:"url,omitempty"`
	Content string `json:"content"`
}

// Finding is one key finding in a research report. Every EvidenceID must
// name a document in the report's evidence set.
type Finding struct {
	Statement   string   `json:"statement"`
	EvidenceIDs []string `json:"evidence_ids"`
	Confidence  float64  `json:"confidence"`
}

// ResearchResult is the deep research agent's artifact.
type ResearchResult struct {
	Question  string     `json:"question"`
	Synthesis string     `json:"synthesis"`
	Findings  []Finding  `json:"findings"`
	Evidence  []Document `json:"evidence"`
}

// Visualization is the visual agent's artifact: a renderable chart spec.
type Visualization struct {
	ChartType string         `json:"chart_type"`
	Title     string         `json:"title"`
	XField    string         `json:"x_field,omitempty"`
	YFields   []string       `json:"y_fields,omitempty"`
	Spec      map[string]any `json:"spec,omitempty"`
	Insight   string         `json:"insight,omitempty"`
}

// PlanExecutionArtifacts accumulates everything one supervisor iteration
// produced. The reasoning controller consumes it whole.
type PlanExecutionArtifacts struct {
	AnalystResult      *AnalystQueryResponse `json:"analyst_result,omitempty"`
	DataPayload        *QueryResult          `json:"data_payload,omitempty"`
	Visualization      *Visualization        `json:"visualization,omitempty"`
	ResearchResult     *ResearchResult       `json:"research_result,omitempty"`
	WebSearchResult    *WebSearchResult      `json:"web_search_result,omitempty"`
	ClarifyingQuestion string                `json:"clarifying_question,omitempty"`
	ToolCalls          []ToolCall            `json:"tool_calls,omitempty"`
}

// Empty reports whether the iteration produced nothing at all.
func (a *PlanExecutionArtifacts) Empty() bool {
	return a.AnalystResult == nil && a.DataPayload == nil &&
		a.Visualization == nil && a.ResearchResult == nil &&
		a.WebSearchResult == nil && a.ClarifyingQuestion == ""
}

// Merge folds other into a, later artifacts winning per slot. Tool calls
// append in order.
func (a *PlanExecutionArtifacts) Merge(other *PlanExecutionArtifacts) {
	if other == nil {
		return
	}
	if other.AnalystResult != nil {
		a.AnalystResult = other.AnalystResult
	}
	if other.DataPayload != nil {
		a.DataPayload = other.DataPayload
	}
	if other.Visualization != nil {
		a.Visualization = other.Visualization
	}
	if other.ResearchResult != nil {
		a.ResearchResult = other.ResearchResult
	}
	if other.WebSearchResult != nil {
		a.WebSearchResult = other.WebSearchResult
	}
	if other.ClarifyingQuestion != "" {
		a.ClarifyingQuestion = other.ClarifyingQuestion
	}
	a.ToolCalls = append(a.ToolCalls, other.ToolCalls...)
}
