package domain

// TaskTypeAnalysis is the only task type the enrichment agent handles
const TaskTypeAnalysis = "analysis"

// AnalysisTask identifies one enrichment unit sent to the agent
type AnalysisTask struct {
	ID       string
	Type     string
	Input    AnalysisInput
	Priority int
}

// AnalysisInput is the payload of an analysis task
type AnalysisInput struct {
	Article Article
}

// AnalysisResult is what the agent returns for a single task
type AnalysisResult struct {
	Success bool
	Output  *AnalysisOutput
	Error   string
	Cost    *Cost
}

// AnalysisOutput wraps the analysis produced by the agent
type AnalysisOutput struct {
	Analysis *Analysis
}

// Cost is the usage accounting of one agent call
type Cost struct {
	Price            float64 `json:"price"`
	PromptTokens     int     `json:"promptTokens"`
	CompletionTokens int     `json:"completionTokens"`
	Model            string  `json:"model,omitempty"`
}

// ArticleOutcome is the recorded result of analyzing one article in a batch
type ArticleOutcome struct {
	ArticleID string
	Title     string
	Success   bool
	Error     string
	Cost      *Cost
}
