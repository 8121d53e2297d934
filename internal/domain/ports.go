package domain

// AgentOutput is one text produced by an agent run, tagged with the agent's
// role or name.
type AgentOutput struct {
	Text       string `json:"text"`
	AgentLabel string `json:"agent_label"`
}

// OutputSource supplies the outputs of one pipeline execution in order.
// Orchestration frameworks are adapted to this interface; the validation
// core never depends on their types.
type OutputSource interface {
	Outputs() []AgentOutput
}

// OutputList adapts a fixed slice of outputs to OutputSource.
type OutputList []AgentOutput

func (l OutputList) Outputs() []AgentOutput { return l }

// GitInfo reports version-control metadata for a project directory.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// ReportHistory persists validation report entries per project.
type ReportHistory interface {
	Save(projectPath string, entry ReportEntry) error
	Load(projectPath string) ([]ReportEntry, error)
}

// ConfigLoader reads validator configuration for a project directory.
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
}
