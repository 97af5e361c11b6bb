package model

import "time"

// TimestampLayout renders UTC as "+00:00" with microsecond precision,
// e.g. 2026-10-18T09:30:00.123456+00:00
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// DefaultUnknown is used for the repository when GITHUB_REPOSITORY is not available
const DefaultUnknown = "desconhecido"

// RunEnv holds the CI run facts read from the environment
type RunEnv struct {
	Repository string
	Workflow   string
	RunID      string
	Ref        string
	Commit     string
	RunnerOS   string
}

// RunSummary is the document persisted as run_info.json. Field order is
// the key order of the JSON output.
type RunSummary struct {
	Repository   string `json:"repository"`
	Workflow     string `json:"workflow"`
	RunID        string `json:"run_id"`
	Ref          string `json:"ref"`
	Commit       string `json:"commit"`
	RunnerOS     string `json:"runner_os"`
	TimestampUTC string `json:"timestamp_utc"`
}

// NewRunSummary builds the summary of env stamped with now in UTC
func NewRunSummary(env *RunEnv, now time.Time) *RunSummary {
	return &RunSummary{
		Repository:   env.Repository,
		Workflow:     env.Workflow,
		RunID:        env.RunID,
		Ref:          env.Ref,
		Commit:       env.Commit,
		RunnerOS:     env.RunnerOS,
		TimestampUTC: now.UTC().Format(TimestampLayout),
	}
}
