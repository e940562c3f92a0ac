package detect

import (
	"encoding/json"
	"sort"
)

// Confidence buckets for a detection.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// Score thresholds for confidence bucketing:
// high needs multiple strong indicators, medium one strong indicator,
// low is pattern-only.
const (
	highThreshold   = 12.0
	mediumThreshold = 8.0
)

func bucketFor(score float64) string {
	switch {
	case score >= highThreshold:
		return ConfidenceHigh
	case score >= mediumThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// ToolDetection is the per-tool result of a project analysis.
type ToolDetection struct {
	// Key is the stable tool slug (e.g. "terraform"), unique per run.
	Key string `json:"key"`

	// DisplayName is the human-friendly name shown in documents.
	DisplayName string `json:"display_name"`

	// Category is the detection category (infrastructure, observability,
	// security, mlops).
	Category string `json:"category"`

	// Confidence is the qualitative bucket: low, medium, or high.
	Confidence string `json:"confidence"`

	// Score is the quantitative detection score. Nil when no numeric
	// score is available.
	Score *float64 `json:"score,omitempty"`

	// Files are up to maxFiles representative relative paths that
	// triggered the detection. May be empty.
	Files []string `json:"files"`

	// Recommendations are curated suggestions for the tool. May be empty.
	Recommendations []string `json:"recommendations"`
}

// Profile is the aggregated detection result for one analysis run,
// keyed by tool slug. A Profile is read-only once built; lookups of
// absent keys mean "not detected", never an error.
type Profile struct {
	tools map[string]*ToolDetection
}

// NewProfile returns an empty profile.
func NewProfile() *Profile {
	return &Profile{tools: make(map[string]*ToolDetection)}
}

// Add records a detection, replacing any existing record for the same key.
func (p *Profile) Add(d *ToolDetection) {
	p.tools[d.Key] = d
}

// Lookup returns the detection for a tool key. The second result is false
// when the tool was not detected.
func (p *Profile) Lookup(key string) (*ToolDetection, bool) {
	d, ok := p.tools[key]
	return d, ok
}

// Len returns the number of detected tools.
func (p *Profile) Len() int {
	return len(p.tools)
}

// Keys returns all detected tool keys in sorted order.
func (p *Profile) Keys() []string {
	keys := make([]string, 0, len(p.tools))
	for k := range p.tools {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON encodes the profile as a map of tool key to detection.
func (p *Profile) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.tools)
}

// Tool groupings for summary reporting.
var (
	orchestrationTools = map[string]bool{
		"kubernetes": true, "helm": true, "nomad": true, "docker": true,
	}
	secretsManagementTools = map[string]bool{
		"vault": true, "sops": true,
	}
	dataPipelineTools = map[string]bool{
		"airflow": true, "prefect": true, "dagster": true,
		"dbt": true, "dvc": true, "great_expectations": true,
	}
)

// Summary groups detected tool keys the way downstream reports expect.
type Summary struct {
	InfrastructureAsCode []string `json:"infrastructure_as_code"`
	OrchestrationTools   []string `json:"orchestration_tools"`
	SecretsManagement    []string `json:"secrets_management"`
	Observability        []string `json:"observability"`
	SecurityTools        []string `json:"security_tools"`
	DataPipeline         []string `json:"data_pipeline"`
	MLOpsTools           []string `json:"mlops_tools"`
}

// Summarize splits the profile into reporting groups. Each group is
// sorted. Secrets tools are pulled out of both the infrastructure and
// security categories.
func (p *Profile) Summarize() Summary {
	var s Summary
	for _, key := range p.Keys() {
		d := p.tools[key]
		switch {
		case secretsManagementTools[key]:
			s.SecretsManagement = append(s.SecretsManagement, key)
		case orchestrationTools[key]:
			s.OrchestrationTools = append(s.OrchestrationTools, key)
		case d.Category == CategoryInfrastructure:
			s.InfrastructureAsCode = append(s.InfrastructureAsCode, key)
		case d.Category == CategoryObservability:
			s.Observability = append(s.Observability, key)
		case d.Category == CategorySecurity:
			s.SecurityTools = append(s.SecurityTools, key)
		case d.Category == CategoryMLOps && dataPipelineTools[key]:
			s.DataPipeline = append(s.DataPipeline, key)
		case d.Category == CategoryMLOps:
			s.MLOpsTools = append(s.MLOpsTools, key)
		}
	}
	return s
}
