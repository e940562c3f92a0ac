package detect

// Tool categories as reported on ToolDetection records.
const (
	CategoryInfrastructure = "infrastructure"
	CategoryObservability  = "observability"
	CategorySecurity       = "security"
	CategoryMLOps          = "mlops"
)

// patternSet maps a tool slug to the file patterns that indicate its use.
// Three pattern kinds are recognized:
//
//   - "name/"  directory or path, checked relative to the project root
//   - "*.ext"  glob, matched against file names anywhere in the tree
//   - "name"   exact file, checked relative to the project root
type patternSet struct {
	tool     string
	patterns []string
}

var infrastructurePatterns = []patternSet{
	{tool: "terraform", patterns: []string{
		"main.tf", "variables.tf", "outputs.tf", "versions.tf", "provider.tf",
		"terraform.tfstate", ".terraform.lock.hcl", ".terraform/",
		"*.tf", "*.tfvars", "*.tfstate",
	}},
	{tool: "ansible", patterns: []string{
		"ansible.cfg", "playbook.yml", "playbook.yaml", "site.yml", "site.yaml",
		"inventory.ini", "inventory.yml",
		"ansible/", "playbooks/", "roles/", "group_vars/", "host_vars/", "inventory/",
	}},
	{tool: "kubernetes", patterns: []string{
		"kustomization.yaml", "kustomization.yml",
		"deployment.yaml", "deployment.yml", "service.yaml", "service.yml",
		"configmap.yaml", "configmap.yml", "ingress.yaml", "ingress.yml",
		"namespace.yaml", "namespace.yml",
		"k8s/", "manifests/",
	}},
	{tool: "helm", patterns: []string{
		"Chart.yaml", "Chart.yml", "values.yaml", "values.yml", ".helmignore",
		"charts/", "values-*.yaml", "values-*.yml",
	}},
	{tool: "pulumi", patterns: []string{
		"Pulumi.yaml", "Pulumi.yml", "Pulumi.dev.yaml", "Pulumi.prod.yaml",
		"Pulumi.*.yaml", "Pulumi.*.yml",
	}},
	{tool: "cloudformation", patterns: []string{
		"cloudformation.yaml", "cloudformation.yml",
		"cfn-*.yaml", "cfn-*.yml", "aws-*.yaml", "aws-*.yml", "*.template",
	}},
	{tool: "docker", patterns: []string{
		"Dockerfile", "docker-compose.yml", "docker-compose.yaml", ".dockerignore",
		"Dockerfile.*", "docker-compose.*.yml", "docker-compose.*.yaml", ".docker/",
	}},
	{tool: "packer", patterns: []string{
		"packer.json", "build.pkr.hcl", "variables.pkr.hcl",
		"*.pkr.hcl", "*.pkr.json", "packer/",
	}},
	{tool: "nomad", patterns: []string{
		"nomad.hcl", "nomad.json", "job.nomad",
		"*.nomad", "*.nomad.hcl", "nomad/",
	}},
	{tool: "vault", patterns: []string{
		"vault.hcl", "vault.json",
		"vault.d/", "vault/", "policies/",
	}},
}

var observabilityPatterns = []patternSet{
	{tool: "prometheus", patterns: []string{
		"prometheus.yml", "prometheus.yaml", "alert.rules", "recording.rules",
		"prometheus/", "alerts/", "rules/",
		"*.rules.yml", "*.rules.yaml",
	}},
	{tool: "grafana", patterns: []string{
		"grafana.ini", "grafana.yml", "grafana.yaml", "dashboard.json",
		"grafana/", "dashboards/", "datasources/", "provisioning/",
		"*.dashboard.json",
	}},
	{tool: "opentelemetry", patterns: []string{
		"otel-collector.yaml", "otel-collector.yml", "collector.yaml", "collector.yml",
		"tracing.yaml", "tracing.yml",
		"otel*", "opentelemetry.*", "traces/",
	}},
	{tool: "jaeger", patterns: []string{
		"jaeger.yml", "jaeger.yaml", "jaeger.json",
		"jaeger/", "jaeger-*.yml", "jaeger-*.yaml",
	}},
	{tool: "elasticsearch", patterns: []string{
		"elasticsearch.yml", "elasticsearch.yaml", "logstash.conf", "kibana.yml",
		"elasticsearch/", "elastic/", "logstash/", "kibana/",
	}},
	{tool: "fluentd", patterns: []string{
		"fluent.conf", "fluent-bit.conf", "td-agent.conf",
		"fluentd/", "fluent-bit/",
	}},
	{tool: "datadog", patterns: []string{
		"datadog.yaml", "datadog.yml",
		"datadog/", ".datadog/", "datadog-agent/",
	}},
}

var securityPatterns = []patternSet{
	{tool: "tfsec", patterns: []string{
		"tfsec.yml", "tfsec.yaml", ".tfsec.json",
		".tfsec/", "tfsec*",
	}},
	{tool: "checkov", patterns: []string{
		"checkov.yml", "checkov.yaml", ".checkov.json", ".checkov.yaml",
		".checkov/", "checkov*",
	}},
	{tool: "semgrep", patterns: []string{
		".semgrep.yml", ".semgrep.yaml", "semgrep.yml", "semgrep.yaml",
		".semgrep/", "semgrep-rules/",
	}},
	{tool: "snyk", patterns: []string{
		".snyk", "snyk.json", ".snyk.json",
		"snyk/",
	}},
	{tool: "sonarqube", patterns: []string{
		"sonar-project.properties", ".sonarcloud.properties",
		"sonarqube/", "sonar/",
	}},
	{tool: "trivy", patterns: []string{
		".trivyignore", "trivy.yaml", "trivy.yml", "trivy-config.yaml",
		"trivy/",
	}},
	{tool: "opa", patterns: []string{
		"policy.rego", "conftest.toml",
		"opa/", "policy/", "*.rego",
	}},
	{tool: "sops", patterns: []string{
		".sops.yaml", ".sops.yml",
		"sops/", "*.sops.yaml", "*.sops.yml",
	}},
}

var mlopsPatterns = []patternSet{
	{tool: "dvc", patterns: []string{
		"dvc.yaml", "dvc.lock", "params.yaml", ".dvcignore",
		".dvc/", "*.dvc",
	}},
	{tool: "mlflow", patterns: []string{
		"MLproject", "mlflow.yml", "mlflow.yaml", "conda.yaml",
		"mlflow/", "mlruns/", "mlflow-experiments/",
	}},
	{tool: "airflow", patterns: []string{
		"airflow.cfg", "airflow.yaml", "airflow.yml", "webserver_config.py",
		"airflow/", "dags/", "dag_*.py",
	}},
	{tool: "prefect", patterns: []string{
		"prefect.yaml", "prefect.yml", "prefect_config.py",
		"prefect/", ".prefect/", "flows/", "flow_*.py",
	}},
	{tool: "dagster", patterns: []string{
		"workspace.yaml", "workspace.yml", "dagster.yaml", "dagster.yml",
		"dagster/", ".dagster/",
	}},
	{tool: "dbt", patterns: []string{
		"dbt_project.yml", "dbt_project.yaml", "profiles.yml", "packages.yml",
		"models/", "macros/", "seeds/", "snapshots/",
	}},
	{tool: "great_expectations", patterns: []string{
		"great_expectations.yml", "great_expectations.yaml",
		"great_expectations/", ".great_expectations/", "expectations/", "checkpoints/",
	}},
	{tool: "kubeflow", patterns: []string{
		"pipeline.yaml", "pipeline.yml",
		"kubeflow/", ".kubeflow/", "kfp/",
	}},
	{tool: "bentoml", patterns: []string{
		"bentofile.yaml", "bentofile.yml", "bento.yaml",
		"bentoml/", "bentos/",
	}},
	{tool: "feast", patterns: []string{
		"feature_store.yaml", "feature_store.yml", "feast_config.py",
		"feast/", ".feast/", "feature_repo/",
	}},
	{tool: "notebooks", patterns: []string{
		"jupyter_config.py", "jupyter_lab_config.py",
		"notebooks/", ".jupyter/", "*.ipynb",
	}},
}

// categoryPatterns fixes the evaluation order so repeated runs over the
// same tree produce identical profiles.
var categoryPatterns = []struct {
	category string
	tools    []patternSet
}{
	{CategoryInfrastructure, infrastructurePatterns},
	{CategoryObservability, observabilityPatterns},
	{CategorySecurity, securityPatterns},
	{CategoryMLOps, mlopsPatterns},
}
