package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go templates.
// Uses {{.VAR_NAME}} syntax to avoid collision with $ in regex patterns,
// which matters here because guardrail denylists are regex-heavy.
//
// Examples:
//   - {{.OPENAI_API_KEY}} → value of OPENAI_API_KEY environment variable
//   - {{.REDIS_HOST}}:{{.REDIS_PORT}} → hostname:port with both expanded
//   - denylist: "^drop table.*$" → preserved literally ($ not touched)
//
// Missing variables expand to empty string (unless the template is
// malformed). Validation catches required fields that end up empty.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		// Content without template syntax passes through untouched.
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}
