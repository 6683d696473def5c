package jira

import "fmt"

// Config is Jira REST API client configuration.
type Config struct {
	BaseURL  string
	User     string
	APIToken string
}

// Issue is the decoded body of the issue endpoint. The schema is left to Jira.
type Issue map[string]any

// Key returns the issue key, or an empty string when absent.
func (i Issue) Key() string {
	key, _ := i["key"].(string)
	return key
}

// Summary returns fields.summary, or an empty string when absent.
func (i Issue) Summary() string {
	fields, _ := i["fields"].(map[string]any)
	summary, _ := fields["summary"].(string)
	return summary
}

// StatusError is returned when Jira answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("jira API returned status %d: %s", e.StatusCode, e.Body)
}
