package testplan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/metalagman/testplan/internal/jira"
)

const promptHeader = "Given the following JIRA ticket details, generate a detailed test plan in markdown format, " +
	"including functional tests, integration tests, and edge cases:"

// IssueJSON renders issue as two-space indented JSON without HTML escaping.
func IssueJSON(issue jira.Issue) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(issue); err != nil {
		return "", fmt.Errorf("marshal issue: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Prompt builds the instruction sent to the chat tool for issue.
func Prompt(issue jira.Issue) (string, error) {
	body, err := IssueJSON(issue)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString("\n\n")
	b.WriteString(body)
	return b.String(), nil
}
