// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	// Verify all IDs are unique and sequential
	ids := []Id{
		PythonNotFoundId,
		PipUnavailableId,
		BadAvoidConfigId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// Verify IDs start at 1 (iota + 1)
	if PythonNotFoundId != 1 {
		t.Errorf("PythonNotFoundId = %d, want 1", PythonNotFoundId)
	}
}

func TestIssue_Id(t *testing.T) {
	issue := Get(PythonNotFoundId)
	if issue == nil {
		t.Fatal("Get(PythonNotFoundId) returned nil")
	}

	if issue.Id() != PythonNotFoundId {
		t.Errorf("issue.Id() = %d, want %d", issue.Id(), PythonNotFoundId)
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	tests := []struct {
		name     string
		id       Id
		contains string
	}{
		{name: "python not found", id: PythonNotFoundId, contains: "No python interpreter found"},
		{name: "pip unavailable", id: PipUnavailableId, contains: "pip freeze"},
		{name: "bad avoid config", id: BadAvoidConfigId, contains: "list of license label strings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := Get(tt.id)
			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if msg := string(issue.MarkdownMsg()); !strings.Contains(msg, tt.contains) {
				t.Errorf("MarkdownMsg() should contain %q", tt.contains)
			}
		})
	}
}

func TestIssue_ExtLinks(t *testing.T) {
	issue := Get(PythonNotFoundId)
	if issue == nil {
		t.Fatal("Get(PythonNotFoundId) returned nil")
	}

	// ExtLinks returns a clone; mutating it must not affect the issue.
	links := issue.ExtLinks()
	if len(links) == 0 {
		t.Fatal("expected external links for PythonNotFoundId")
	}
	links[0] = "mutated"
	if issue.ExtLinks()[0] == "mutated" {
		t.Error("ExtLinks() returned a shared slice")
	}
}

func TestGet_UnknownId(t *testing.T) {
	if got := Get(Id(999)); got != nil {
		t.Errorf("Get(999) = %v, want nil", got)
	}
}

func TestValues(t *testing.T) {
	values := Values()
	if len(values) != len(issues) {
		t.Errorf("Values() returned %d issues, want %d", len(values), len(issues))
	}
}

func TestIssue_Render(t *testing.T) {
	// Stub the renderer so the test does not depend on terminal detection.
	original := render
	defer func() { render = original }()
	render = func(in, _ string) (string, error) {
		return in, nil
	}

	issue := Get(BadAvoidConfigId)
	out, err := issue.Render("dark")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(out, "avoid") {
		t.Error("Render() output should mention the avoid setting")
	}
}

func TestIssue_Render_AppendsLinks(t *testing.T) {
	original := render
	defer func() { render = original }()
	render = func(in, _ string) (string, error) {
		return in, nil
	}

	issue := Get(PythonNotFoundId)
	out, err := issue.Render("dark")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(out, "See also") {
		t.Error("Render() should append the See also section when links exist")
	}
}
