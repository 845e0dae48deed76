package display

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/seqmv/internal/config"
	"github.com/backmassage/seqmv/internal/planner"
	"github.com/backmassage/seqmv/internal/term"
)

func samplePlan() *planner.Plan {
	return &planner.Plan{Head: "a", Separator: "_", Renames: []planner.Rename{
		{From: "/foo/b.txt", To: "/foo/a_b.txt"},
		{From: "/foo/c.txt", To: "/foo/a_c.txt"},
		{From: "d.txt", To: "a_d.txt"},
	}}
}

func TestRenderPlan_Text(t *testing.T) {
	term.Configure(config.ColorNever)
	plan := samplePlan()

	var buf bytes.Buffer
	if err := RenderPlan(&buf, plan, config.FormatText); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != plan.Len() {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), plan.Len(), buf.String())
	}
	for i, r := range plan.Renames {
		if lines[i] != r.String() {
			t.Errorf("line %d = %q, want %q", i, lines[i], r.String())
		}
	}
}

func TestRenderPlan_TextEmpty(t *testing.T) {
	term.Configure(config.ColorNever)
	var buf bytes.Buffer
	if err := RenderPlan(&buf, &planner.Plan{}, config.FormatText); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty plan rendered %q", buf.String())
	}
}

func TestRenderPlan_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPlan(&buf, samplePlan(), config.FormatJSON); err != nil {
		t.Fatal(err)
	}
	var got []planner.Rename
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if !reflect.DeepEqual(got, samplePlan().Renames) {
		t.Errorf("decoded %v", got)
	}
	if !strings.Contains(buf.String(), `"from": "/foo/b.txt"`) {
		t.Errorf("JSON keys: %s", buf.String())
	}

	buf.Reset()
	if err := RenderPlan(&buf, &planner.Plan{}, config.FormatJSON); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty JSON plan = %q, want []", buf.String())
	}
}

func TestRenderPlan_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPlan(&buf, samplePlan(), config.FormatYAML); err != nil {
		t.Fatal(err)
	}
	var got []planner.Rename
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML %q: %v", buf.String(), err)
	}
	if !reflect.DeepEqual(got, samplePlan().Renames) {
		t.Errorf("decoded %v", got)
	}
	if !strings.HasPrefix(buf.String(), "- from: /foo/b.txt\n  to: /foo/a_b.txt\n") {
		t.Errorf("YAML layout:\n%s", buf.String())
	}
}

func TestRenderPlan_UnknownFormat(t *testing.T) {
	if err := RenderPlan(&bytes.Buffer{}, samplePlan(), "xml"); err == nil {
		t.Error("RenderPlan(xml) should fail")
	}
}
