package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

const terrazaPlan = `{
  "name": "Terraza",
  "tables": [
    {"id": "t1", "name": "Mesa 1", "x": 200, "y": 200, "shape": "circular", "capacity": {"min": 2, "max": 4}, "diningArea": "terraza", "status": "active"},
    {"id": "t2", "name": "Mesa 2", "x": 400, "y": 200, "shape": "rectangular", "capacity": {"min": 4, "max": 6}, "diningArea": "terraza", "status": "active"},
    {"id": "t3", "name": "Mesa Temporal", "x": 600, "y": 200, "shape": "circular", "capacity": {"min": 2, "max": 2}, "diningArea": "terraza", "status": "excluded"}
  ],
  "elements": [
    {"id": "w1", "type": "wall", "x": 0, "y": 0, "properties": {"endX": 800, "endY": 0}},
    {"id": "p1", "type": "plant", "x": 100, "y": 400, "layer": 1, "properties": {"plantType": "tree"}}
  ]
}`

// writePlan writes doc to a plan file in a fresh temp dir.
func writePlan(t *testing.T, name, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCLI executes the root command with args against an isolated cache.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "svg,png,json", []string{"svg", "png", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derived from input", "", "plans/terraza.json", "plans/terraza"},
		{"derived from toml input", "", "terraza.toml", "terraza"},
		{"explicit base", "out/floor", "terraza.json", "out/floor"},
		{"format extension stripped", "out/floor.png", "terraza.json", "out/floor"},
		{"other extension kept", "out/floor.v2", "terraza.json", "out/floor.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{
		"svg":  []byte("<svg/>"),
		"json": []byte("{}"),
	}

	paths, err := writeArtifacts(artifacts, filepath.Join(dir, "floor"), "terraza.json")
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	want := []string{filepath.Join(dir, "floor.json"), filepath.Join(dir, "floor.svg")}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Errorf("paths = %v, want %v", paths, want)
	}
	got, _ := os.ReadFile(filepath.Join(dir, "floor.svg"))
	if string(got) != "<svg/>" {
		t.Errorf("floor.svg = %q", got)
	}
}

func TestWriteArtifactsRefusesInput(t *testing.T) {
	input := writePlan(t, "plan.json", terrazaPlan)
	_, err := writeArtifacts(map[string][]byte{"json": []byte("{}")}, "", input)
	if err == nil {
		t.Fatal("expected error when output would overwrite the input plan")
	}
	got, _ := os.ReadFile(input)
	if string(got) != terrazaPlan {
		t.Error("input plan was modified")
	}
}

func TestRenderCommand(t *testing.T) {
	input := writePlan(t, "terraza.json", terrazaPlan)
	out := filepath.Join(t.TempDir(), "floor")

	err := runCLI(t, "render", input, "-f", "svg,png", "-o", out, "--select", "t1", "--scale", "1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(out + ".svg")
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !bytes.Contains(svg, []byte("Mesa 1")) {
		t.Error("svg should label active tables")
	}
	if bytes.Contains(svg, []byte("Mesa Temporal")) {
		t.Error("svg should not draw excluded tables")
	}

	png, err := os.ReadFile(out + ".png")
	if err != nil {
		t.Fatalf("read png: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("png output missing PNG signature")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	input := writePlan(t, "terraza.json", terrazaPlan)

	tests := []struct {
		name string
		args []string
	}{
		{"invalid format", []string{"render", input, "-f", "pdf"}},
		{"missing plan", []string{"render", filepath.Join(t.TempDir(), "missing.json")}},
		{"unsupported extension", []string{"render", writePlan(t, "plan.yaml", "name: x")}},
		{"no args", []string{"render"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runCLI(t, tt.args...); err == nil {
				t.Errorf("%v: expected error", tt.args)
			}
		})
	}
}

func TestCompletePlanFiles(t *testing.T) {
	exts, directive := completePlanFiles(nil, nil, "")
	if directive != cobra.ShellCompDirectiveFilterFileExt || len(exts) != 2 {
		t.Errorf("first arg: %v %v", exts, directive)
	}
	if _, directive := completePlanFiles(nil, []string{"plan.json"}, ""); directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("second arg directive = %v", directive)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range completionShells {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			root := New(io.Discard, LogInfo).RootCommand()
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})
			if err := root.Execute(); err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out.String(), appName) {
				t.Errorf("%s script does not mention %s", shell, appName)
			}
		})
	}
}
