package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/kbukum/llmrest/version"
)

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, version.Version) {
		t.Errorf("expected version %q in output, got %q", version.Version, out)
	}
}

func TestVersionCmd_JSON(t *testing.T) {
	out, err := execute(t, "", "version", "--json")
	if err != nil {
		t.Fatalf("version --json failed: %v", err)
	}

	var info version.Info
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if info.Version != version.Version {
		t.Errorf("expected version %q, got %q", version.Version, info.Version)
	}
	if info.GoVersion == "" {
		t.Error("expected go version from build info")
	}
}
