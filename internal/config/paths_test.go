package config

import (
	"path/filepath"
	"testing"
)

func TestCleanTargetsWellFormed(t *testing.T) {
	home := "/Users/demo"
	seen := make(map[string]bool)
	for _, tgt := range GetCleanTargets(home) {
		if tgt.Name == "" {
			t.Fatal("target with empty name")
		}
		if seen[tgt.Name] {
			t.Errorf("duplicate target name %q", tgt.Name)
		}
		seen[tgt.Name] = true

		if len(tgt.Roots) == 0 {
			t.Errorf("%s: no roots", tgt.Name)
		}
		for _, r := range tgt.Roots {
			if !filepath.IsAbs(r.Path) {
				t.Errorf("%s: root %q is not absolute", tgt.Name, r.Path)
			}
		}
		switch tgt.RiskLevel {
		case "low", "medium", "high":
		default:
			t.Errorf("%s: unknown risk level %q", tgt.Name, tgt.RiskLevel)
		}
	}
}

func TestNoTargetRootIsProtected(t *testing.T) {
	protected := ProtectedPaths()
	for _, tgt := range GetCleanTargets("/Users/demo") {
		for _, r := range tgt.Roots {
			for _, p := range protected {
				if r.Path == p {
					t.Errorf("%s: root %q is a protected path", tgt.Name, r.Path)
				}
			}
		}
	}
}

func TestProtectedPathsCoverSIPRoots(t *testing.T) {
	got := make(map[string]bool)
	for _, p := range ProtectedPaths() {
		got[p] = true
	}
	for _, want := range []string{"/System", "/usr", "/bin", "/sbin", "/Applications"} {
		if !got[want] {
			t.Errorf("ProtectedPaths() missing %s", want)
		}
	}
}

func TestGetTargetsByCategory(t *testing.T) {
	devTargets := GetTargetsByCategory("/Users/demo", "dev")
	if len(devTargets) == 0 {
		t.Fatal("no dev targets")
	}
	for _, tgt := range devTargets {
		if tgt.Category != "dev" {
			t.Errorf("%s: category = %q, want dev", tgt.Name, tgt.Category)
		}
	}
}

func TestGetTargetByName(t *testing.T) {
	tgt, ok := GetTargetByName("/Users/demo", "Logs")
	if !ok {
		t.Fatal("Logs target not found")
	}
	if tgt.Category != "system" {
		t.Errorf("Logs category = %q, want system", tgt.Category)
	}
	if _, ok := GetTargetByName("/Users/demo", "NoSuchTarget"); ok {
		t.Error("unexpected hit for unknown name")
	}
}
