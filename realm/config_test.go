package realm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigParsesRunsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := `
unique_suffix: build42
deadline: 1500ms
invariant_guards: false
max_join_depth: 8
runs:
  - input: a.json
    output: a.out.js
  - input: b.json
    output: b.out.js
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.UniqueSuffix != "build42" {
		t.Fatalf("expected unique_suffix build42, got %q", cfg.UniqueSuffix)
	}
	if len(cfg.Runs) != 2 || cfg.Runs[0].Input != "a.json" || cfg.Runs[1].Output != "b.out.js" {
		t.Fatalf("unexpected runs: %+v", cfg.Runs)
	}

	d, ok, err := cfg.ParsedDeadline()
	if err != nil || !ok || d.Milliseconds() != 1500 {
		t.Fatalf("expected a 1500ms deadline, got %v ok=%v err=%v", d, ok, err)
	}

	flags := cfg.Flags()
	if flags.InvariantGuards {
		t.Fatalf("expected invariant_guards: false to flip the default flag off")
	}
	if flags.MaxJoinDepth != 8 {
		t.Fatalf("expected max_join_depth override to take effect, got %d", flags.MaxJoinDepth)
	}
}

func TestConfigWithoutDeadlineReportsUnset(t *testing.T) {
	cfg := &Config{}
	_, ok, err := cfg.ParsedDeadline()
	if err != nil || ok {
		t.Fatalf("expected an unset deadline to report ok=false, got ok=%v err=%v", ok, err)
	}
}

func TestConfigFlagsDefaultsWhenUnset(t *testing.T) {
	cfg := &Config{}
	flags := cfg.Flags()
	def := DefaultFlags()
	if flags != def {
		t.Fatalf("expected an empty config to produce DefaultFlags(), got %+v want %+v", flags, def)
	}
}
