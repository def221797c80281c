package session

import "testing"

func TestParseConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("PRINT_DEPTH: 9\nHYBRID: false\nCUSTOM_KEY: foo\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PrintDepth != 9 {
		t.Fatalf("expected PRINT_DEPTH override, got %d", cfg.PrintDepth)
	}
	if cfg.Hybrid {
		t.Fatalf("expected HYBRID overridden to false")
	}
	if cfg.LineWidth != DefaultConfig().LineWidth {
		t.Fatalf("expected LINE_WIDTH to keep its default")
	}
	if cfg.Overlay["CUSTOM_KEY"] != "foo" {
		t.Fatalf("expected unknown key preserved in overlay, got %v", cfg.Overlay)
	}
}

func TestSessionSetGetUnset(t *testing.T) {
	s := New(DefaultConfig(), nil)
	if _, ok := s.Get("FOO"); ok {
		t.Fatalf("expected FOO unset initially")
	}
	s.Set("FOO", "bar")
	if v, ok := s.Get("FOO"); !ok || v != "bar" {
		t.Fatalf("expected FOO=bar, got %q, %v", v, ok)
	}
	s.Unset("FOO")
	if _, ok := s.Get("FOO"); ok {
		t.Fatalf("expected FOO gone after unset")
	}
}

func TestSessionGetFallsBackToConfig(t *testing.T) {
	s := New(DefaultConfig(), nil)
	v, ok := s.Get("PRINT_DEPTH")
	if !ok || v != "5" {
		t.Fatalf("expected PRINT_DEPTH=5 from config, got %q, %v", v, ok)
	}
}

func TestSessionUseWithNilShellIsNoop(t *testing.T) {
	s := New(DefaultConfig(), nil)
	if err := s.Use("whatever.sml"); err != nil {
		t.Fatalf("expected no error from nil shell, got %v", err)
	}
}
