package logging

import "testing"

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")
	SetLevel("debug")
	if GetLevel() != LevelDebug {
		t.Fatalf("expected debug, got %v", GetLevel())
	}
	SetLevel(" WARNING ")
	if GetLevel() != LevelWarn {
		t.Fatalf("expected warn, got %v", GetLevel())
	}
	// unknown names leave the level unchanged
	SetLevel("chatty")
	if GetLevel() != LevelWarn {
		t.Fatalf("unknown level should be ignored, got %v", GetLevel())
	}
}
