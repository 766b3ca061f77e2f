package config

import "testing"

func TestGetFallsBackWhenUnsetOrBlank(t *testing.T) {
	t.Setenv("TRAVELPINS_TEST_KEY", "   ")
	if got := Get("TRAVELPINS_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("Get = %q, want fallback", got)
	}

	t.Setenv("TRAVELPINS_TEST_KEY", "value")
	if got := Get("TRAVELPINS_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("Get = %q, want value", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("TRAVELPINS_TEST_BOOL", "TRUE")
	if !Bool("TRAVELPINS_TEST_BOOL") {
		t.Fatal("expected true")
	}

	t.Setenv("TRAVELPINS_TEST_BOOL", "yes")
	if Bool("TRAVELPINS_TEST_BOOL") {
		t.Fatal("expected false for non-true value")
	}
}
