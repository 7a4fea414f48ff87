package logger

import "testing"

func TestMaskAuthorization(t *testing.T) {
	got := MaskAuthorization("Bearer abcdef1234")
	want := "Bearer ****1234"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMaskEmail(t *testing.T) {
	cases := map[string]string{
		"client@example.com": "c***@example.com",
		"a@b.co":             "a***@b.co",
		"not-an-email":       "****mail",
	}
	for in, want := range cases {
		if got := MaskEmail(in); got != want {
			t.Errorf("MaskEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMaskJSON(t *testing.T) {
	input := map[string]any{
		"password":     "hunter2",
		"token":        "abc12345",
		"client_email": "client@example.com",
		"nested": map[string]any{
			"webhook_secret": "key_12345678",
		},
	}
	masked := MaskJSON(input)
	if masked["password"] != "****ter2" {
		t.Fatalf("expected masked password, got %v", masked["password"])
	}
	if masked["token"] != "****2345" {
		t.Fatalf("expected masked token, got %v", masked["token"])
	}
	if masked["client_email"] != "c***@example.com" {
		t.Fatalf("expected masked email, got %v", masked["client_email"])
	}
	nested, ok := masked["nested"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map")
	}
	if nested["webhook_secret"] != "****5678" {
		t.Fatalf("expected masked secret, got %v", nested["webhook_secret"])
	}
}

func TestMaskJSONLeavesPlainFields(t *testing.T) {
	input := map[string]any{"number": "INV-2026-0001", "total": 110.0}
	masked := MaskJSON(input)
	if masked["number"] != "INV-2026-0001" || masked["total"] != 110.0 {
		t.Fatalf("plain fields altered: %v", masked)
	}
}
