package vdf

import (
	"testing"
)

func TestParseNestedBlock(t *testing.T) {
	node, err := Parse(`"KEY" { "INNER" "1" }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inner, ok := node.GetNode("KEY")
	if !ok {
		t.Fatalf("missing KEY block")
	}
	v, ok := inner.GetString("INNER")
	if !ok || v != "1" {
		t.Fatalf("INNER = %q, %v; want \"1\", true", v, ok)
	}
}

func TestParseBareTokens(t *testing.T) {
	node, err := Parse(`KEY { INNER "1" }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inner, ok := node.GetNode("KEY")
	if !ok {
		t.Fatalf("missing KEY block")
	}
	if v, _ := inner.GetString("INNER"); v != "1" {
		t.Errorf("INNER = %q", v)
	}
}

func TestParseAppManifest(t *testing.T) {
	manifest := `"AppState"
{
	"appid"		"255710"
	"name"		"Cities: Skylines"
	"StateFlags"		"4"
	"installdir"		"Cities_Skylines"
	"SizeOnDisk"		"10551256003"
	"UserConfig"
	{
		"language"		"english"
	}
}
`
	node, err := Parse(manifest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, ok := node.GetNode("AppState")
	if !ok {
		t.Fatalf("missing AppState block")
	}
	if name, _ := state.GetString("name"); name != "Cities: Skylines" {
		t.Errorf("name = %q", name)
	}
	if cfg, ok := state.GetNode("UserConfig"); !ok {
		t.Errorf("missing UserConfig block")
	} else if lang, _ := cfg.GetString("language"); lang != "english" {
		t.Errorf("language = %q", lang)
	}
	wantKeys := []string{"appid", "name", "StateFlags", "installdir", "SizeOnDisk", "UserConfig"}
	gotKeys := state.Keys()
	if len(gotKeys) != len(wantKeys) {
		t.Fatalf("keys = %v", gotKeys)
	}
	for i := range wantKeys {
		if gotKeys[i] != wantKeys[i] {
			t.Errorf("key[%d] = %q, want %q", i, gotKeys[i], wantKeys[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", " \n\t "},
		{"comment only", "// nothing here\n"},
		{"unmatched open", `"KEY" { "INNER" "1"`},
		{"unmatched close", `"KEY" "1" }`},
		{"dangling key", `"KEY"`},
		{"key then close", `"A" { "KEY" }`},
		{"bare open", `{ "A" "1" }`},
		{"unterminated string", `"KEY" "unter`},
		{"newline in string", "\"KEY\" \"a\nb\""},
		{"bad escape", `"KEY" "\q"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			node, err := Parse(tc.input)
			if err == nil {
				t.Fatalf("expected error, got %v", node)
			}
			if _, ok := err.(*FormatError); !ok {
				t.Fatalf("expected *FormatError, got %T", err)
			}
		})
	}
}

func TestFormatErrorPosition(t *testing.T) {
	_, err := Parse("\"A\"\n{\n\t\"B\" \"1\"\n")
	fe, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("expected *FormatError, got %v", err)
	}
	if fe.Line != 4 {
		t.Errorf("line = %d, want 4", fe.Line)
	}
}

func TestParseSkipsComments(t *testing.T) {
	node, err := Parse(`
// header comment
"A"
{
	"B" "1" // trailing comment
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := node.GetNode("A")
	if v, _ := a.GetString("B"); v != "1" {
		t.Errorf("B = %q", v)
	}
}

func TestParseEscapes(t *testing.T) {
	node, err := Parse(`"A" { "B" "quote \" slash \\ tab \t nl \n" }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := node.GetNode("A")
	v, _ := a.GetString("B")
	want := "quote \" slash \\ tab \t nl \n"
	if v != want {
		t.Errorf("B = %q, want %q", v, want)
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	node, err := Parse(`"A" { "B" "1" "C" "2" "B" "3" }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := node.GetNode("A")
	// last write wins, first occurrence keeps its slot
	if v, _ := a.GetString("B"); v != "3" {
		t.Errorf("B = %q, want \"3\"", v)
	}
	keys := a.Keys()
	if len(keys) != 2 || keys[0] != "B" || keys[1] != "C" {
		t.Errorf("keys = %v", keys)
	}
}

func TestRoundTrip(t *testing.T) {
	original := NewNode()
	state := NewNode()
	state.SetString("appid", "440")
	state.SetString("name", "Team \"Fortress\" 2")
	cfg := NewNode()
	cfg.SetString("language", "english")
	state.SetNode("UserConfig", cfg)
	original.SetNode("AppState", state)

	parsed, err := Parse(original.String())
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if parsed.String() != original.String() {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", original, parsed)
	}
}
