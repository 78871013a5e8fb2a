package player

import "testing"

func TestNormalizeTag(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"#VC0PYJ9LJ":    "#VC0PYJ9LJ",
		"vc0pyj9lj":     "#VC0PYJ9LJ",
		"  #vc0pyj9lj ": "#VC0PYJ9LJ",
		"##ABC":         "#ABC",
		"   ":           "",
		"#":             "",
	}
	for in, want := range cases {
		if got := NormalizeTag(in); got != want {
			t.Fatalf("NormalizeTag(%q): got=%q want=%q", in, got, want)
		}
	}
}

func TestValidTag(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"#VC0PYJ9LJ":         true,
		"#A":                 true,
		"VC0PYJ9LJ":          false,
		"#":                  false,
		"#AB/CD":             false,
		"#abc":               false,
		"#ABCDEFGHIJKLMNOPQ": false,
	}
	for in, want := range cases {
		if got := ValidTag(in); got != want {
			t.Fatalf("ValidTag(%q): got=%t want=%t", in, got, want)
		}
	}
}
