package autoformat

import "testing"

func TestContinuation(t *testing.T) {
	cases := []struct {
		prev string
		want string
	}{
		// Unordered lists.
		{"- item", "- "},
		{"* item", "* "},
		{"+ item", "+ "},
		{"  - nested", "  - "},
		{"\t* tabbed", "\t* "},

		// Ordered lists increment.
		{"1. first", "2. "},
		{"2. foo", "3. "},
		{"9. x", "10. "},
		{"  41. answer", "  42. "},

		// Empty items terminate the list.
		{"- ", ""},
		{"* ", ""},
		{"+ ", ""},
		{"3. ", ""},
		{"  * ", ""},
		{"-   ", ""},
		{"  7.  ", ""},

		// Plain auto-indent.
		{"    x", "    "},
		{"\t\tcode", "\t\t"},
		{"plain", ""},
		{"", ""},
		{"   ", "   "},

		// Not markers.
		{"-item", ""},
		{"*bold*", ""},
		{"1.x", ""},
		{"a. thing", ""},
		{"  -", "  "},
	}
	for _, c := range cases {
		if got := Continuation(c.prev); got != c.want {
			t.Errorf("Continuation(%q) = %q, want %q", c.prev, got, c.want)
		}
	}
}

func TestContinuation_AbsurdOrdinalFallsBackToIndent(t *testing.T) {
	prev := "99999999999999999999999999. x"
	if got, want := Continuation(prev), ""; got != want {
		t.Fatalf("Continuation(%q) = %q, want %q", prev, got, want)
	}
}
