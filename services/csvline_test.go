package services

import (
	"reflect"
	"testing"
)

func TestParseCSVLine(t *testing.T) {
	t.Run("plain cells", func(t *testing.T) {
		got := parseCSVLine("a,b,c")
		want := []string{"a", "b", "c"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("parseCSVLine() = %v, want %v", got, want)
		}
	})

	t.Run("empty cells", func(t *testing.T) {
		got := parseCSVLine(",,")
		want := []string{"", "", ""}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("parseCSVLine() = %v, want %v", got, want)
		}
	})

	t.Run("quoted comma", func(t *testing.T) {
		got := parseCSVLine(`"x,y",z`)
		want := []string{"x,y", "z"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("parseCSVLine() = %v, want %v", got, want)
		}
	})

	t.Run("doubled quotes", func(t *testing.T) {
		got := parseCSVLine(`"he said ""hi""",b`)
		want := []string{`he said "hi"`, "b"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("parseCSVLine() = %v, want %v", got, want)
		}
	})

	t.Run("single cell", func(t *testing.T) {
		got := parseCSVLine("only")
		want := []string{"only"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("parseCSVLine() = %v, want %v", got, want)
		}
	})
}

func TestEncodeCSVCell(t *testing.T) {
	t.Run("bare value", func(t *testing.T) {
		if got := encodeCSVCell("plain"); got != "plain" {
			t.Errorf("encodeCSVCell() = %q", got)
		}
	})

	t.Run("comma forces quoting", func(t *testing.T) {
		if got := encodeCSVCell("a,b"); got != `"a,b"` {
			t.Errorf("encodeCSVCell() = %q", got)
		}
	})

	t.Run("quotes are doubled", func(t *testing.T) {
		if got := encodeCSVCell(`say "hi"`); got != `"say ""hi"""` {
			t.Errorf("encodeCSVCell() = %q", got)
		}
	})
}

func TestCSVQuotingRoundTrip(t *testing.T) {
	values := []string{
		`a,b "c"`,
		`plain`,
		`trailing,`,
		`"fully quoted"`,
		`mixed, "and, nested"`,
		``,
	}
	for _, v := range values {
		line := encodeCSVRow([]string{v, "other"})
		cells := parseCSVLine(line)
		if len(cells) != 2 {
			t.Fatalf("round trip of %q produced %d cells", v, len(cells))
		}
		if cells[0] != v {
			t.Errorf("round trip of %q = %q", v, cells[0])
		}
	}
}

func TestSplitLines(t *testing.T) {
	t.Run("LF endings", func(t *testing.T) {
		got := splitLines("a\nb\n")
		if len(got) != 2 || got[0] != "a" || got[1] != "b" {
			t.Errorf("splitLines() = %v", got)
		}
	})

	t.Run("CRLF endings", func(t *testing.T) {
		got := splitLines("a\r\nb\r\n")
		if len(got) != 2 || got[0] != "a" || got[1] != "b" {
			t.Errorf("splitLines() = %v", got)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		if got := splitLines(""); got != nil {
			t.Errorf("splitLines() = %v, want nil", got)
		}
	})
}
