package keyword

import (
	"strings"
	"testing"
)

func TestNormalize_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "identity", in: "타이레놀", out: "타이레놀"},
		{name: "trim and collapse", in: "  타이레놀 \t 500mg \n", out: "타이레놀 500mg"},
		{name: "case preserved", in: "Tylenol", out: "Tylenol"},
		{name: "invalid utf8 dropped", in: string([]byte{0xff, 'a', 's', 'p', 0x80}), out: "asp"},
		{name: "zero width removed", in: "게보\u200b린", out: "게보린"},
		{name: "bom removed", in: "\ufeffaspirin", out: "aspirin"},
		{name: "fullwidth folded", in: "ＡＢＣ정", out: "ABC정"},
		{name: "decomposed hangul composed", in: "\u1100\u1161", out: "가"},
		{name: "controls dropped", in: "a\x00b\x07c", out: "abc"},
		{name: "only spaces", in: " \t\n ", out: ""},
		{name: "empty", in: "", out: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.in); got != tt.out {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.out)
			}
		})
	}
}

func TestNormalize_Truncates(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("가", MaxRunes+20)
	got := Normalize(long)
	if n := len([]rune(got)); n != MaxRunes {
		t.Fatalf("rune len = %d, want %d", n, MaxRunes)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"  ＡＢＣ  정 ", "타이레놀\u200b 500", "aspirin"} {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}
