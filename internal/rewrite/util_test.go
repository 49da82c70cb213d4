package rewrite

import "testing"

func TestExtraOffset(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		offset int
		want   int
	}{
		{"empty", "", 4, 0},
		{"single line ignores offset", "abc", 4, 3},
		{"multi line subtracts offset", "ab\ncdef", 2, 2},
		{"last line shorter than offset", "abcdef\nx", 5, 0},
		{"trailing newline", "ab\n", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extraOffset(tc.text, tc.offset); got != tc.want {
				t.Errorf("extraOffset(%q, %d) = %d, want %d", tc.text, tc.offset, got, tc.want)
			}
		})
	}
}

func TestSub(t *testing.T) {
	if got, err := sub(10, 4); err != nil || got != 6 {
		t.Errorf("sub(10, 4) = (%d, %v), want (6, nil)", got, err)
	}
	if got, err := sub(4, 4); err != nil || got != 0 {
		t.Errorf("sub(4, 4) = (%d, %v), want (0, nil)", got, err)
	}
	if _, err := sub(3, 4); err == nil {
		t.Error("sub(3, 4) must fail")
	}
}
