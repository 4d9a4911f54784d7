package utils

import "testing"

func TestTransfer(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int64
	}{
		{"int64", int64(42), 42},
		{"float64", float64(42), 42},
		{"数字字符串", "42", 42},
		{"非法字符串", "abc", -1},
		{"nil", nil, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Transfer(c.in); got != c.want {
				t.Errorf("Transfer(%v) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}

func TestParseId(t *testing.T) {
	if v, err := ParseId("123"); err != nil || v != 123 {
		t.Errorf("got (%d, %v)", v, err)
	}
	for _, bad := range []string{"12a", "0", "-7", ""} {
		if _, err := ParseId(bad); err == nil {
			t.Errorf("ParseId(%q) should fail", bad)
		}
	}
}

func TestGenerateId(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateId()
		if id <= 0 {
			t.Fatalf("non-positive id: %d", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id: %d", id)
		}
		seen[id] = true
	}
}
