package sdxl

import "testing"

func TestPairs(t *testing.T) {
	got, err := Pairs([]string{"a", "1", "b", "2"})
	if err != nil {
		t.Fatalf("Pairs error: %v", err)
	}
	want := [][2]string{{"a", "1"}, {"b", "2"}}
	if len(got) != len(want) {
		t.Fatalf("Pairs returned %d pairs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPairs_Empty(t *testing.T) {
	got, err := Pairs(nil)
	if err != nil {
		t.Fatalf("Pairs error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Pairs(nil) = %v, want empty", got)
	}
}

func TestPairs_OddCount(t *testing.T) {
	if _, err := Pairs([]string{"a", "1", "b"}); err == nil {
		t.Fatal("Pairs accepted an odd-length list")
	}
}

func TestParsePrompts_SingleToken(t *testing.T) {
	got, err := ParsePrompts([]string{"a red fox"})
	if err != nil {
		t.Fatalf("ParsePrompts error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].Text != "a red fox" || got[0].Weight != 1.0 {
		t.Errorf("entry = %+v, want {a red fox 1}", got[0])
	}
}

func TestParsePrompts_Pairs(t *testing.T) {
	got, err := ParsePrompts([]string{"a", "0.5", "b", "-0.5"})
	if err != nil {
		t.Fatalf("ParsePrompts error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Text != "a" || got[0].Weight != 0.5 {
		t.Errorf("entry 0 = %+v, want {a 0.5}", got[0])
	}
	if got[1].Text != "b" || got[1].Weight != -0.5 {
		t.Errorf("entry 1 = %+v, want {b -0.5}", got[1])
	}
}

func TestParsePrompts_OddCount(t *testing.T) {
	_, err := ParsePrompts([]string{"a", "0.5", "b"})
	if err == nil {
		t.Fatal("ParsePrompts accepted a 3-token list")
	}
	if !IsArgumentError(err) {
		t.Errorf("error = %T, want *ArgumentError", err)
	}
}

func TestParsePrompts_Empty(t *testing.T) {
	if _, err := ParsePrompts(nil); !IsArgumentError(err) {
		t.Errorf("ParsePrompts(nil) error = %v, want ArgumentError", err)
	}
}

func TestParsePrompts_BadWeight(t *testing.T) {
	if _, err := ParsePrompts([]string{"a", "heavy"}); !IsArgumentError(err) {
		t.Errorf("error = %v, want ArgumentError", err)
	}
}

func TestParsePrompts_TrimsText(t *testing.T) {
	got, err := ParsePrompts([]string{"  padded  ", "1.0"})
	if err != nil {
		t.Fatalf("ParsePrompts error: %v", err)
	}
	if got[0].Text != "padded" {
		t.Errorf("text = %q, want %q", got[0].Text, "padded")
	}
}

func TestParsePrompts_EmptyText(t *testing.T) {
	if _, err := ParsePrompts([]string{"   ", "1.0"}); !IsArgumentError(err) {
		t.Errorf("error = %v, want ArgumentError", err)
	}
}
