package proto

import "testing"

// TestBalanceRoundTrip covers P10 (spec.md §8): set to -40 -> L40,
// set to +25 -> R25, set to 0 -> R0.
func TestBalanceRoundTrip(t *testing.T) {
	cases := []struct {
		balance int
		want    string
	}{
		{-40, "L40"},
		{25, "R25"},
		{0, "R0"},
	}
	for _, c := range cases {
		ch, mag := EncodeBalance(c.balance)
		got := string(ch) + itoa(mag)
		if got != c.want {
			t.Errorf("EncodeBalance(%d) = %q, want %q", c.balance, got, c.want)
		}
		if back := DecodeBalance(ch, mag); back != c.balance {
			t.Errorf("DecodeBalance round-trip: got %d, want %d", back, c.balance)
		}
	}
}

func TestFormatMute(t *testing.T) {
	if got := string(FormatMute(3, true)); got != "MUTE13" {
		t.Fatalf("got %q, want MUTE13", got)
	}
	if got := string(FormatMute(3, false)); got != "MUTE03" {
		t.Fatalf("got %q, want MUTE03", got)
	}
}
