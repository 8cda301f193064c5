package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestCurrency_ZeroValue(t *testing.T) {
	var c Currency
	if c != XXX {
		t.Errorf("Currency(0) = %v, want %v", c, XXX)
	}
	if c.IsKnown() {
		t.Errorf("%v.IsKnown() = true, want false", c)
	}
}

func TestCurrency_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"999", XXX},
			{"xxx", XXX},
			{"XXX", XXX},
			{"392", JPY},
			{"jpy", JPY},
			{"JPY", JPY},
			{"840", USD},
			{"usd", USD},
			{"USD", USD},
			{"986", BRL},
			{"brl", BRL},
			{"BRL", BRL},
			{"512", OMR},
			{"OMR", OMR},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "000", "test", "xbt", "$", "AU$", "BTC", "Usd", "MGA", "US",
		}
		for _, tt := range tests {
			_, err := ParseCurr(tt)
			if !errors.Is(err, ErrInvalidCurrency) {
				t.Errorf("ParseCurr(%q) error = %v, want %v", tt, err, ErrInvalidCurrency)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"UUU\") did not panic")
			}
		}()
		MustParseCurr("UUU")
	})
}

func TestCurrency_Scale(t *testing.T) {
	tests := []struct {
		curr Currency
		want int
	}{
		{XXX, 0},
		{JPY, 0},
		{AED, 2},
		{BRL, 2},
		{EUR, 2},
		{USD, 2},
		{OMR, 3},
		{IQD, 3},
	}
	for _, tt := range tests {
		got := tt.curr.Scale()
		if got != tt.want {
			t.Errorf("%v.Scale() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Num(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "999"},
		{JPY, "392"},
		{USD, "840"},
		{BRL, "986"},
		{OMR, "512"},
	}
	for _, tt := range tests {
		got := tt.curr.Num()
		if got != tt.want {
			t.Errorf("%v.Num() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Lookups(t *testing.T) {
	if len(codeLookup) != len(numLookup) || len(codeLookup) != len(scaleLookup) {
		t.Fatalf("lookup tables differ in length: %v, %v, %v", len(codeLookup), len(numLookup), len(scaleLookup))
	}
	for i := range codeLookup {
		c := Currency(i)
		for _, s := range []string{c.Code(), c.Num()} {
			got, err := ParseCurr(s)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", s, err)
				continue
			}
			if got != c {
				t.Errorf("ParseCurr(%q) = %v, want %v", s, got, c)
			}
		}
	}
}

func TestCurrency_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		got, err := json.Marshal(map[string]Currency{"c": BRL})
		if err != nil {
			t.Fatalf("json.Marshal failed: %v", err)
		}
		if want := `{"c":"BRL"}`; string(got) != want {
			t.Errorf("json.Marshal = %s, want %s", got, want)
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			text string
			want Currency
		}{
			{`"USD"`, USD},
			{`"986"`, BRL},
			{`null`, XXX},
		}
		for _, tt := range tests {
			var got Currency
			if err := json.Unmarshal([]byte(tt.text), &got); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.text, err)
				continue
			}
			if got != tt.want {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", tt.text, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		var got Currency
		if err := json.Unmarshal([]byte(`"UUU"`), &got); err == nil {
			t.Errorf("json.Unmarshal(\"UUU\") did not fail")
		}
	})
}

func TestCurrency_Text(t *testing.T) {
	var c Currency
	if err := c.UnmarshalText([]byte("eur")); err != nil {
		t.Fatalf("UnmarshalText(\"eur\") failed: %v", err)
	}
	got, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() failed: %v", err)
	}
	if string(got) != "EUR" {
		t.Errorf("MarshalText() = %q, want %q", got, "EUR")
	}
}

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		curr         Currency
		format, want string
	}{
		// %T verb
		{USD, "%T", "money.Currency"},
		// %q verb
		{USD, "%q", "\"USD\""},
		{USD, "%7q", "  \"USD\""},
		{USD, "%-7q", "\"USD\"  "},
		// %s verb
		{JPY, "%s", "JPY"},
		{JPY, "%5s", "  JPY"},
		{JPY, "%05s", "  JPY"}, // '0' is ignored
		{JPY, "%-5s", "JPY  "},
		// %v verb
		{OMR, "%v", "OMR"},
		{OMR, "%+5v", "  OMR"}, // '+' is ignored
		// %c verb
		{BRL, "%c", "BRL"},
		{USD, "%-5c", "USD  "},
		// wrong verbs
		{USD, "%b", "%!b(money.Currency=USD)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.curr)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.curr, got, tt.want)
		}
	}
}
