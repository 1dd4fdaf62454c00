package cents

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"testing"
	"unsafe"

	"github.com/govalues/decimal"
	shopspring "github.com/shopspring/decimal"
)

// prec returns the default config with the given precision.
func prec(p int) Config {
	cfg := DefaultConfig()
	cfg.Precision = p
	return cfg
}

func TestMoney_ZeroValue(t *testing.T) {
	got := Money{}
	if got.MinorUnits() != 0 {
		t.Errorf("Money{}.MinorUnits() = %v, want %v", got.MinorUnits(), 0)
	}
	if got.Config() != DefaultConfig().withIncrement() {
		t.Errorf("Money{}.Config() = %+v, want %+v", got.Config(), DefaultConfig())
	}
	if got.String() != "0.00" {
		t.Errorf("Money{}.String() = %q, want %q", got.String(), "0.00")
	}
}

// withIncrement returns the config with the increment resolved.
func (c Config) withIncrement() Config {
	if c.Increment.IsZero() {
		c.Increment = decimal.MustNew(1, c.Precision)
	}
	return c
}

func TestMoney_Size(t *testing.T) {
	m := Money{}
	got := unsafe.Sizeof(m)
	want := uintptr(16)
	if got != want {
		t.Errorf("unsafe.Sizeof(%q) = %v, want %v", m, got, want)
	}
}

func TestMoney_Interfaces(t *testing.T) {
	var i any = Money{}
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
	_, ok = i.(fmt.Formatter)
	if !ok {
		t.Errorf("%T does not implement fmt.Formatter", i)
	}
	_, ok = i.(json.Marshaler)
	if !ok {
		t.Errorf("%T does not implement json.Marshaler", i)
	}
	i = &Money{}
	_, ok = i.(json.Unmarshaler)
	if !ok {
		t.Errorf("%T does not implement json.Unmarshaler", i)
	}
}

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			v    any
			p    int
			want int64
		}{
			// Integers
			{0, 2, 0},
			{1, 2, 100},
			{int8(-5), 2, -500},
			{int16(7), 0, 7},
			{int32(7), 3, 7000},
			{int64(-5), 2, -500},
			{uint(3), 2, 300},
			{uint8(3), 2, 300},
			{uint16(3), 2, 300},
			{uint32(3), 2, 300},
			{uint64(3), 2, 300},

			// Floats
			{1.005, 2, 101},
			{-1.005, 2, -101},
			{0.1 + 0.2, 2, 30},
			{1.15, 2, 115},
			{float32(0.5), 2, 50},
			{0.005, 2, 1},
			{0.0049, 2, 0},
			{1.5, 0, 2},
			{-1.5, 0, -2},
			{2.5, 0, 3},

			// Decimals
			{decimal.MustParse("7.1"), 2, 710},
			{decimal.MustParse("-0.015"), 2, -2},
			{shopspring.RequireFromString("-0.015"), 2, -2},
			{shopspring.RequireFromString("1e3"), 2, 100000},
			{json.Number("12.345"), 2, 1235},
			{json.Number("1.2e2"), 2, 12000},

			// Text
			{"1.005", 2, 101},
			{"$1,234.56", 2, 123456},
			{"(1.99)", 2, -199},
			{"($1,000.00)", 2, -100000},
			{"-1.99", 2, -199},
			{"USD 1234.56", 2, 123456},
			{".5", 2, 50},
			{"5.", 2, 500},
			{"007", 2, 700},
			{"abc", 2, 0},
			{"", 2, 0},
			{"-", 2, 0},
			{"1.2.3", 2, 0},
			{"1-2", 2, 0},
			{[]byte("12.34"), 2, 1234},
			{"0.00000000000000000000001", 2, 0},

			// Other amounts
			{MustNew("1.2345", prec(3)), 2, 124},
			{MustNew("1.2", prec(1)), 3, 1200},
			{MustNew("-1.235", prec(3)), 2, -124},

			// Unsupported values
			{nil, 2, 0},
			{struct{}{}, 2, 0},
			{true, 2, 0},
			{(*Money)(nil), 2, 0},
			{math.NaN(), 2, 0},
			{math.Inf(1), 2, 0},
		}
		for _, tt := range tests {
			got, err := New(tt.v, prec(tt.p))
			if err != nil {
				t.Errorf("New(%v, %v) failed: %v", tt.v, tt.p, err)
				continue
			}
			if got.MinorUnits() != tt.want {
				t.Errorf("New(%v, %v) = %v, want %v", tt.v, tt.p, got.MinorUnits(), tt.want)
			}
			if got.Precision() != tt.p {
				t.Errorf("New(%v, %v).Precision() = %v, want %v", tt.v, tt.p, got.Precision(), tt.p)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		strict := DefaultConfig()
		strict.ErrorOnInvalid = true
		tests := map[string]struct {
			v       any
			cfg     Config
			wantErr error
		}{
			"nil":                {nil, strict, ErrInvalidInput},
			"bool":               {true, strict, ErrInvalidInput},
			"nan":                {math.NaN(), strict, ErrInvalidInput},
			"inf":                {math.Inf(-1), strict, ErrInvalidInput},
			"uint overflow":      {uint64(math.MaxUint64), DefaultConfig(), ErrOverflow},
			"text overflow 1":    {"99999999999999999999", DefaultConfig(), ErrOverflow},
			"text overflow 2":    {"100000000000000000", DefaultConfig(), ErrOverflow},
			"float overflow":     {1e17, DefaultConfig(), ErrOverflow},
			"number overflow 1":  {json.Number("1e300"), DefaultConfig(), ErrOverflow},
			"number overflow 2":  {json.Number("-1e400"), DefaultConfig(), ErrOverflow},
			"number overflow 3":  {json.Number("1e400"), strict, ErrOverflow},
			"int overflow":       {math.MaxInt64, DefaultConfig(), ErrOverflow},
			"precision 1":        {1, prec(-1), ErrInvalidConfig},
			"precision 2":        {1, prec(MaxPrecision + 1), ErrInvalidConfig},
			"precision 18":       {10, prec(MaxPrecision), ErrOverflow},
			"empty decimal":      {1, Config{Pattern: "#", NegativePattern: "-#"}, ErrInvalidConfig},
			"pattern":            {1, Config{DecimalMark: ".", Pattern: "!", NegativePattern: "-#"}, ErrInvalidConfig},
			"negative pattern":   {1, Config{DecimalMark: ".", Pattern: "#", NegativePattern: "-"}, ErrInvalidConfig},
			"negative increment": {1, Config{DecimalMark: ".", Pattern: "#", NegativePattern: "-#", Increment: decimal.MustParse("-0.05")}, ErrInvalidConfig},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := New(tt.v, tt.cfg)
				if err == nil {
					t.Errorf("New(%v, %+v) did not fail", tt.v, tt.cfg)
					return
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("New(%v, %+v) failed with %v, want %v", tt.v, tt.cfg, err, tt.wantErr)
				}
			})
		}
	})
}

func TestMustNew(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNew(1, prec(-1)) did not panic")
			}
		}()
		MustNew(1, prec(-1))
	})
}

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		de := DefaultConfig()
		de.Separator = "."
		de.DecimalMark = ","
		tests := []struct {
			s    string
			cfg  Config
			want int64
		}{
			{"$1,234.56", DefaultConfig(), 123456},
			{"(1.99)", DefaultConfig(), -199},
			{"abc", DefaultConfig(), 0},
			{"1.234,56 €", de, 123456},
			{"-1.234,5", de, -123450},
			{"(0,01)", de, -1},
			{"1,5", de, 150},
			{"1.5", de, 1500},
			{"12", prec(0), 12},
			{"12.5", prec(0), 13},
		}
		for _, tt := range tests {
			got, err := Parse(tt.s, tt.cfg)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.s, err)
				continue
			}
			if got.MinorUnits() != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.s, got.MinorUnits(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"overflow": "12345678901234567890",
		}
		for name, s := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Parse(s, DefaultConfig())
				if err == nil {
					t.Errorf("Parse(%q) did not fail", s)
				}
			})
		}
	})
}

func TestMustParse(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParse(\"1\", prec(-1)) did not panic")
			}
		}()
		MustParse("1", prec(-1))
	})
}

func TestNewFromFloat64(t *testing.T) {
	tests := []struct {
		f    float64
		want int64
	}{
		{0, 0},
		{1.005, 101},
		{19.99, 1999},
		{-19.995, -2000},
		{1e-10, 0},
	}
	for _, tt := range tests {
		got, err := NewFromFloat64(tt.f, DefaultConfig())
		if err != nil {
			t.Errorf("NewFromFloat64(%v) failed: %v", tt.f, err)
			continue
		}
		if got.MinorUnits() != tt.want {
			t.Errorf("NewFromFloat64(%v) = %v, want %v", tt.f, got.MinorUnits(), tt.want)
		}
	}
}

func TestNewFromMinorUnits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []int64{0, 1, -1, 123456, math.MaxInt64, math.MinInt64 + 1}
		for _, units := range tests {
			got, err := NewFromMinorUnits(units, DefaultConfig())
			if err != nil {
				t.Errorf("NewFromMinorUnits(%v) failed: %v", units, err)
				continue
			}
			if got.MinorUnits() != units {
				t.Errorf("NewFromMinorUnits(%v).MinorUnits() = %v", units, got.MinorUnits())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			units int64
			cfg   Config
		}{
			"min int":   {math.MinInt64, DefaultConfig()},
			"precision": {1, prec(-1)},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewFromMinorUnits(tt.units, tt.cfg)
				if err == nil {
					t.Errorf("NewFromMinorUnits(%v, %+v) did not fail", tt.units, tt.cfg)
				}
			})
		}
	})
}

func TestMoney_RoundTrip(t *testing.T) {
	tests := []struct {
		units int64
		p     int
	}{
		{0, 2},
		{1, 2},
		{-1, 2},
		{123456, 2},
		{-123456, 2},
		{1234567, 0},
		{999999999999999, 4},
		{math.MaxInt64, 2},
		{-math.MaxInt64, 18},
	}
	for _, tt := range tests {
		m, err := NewFromMinorUnits(tt.units, prec(tt.p))
		if err != nil {
			t.Errorf("NewFromMinorUnits(%v, %v) failed: %v", tt.units, tt.p, err)
			continue
		}
		got, err := New(m.String(), prec(tt.p))
		if err != nil {
			t.Errorf("New(%q, %v) failed: %v", m.String(), tt.p, err)
			continue
		}
		if got.MinorUnits() != tt.units {
			t.Errorf("New(%q, %v).MinorUnits() = %v, want %v", m.String(), tt.p, got.MinorUnits(), tt.units)
		}
		got, err = New(m, prec(tt.p))
		if err != nil {
			t.Errorf("New(%q, %v) failed: %v", m, tt.p, err)
			continue
		}
		if got.MinorUnits() != tt.units {
			t.Errorf("New(%q, %v).MinorUnits() = %v, want %v", m, tt.p, got.MinorUnits(), tt.units)
		}
	}
}

func TestMoney_Accessors(t *testing.T) {
	tests := []struct {
		s                 string
		p                 int
		wantDollars       int64
		wantCents         int64
		wantDecimal       string
		wantFloat         float64
		wantSign          int
		wantZero, wantNeg bool
		wantPos           bool
	}{
		{"0", 2, 0, 0, "0.00", 0, 0, true, false, false},
		{"12.34", 2, 12, 34, "12.34", 12.34, 1, false, false, true},
		{"-12.34", 2, -12, -34, "-12.34", -12.34, -1, false, true, false},
		{"0.07", 2, 0, 7, "0.07", 0.07, 1, false, false, true},
		{"-0.07", 2, 0, -7, "-0.07", -0.07, -1, false, true, false},
		{"1234", 0, 1234, 0, "1234", 1234, 1, false, false, true},
		{"1.234", 3, 1, 234, "1.234", 1.234, 1, false, false, true},
	}
	for _, tt := range tests {
		m := MustParse(tt.s, prec(tt.p))
		if got := m.Dollars(); got != tt.wantDollars {
			t.Errorf("%q.Dollars() = %v, want %v", m, got, tt.wantDollars)
		}
		if got := m.Cents(); got != tt.wantCents {
			t.Errorf("%q.Cents() = %v, want %v", m, got, tt.wantCents)
		}
		if got := m.Decimal().String(); got != tt.wantDecimal {
			t.Errorf("%q.Decimal() = %v, want %v", m, got, tt.wantDecimal)
		}
		if got := m.Float64(); got != tt.wantFloat {
			t.Errorf("%q.Float64() = %v, want %v", m, got, tt.wantFloat)
		}
		if got := m.Sign(); got != tt.wantSign {
			t.Errorf("%q.Sign() = %v, want %v", m, got, tt.wantSign)
		}
		if got := m.IsZero(); got != tt.wantZero {
			t.Errorf("%q.IsZero() = %v, want %v", m, got, tt.wantZero)
		}
		if got := m.IsNeg(); got != tt.wantNeg {
			t.Errorf("%q.IsNeg() = %v, want %v", m, got, tt.wantNeg)
		}
		if got := m.IsPos(); got != tt.wantPos {
			t.Errorf("%q.IsPos() = %v, want %v", m, got, tt.wantPos)
		}
		if got := m.Dollars()*int64(math.Pow10(tt.p)) + m.Cents(); got != m.MinorUnits() {
			t.Errorf("%q.Dollars() and %q.Cents() add up to %v, want %v", m, m, got, m.MinorUnits())
		}
	}
}

func TestMoney_Neg(t *testing.T) {
	tests := []struct {
		s, want, wantAbs string
	}{
		{"0", "0", "0"},
		{"1.10", "-1.10", "1.10"},
		{"-1.10", "1.10", "1.10"},
	}
	for _, tt := range tests {
		m := MustParse(tt.s, DefaultConfig())
		want := MustParse(tt.want, DefaultConfig())
		if got := m.Neg(); got.Cmp(want) != 0 {
			t.Errorf("%q.Neg() = %q, want %q", m, got, want)
		}
		wantAbs := MustParse(tt.wantAbs, DefaultConfig())
		if got := m.Abs(); got.Cmp(wantAbs) != 0 {
			t.Errorf("%q.Abs() = %q, want %q", m, got, wantAbs)
		}
		if got := m.Zero(); !got.IsZero() || got.Config() != m.Config() {
			t.Errorf("%q.Zero() = %q, want zero with the same config", m, got)
		}
	}
}

func TestMoney_Cmp(t *testing.T) {
	tests := []struct {
		m    string
		p    int
		b    string
		q    int
		want int
	}{
		{"0", 2, "0", 2, 0},
		{"1.10", 2, "1.1", 1, 0},
		{"1.10", 2, "1.101", 3, -1},
		{"-1.10", 2, "-1.2", 1, 1},
		{"2", 0, "1.99", 2, 1},
	}
	for _, tt := range tests {
		m := MustParse(tt.m, prec(tt.p))
		b := MustParse(tt.b, prec(tt.q))
		if got := m.Cmp(b); got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", m, b, got, tt.want)
		}
	}
}

func TestMoney_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    string
			v    any
			want int64
		}{
			{"1.10", "2.20", 330},
			{"1.10", 2, 310},
			{"0.10", 0.2, 30},
			{"0.10", "$0.20", 30},
			{"1.00", "(0.25)", 75},
			{"1.00", "abc", 100},
			{"1.00", nil, 100},
			{"1.00", MustNew("0.005", prec(3)), 101},
			{"1.00", MustNew("-0.004", prec(3)), 100},
			{"1.00", MustNew("2", prec(0)), 300},
			{"-1.00", decimal.MustParse("0.555"), -44},
		}
		for _, tt := range tests {
			m := MustParse(tt.m, DefaultConfig())
			got, err := m.Add(tt.v)
			if err != nil {
				t.Errorf("%q.Add(%v) failed: %v", m, tt.v, err)
				continue
			}
			if got.MinorUnits() != tt.want {
				t.Errorf("%q.Add(%v) = %v, want %v", m, tt.v, got.MinorUnits(), tt.want)
			}
			if got.Config() != m.Config() {
				t.Errorf("%q.Add(%v).Config() = %+v, want %+v", m, tt.v, got.Config(), m.Config())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		strict := DefaultConfig()
		strict.ErrorOnInvalid = true
		tests := map[string]struct {
			m       Money
			v       any
			wantErr error
		}{
			"overflow 1": {MustNewFromMinorUnits(math.MaxInt64), 1, ErrOverflow},
			"overflow 2": {MustNewFromMinorUnits(-math.MaxInt64), -1, ErrOverflow},
			"invalid":    {MustNew(1, strict), struct{}{}, ErrInvalidInput},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := tt.m.Add(tt.v)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("%q.Add(%v) failed with %v, want %v", tt.m, tt.v, err, tt.wantErr)
				}
			})
		}
	})
}

// MustNewFromMinorUnits returns an amount with the default config.
func MustNewFromMinorUnits(units int64) Money {
	m, err := NewFromMinorUnits(units, DefaultConfig())
	if err != nil {
		panic(err)
	}
	return m
}

func TestMoney_Sub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    string
			v    any
			want int64
		}{
			{"1.00", "0.50", 50},
			{"1.00", 2, -100},
			{"0.30", 0.1, 20},
			{"0", "(1.99)", 199},
			{"1.00", MustNew("0.125", prec(3)), 87},
			{"1.00", "", 100},
		}
		for _, tt := range tests {
			m := MustParse(tt.m, DefaultConfig())
			got, err := m.Sub(tt.v)
			if err != nil {
				t.Errorf("%q.Sub(%v) failed: %v", m, tt.v, err)
				continue
			}
			if got.MinorUnits() != tt.want {
				t.Errorf("%q.Sub(%v) = %v, want %v", m, tt.v, got.MinorUnits(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		m := MustNewFromMinorUnits(-math.MaxInt64)
		_, err := m.Sub(1)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("%q.Sub(1) failed with %v, want %v", m, err, ErrOverflow)
		}
	})
}

func TestMoney_AddSub(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	cfgs := []Config{DefaultConfig(), prec(0), DeDE.Config(), ArOM.Config(), DeCH.CashConfig()}
	for i := 0; i < 200; i++ {
		cfg := cfgs[r.Intn(len(cfgs))]
		a := MustNew(decimal.MustNew(r.Int63n(2e15)-1e15, cfg.Precision), cfg)
		b := MustNew(decimal.MustNew(r.Int63n(2e15)-1e15, cfg.Precision), cfg)

		// (a + b) - b = a
		c, err := a.Add(b)
		if err != nil {
			t.Errorf("%q.Add(%q) failed: %v", a, b, err)
			continue
		}
		got, err := c.Sub(b)
		if err != nil {
			t.Errorf("%q.Sub(%q) failed: %v", c, b, err)
			continue
		}
		if got.MinorUnits() != a.MinorUnits() {
			t.Errorf("%q.Add(%q).Sub(%q) = %v, want %v", a, b, b, got.MinorUnits(), a.MinorUnits())
		}

		// (a - b) + b = a
		c, err = a.Sub(b)
		if err != nil {
			t.Errorf("%q.Sub(%q) failed: %v", a, b, err)
			continue
		}
		got, err = c.Add(b)
		if err != nil {
			t.Errorf("%q.Add(%q) failed: %v", c, b, err)
			continue
		}
		if got.MinorUnits() != a.MinorUnits() {
			t.Errorf("%q.Sub(%q).Add(%q) = %v, want %v", a, b, b, got.MinorUnits(), a.MinorUnits())
		}

		// a + b = b + a
		d, err := b.Add(a)
		if err != nil {
			t.Errorf("%q.Add(%q) failed: %v", b, a, err)
			continue
		}
		if c, _ := a.Add(b); c.MinorUnits() != d.MinorUnits() {
			t.Errorf("%q.Add(%q) = %v, want %v", a, b, c.MinorUnits(), d.MinorUnits())
		}
	}
}

func TestMoney_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    string
			v    any
			want int64
		}{
			{"1.10", 3, 330},
			{"1.10", "1.5", 165},
			{"0.01", 0.5, 1},
			{"0.01", -0.5, -1},
			{"0.01", 0.49, 0},
			{"10.00", 0.075, 75},
			{"19.99", 0.0825, 165},
			{"-19.99", 0.0825, -165},
			{"1.00", "abc", 0},
			{"1.00", MustNew("2.50", DefaultConfig()), 250},
		}
		for _, tt := range tests {
			m := MustParse(tt.m, DefaultConfig())
			got, err := m.Mul(tt.v)
			if err != nil {
				t.Errorf("%q.Mul(%v) failed: %v", m, tt.v, err)
				continue
			}
			if got.MinorUnits() != tt.want {
				t.Errorf("%q.Mul(%v) = %v, want %v", m, tt.v, got.MinorUnits(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		m := MustNewFromMinorUnits(math.MaxInt64 / 2)
		_, err := m.Mul(3)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("%q.Mul(3) failed with %v, want %v", m, err, ErrOverflow)
		}
	})
}

func TestMoney_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    string
			v    any
			want int64
		}{
			{"10.00", 3, 333},
			{"-10.00", 3, -333},
			{"0.02", 3, 1},
			{"0.10", 4, 3},
			{"-0.10", 4, -3},
			{"1.00", "0.5", 200},
			{"1.00", 0.3, 333},
			{"1.00", MustNew("0.25", DefaultConfig()), 400},
			{"9.99", decimal.MustParse("1.11"), 900},
		}
		for _, tt := range tests {
			m := MustParse(tt.m, DefaultConfig())
			got, err := m.Quo(tt.v)
			if err != nil {
				t.Errorf("%q.Quo(%v) failed: %v", m, tt.v, err)
				continue
			}
			if got.MinorUnits() != tt.want {
				t.Errorf("%q.Quo(%v) = %v, want %v", m, tt.v, got.MinorUnits(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]any{
			"zero":           0,
			"zero text":      "abc",
			"zero nil":       nil,
			"rounds to zero": "0.0000001",
		}
		for name, v := range tests {
			t.Run(name, func(t *testing.T) {
				m := MustParse("1.00", DefaultConfig())
				_, err := m.Quo(v)
				if !errors.Is(err, ErrDivisionByZero) {
					t.Errorf("%q.Quo(%v) failed with %v, want %v", m, v, err, ErrDivisionByZero)
				}
			})
		}
	})
}

// MustParseSlice returns amounts with the default config.
func MustParseSlice(amounts []string) []Money {
	res := make([]Money, len(amounts))
	for i, s := range amounts {
		res[i] = MustParse(s, DefaultConfig())
	}
	return res
}

func TestMoney_Distribute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m     string
			count int
			want  []string
		}{
			{"10.00", 3, []string{"3.34", "3.33", "3.33"}},
			{"-10.00", 3, []string{"-3.34", "-3.33", "-3.33"}},
			{"0.01", 3, []string{"0.01", "0.00", "0.00"}},
			{"-0.01", 3, []string{"-0.01", "0.00", "0.00"}},
			{"0", 4, []string{"0", "0", "0", "0"}},
			{"1.01", 1, []string{"1.01"}},
			{"1.01", 2, []string{"0.51", "0.50"}},
			{"1.01", 4, []string{"0.26", "0.25", "0.25", "0.25"}},
			{"1.01", 6, []string{"0.17", "0.17", "0.17", "0.17", "0.17", "0.16"}},
			{"-1.01", 6, []string{"-0.17", "-0.17", "-0.17", "-0.17", "-0.17", "-0.16"}},
			{"100.00", 7, []string{"14.29", "14.29", "14.29", "14.29", "14.28", "14.28", "14.28"}},
		}
		for _, tt := range tests {
			m := MustParse(tt.m, DefaultConfig())
			got, err := m.Distribute(tt.count)
			if err != nil {
				t.Errorf("%q.Distribute(%v) failed: %v", m, tt.count, err)
				continue
			}
			want := MustParseSlice(tt.want)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("%q.Distribute(%v) = %v, want %v", m, tt.count, got, want)
			}
		}
	})

	t.Run("sum", func(t *testing.T) {
		for _, units := range []int64{0, 1, -1, 99, -99, 1000003, math.MaxInt64, -math.MaxInt64} {
			for count := 1; count <= 12; count++ {
				m := MustNewFromMinorUnits(units)
				parts, err := m.Distribute(count)
				if err != nil {
					t.Errorf("%q.Distribute(%v) failed: %v", m, count, err)
					continue
				}
				var sum int64
				lo, hi := parts[0].MinorUnits(), parts[0].MinorUnits()
				for _, p := range parts {
					sum += p.MinorUnits()
					lo = min(lo, p.MinorUnits())
					hi = max(hi, p.MinorUnits())
				}
				if sum != units {
					t.Errorf("%q.Distribute(%v) sums up to %v, want %v", m, count, sum, units)
				}
				if hi-lo > 1 {
					t.Errorf("%q.Distribute(%v) parts differ by %v", m, count, hi-lo)
				}
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		m := MustParse("1", DefaultConfig())
		for _, count := range []int{0, -1} {
			_, err := m.Distribute(count)
			if !errors.Is(err, ErrInvalidCount) {
				t.Errorf("%q.Distribute(%v) failed with %v, want %v", m, count, err, ErrInvalidCount)
			}
		}
	})
}
