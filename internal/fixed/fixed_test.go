package fixed

import (
	"math"
	"testing"
)

func TestConstants(t *testing.T) {
	if One != 65536 {
		t.Errorf("One = %d, want 65536", One)
	}
	if Half != 32768 {
		t.Errorf("Half = %d, want 32768", Half)
	}
	if FracMask != 0xFFFF {
		t.Errorf("FracMask = %#x, want 0xffff", int32(FracMask))
	}
	if MaxInt != 32767 {
		t.Errorf("MaxInt = %d, want 32767", MaxInt)
	}
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want Q16
	}{
		{0, 0},
		{1, One},
		{0.5, Half},
		{-1, -One},
		{255, 255 << Shift},
		{1.0 / 65536, 1},
		{0.9999999, One - 1},
		{-0.00001, -1}, // floor, not truncation toward zero
	}
	for _, tt := range tests {
		if got := FromFloat(tt.in); got != tt.want {
			t.Errorf("FromFloat(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.25, 3.75, -2.5, 1234.0625} {
		if got := FromFloat(v).Float(); got != v {
			t.Errorf("FromFloat(%v).Float() = %v", v, got)
		}
	}
}

func TestIntFrac(t *testing.T) {
	tests := []struct {
		name     string
		q        Q16
		wantInt  int
		wantFrac Q16
	}{
		{"zero", 0, 0, 0},
		{"one", One, 1, 0},
		{"2.25", FromFloat(2.25), 2, One / 4},
		{"-0.25", FromFloat(-0.25), -1, 3 * One / 4},
		{"-1.5", FromFloat(-1.5), -2, Half},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Int(); got != tt.wantInt {
				t.Errorf("Int() = %d, want %d", got, tt.wantInt)
			}
			if got := tt.q.Frac(); got != tt.wantFrac {
				t.Errorf("Frac() = %d, want %d", got, tt.wantFrac)
			}
			if FromInt(tt.q.Int())+tt.q.Frac() != tt.q {
				t.Errorf("Int/Frac do not recompose %d", tt.q)
			}
		})
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b Q16
		want Q16
	}{
		{"one times one", One, One, One},
		{"half of 255", FromInt(255), Half, FromFloat(127.5)},
		{"negative delta", FromInt(-43), Half, FromFloat(-21.5)},
		{"near one weight", FromInt(255), One - 1, FromInt(255) - 255},
		{"zero", FromInt(100), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mul(tt.a, tt.b); got != tt.want {
				t.Errorf("Mul(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestMulNoOverflow checks products whose 32-bit intermediate would overflow.
func TestMulNoOverflow(t *testing.T) {
	a := FromInt(1000)
	b := FromInt(30)
	if got, want := Mul(a, b), FromInt(30000); got != want {
		t.Errorf("Mul(1000, 30) = %v, want %v", got, want)
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b Q16
		want Q16
	}{
		{"4/2", FromInt(4), FromInt(2), FromInt(2)},
		{"1/2", One, FromInt(2), Half},
		{"3/4", FromInt(3), FromInt(4), FromFloat(0.75)},
		{"1/3 truncates", One, FromInt(3), 21845},
		{"large ratio", FromInt(32000), FromInt(1), FromInt(32000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Div(tt.a, tt.b); got != tt.want {
				t.Errorf("Div(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Div by zero did not panic")
		}
	}()
	_ = Div(One, 0)
}

func TestLerp(t *testing.T) {
	a, b := FromInt(10), FromInt(20)
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(t=0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, Half); got != FromInt(15) {
		t.Errorf("Lerp(t=0.5) = %v, want 15", got)
	}
	if got := Lerp(b, a, Half); got != FromInt(15) {
		t.Errorf("Lerp descending (t=0.5) = %v, want 15", got)
	}
}

func TestString(t *testing.T) {
	if got := FromFloat(2.5).String(); got != "2.5" {
		t.Errorf("String() = %q, want 2.5", got)
	}
}

func TestMulMatchesFloat(t *testing.T) {
	for d := -255; d <= 255; d += 17 {
		for w := Q16(0); w < One; w += 4099 {
			got := Mul(FromInt(d), w).Float()
			want := float64(d) * w.Float()
			if math.Abs(got-want) > 1.0/65536 {
				t.Fatalf("Mul(%d, %v) = %v, want %v", d, w, got, want)
			}
		}
	}
}

func BenchmarkMul(b *testing.B) {
	x, y := FromInt(200), FromFloat(0.37)
	var sink Q16
	for b.Loop() {
		sink += Mul(x, y)
	}
	_ = sink
}
