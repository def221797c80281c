package values

import "testing"

func TestOptionEncoding(t *testing.T) {
	none := None()
	if !IsNone(none) {
		t.Fatalf("expected NONE to report IsNone")
	}
	if _, ok := IsSome(none); ok {
		t.Fatalf("expected NONE to not report IsSome")
	}

	some := Some(Int(42))
	if IsNone(some) {
		t.Fatalf("expected SOME to not report IsNone")
	}
	v, ok := IsSome(some)
	if !ok || v != Int(42) {
		t.Fatalf("expected SOME 42 payload, got %v (ok=%v)", v, ok)
	}
}

func TestCtorTag(t *testing.T) {
	tag, ok := CtorTag(NewConstructor0("LESS"))
	if !ok || tag != "LESS" {
		t.Fatalf("expected nullary tag LESS, got %q (ok=%v)", tag, ok)
	}
	tag, ok = CtorTag(NewConstructor1("SOME", Int(1)))
	if !ok || tag != "SOME" {
		t.Fatalf("expected unary tag SOME, got %q (ok=%v)", tag, ok)
	}
	if _, ok := CtorTag(Int(1)); ok {
		t.Fatalf("expected non-Seq to not have a constructor shape")
	}
}

func TestNaNBitPatterns(t *testing.T) {
	pos := PositiveNaN()
	neg := NegativeNaN()
	if !IsNaN(pos) || !IsNaN(neg) {
		t.Fatalf("expected both payloads to be NaN")
	}
	if SignBit(pos) {
		t.Fatalf("expected the canonical NaN to have a clear sign bit")
	}
	if !SignBit(neg) {
		t.Fatalf("expected ~nan to have a set sign bit")
	}
}

func TestZeroDivZeroCanonicalizes(t *testing.T) {
	zero := Real(0)
	nan := CanonicalizeNaN(zero / zero)
	if !IsNaN(nan) {
		t.Fatalf("expected 0.0/0.0 to be NaN")
	}
	if SignBit(nan) {
		t.Fatalf("expected the canonical positive-sign NaN")
	}
}

func TestNegateRealFlipsNaNSign(t *testing.T) {
	neg := NegateReal(PositiveNaN())
	if !IsNaN(neg) || !SignBit(neg) {
		t.Fatalf("expected ~nan: still NaN, sign bit set")
	}
	if NegateReal(Real(1.5)) != Real(-1.5) {
		t.Fatalf("expected ~1.5 = -1.5")
	}
}

func TestCopySign(t *testing.T) {
	if got := CopySign(Real(3), Real(-1)); got != Real(-3) {
		t.Fatalf("expected copySign(3.0, ~1.0) = ~3.0, got %v", got)
	}
	if got := CopySign(Real(-3), Real(1)); got != Real(3) {
		t.Fatalf("expected copySign(~3.0, 1.0) = 3.0, got %v", got)
	}
}

func TestEqualStructural(t *testing.T) {
	a := NewSeq(Int(1), NewSeq(String("x"), Bool(true)))
	b := NewSeq(Int(1), NewSeq(String("x"), Bool(true)))
	if !Equal(a, b) {
		t.Fatalf("expected deep structural equality")
	}
	c := NewSeq(Int(1), NewSeq(String("y"), Bool(true)))
	if Equal(a, c) {
		t.Fatalf("expected nested mismatch to break equality")
	}
}

func TestEqualNaNNeverEqual(t *testing.T) {
	nan := PositiveNaN()
	if Equal(nan, nan) {
		t.Fatalf("expected nan = nan to be false")
	}
	if Equal(NewSeq(nan), NewSeq(nan)) {
		t.Fatalf("expected NaN nested in a sequence to still never equal")
	}
}
