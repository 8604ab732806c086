package huffpack

import (
	"testing"
)

func TestGenerateCodes_Concrete(t *testing.T) {
	codes, inv := mustCodes(concreteInput)

	a, _ := codes.Lookup(0x41)
	b, _ := codes.Lookup(0x42)
	c, _ := codes.Lookup(0x43)
	if !(a.Size <= b.Size && b.Size <= c.Size) {
		t.Errorf("code lengths out of order: A=%s B=%s C=%s", a, b, c)
	}

	for _, symbol := range []Symbol{0x41, 0x42, 0x43} {
		hc, found := codes.Lookup(symbol)
		if !found {
			t.Errorf("symbol %d has no code", symbol)
			continue
		}
		if actual := inv.Lookup(hc); actual != symbol {
			t.Errorf("inverse of %s: expected %d, got %d", hc, symbol, actual)
		}
	}
}

func TestGenerateCodes_SingleSymbol(t *testing.T) {
	codes, inv := mustCodes(bytesOf('x', 1000))

	hc, found := codes.Lookup('x')
	if !found {
		t.Fatalf("symbol 'x' has no code")
	}
	if expect := MakeCode(1, 0); hc != expect {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, hc)
	}
	if inv.Lookup(hc) != 'x' {
		t.Errorf("inverse of %s: expected %d, got %d", hc, 'x', inv.Lookup(hc))
	}
	if inv.Lookup(MakeCode(1, 1)) != InvalidSymbol {
		t.Errorf("expected \"1\" to be unassigned")
	}
	if inv.MinSize() != 1 || inv.MaxSize() != 1 {
		t.Errorf("expected sizes 1 .. 1, got %d .. %d", inv.MinSize(), inv.MaxSize())
	}
}

func TestGenerateCodes_PrefixFree(t *testing.T) {
	for name, data := range roundTripInputs() {
		t.Run(name, func(t *testing.T) {
			codes, inv := mustCodes(data)
			freq := mustFreq(data)

			if codes.Len() != freq.Len() || inv.Len() != freq.Len() {
				t.Errorf("expected %d codes, got %d forward and %d inverse", freq.Len(), codes.Len(), inv.Len())
			}

			var all []Code
			for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
				hc, found := codes.Lookup(symbol)
				if found != (freq.Count(symbol) != 0) {
					t.Errorf("symbol %d: has code %v, has count %d", symbol, found, freq.Count(symbol))
				}
				if found {
					all = append(all, hc)
				}
			}

			for i, a := range all {
				if a.Size < codes.MinSize() || a.Size > codes.MaxSize() {
					t.Errorf("code %s outside sizes %d .. %d", a, codes.MinSize(), codes.MaxSize())
				}
				for j, b := range all {
					if i != j && b.HasPrefix(a) {
						t.Errorf("code %s is a prefix of code %s", a, b)
					}
				}
			}
		})
	}
}

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{hc: Code{}, expect: `""`},
		{hc: MakeCode(1, 0), expect: `"0"`},
		{hc: MakeCode(3, 0x1), expect: `"001"`},
		{hc: MakeCode(2, 0x2).Append(true), expect: `"101"`},
	}
	for _, row := range testData {
		if actual := row.hc.String(); row.expect != actual {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(4, 0xb) // "1011"
	if !hc.HasPrefix(Code{}) || !hc.HasPrefix(hc) {
		t.Errorf("%s should have the empty code and itself as prefixes", hc)
	}
	if !hc.HasPrefix(MakeCode(2, 0x2)) {
		t.Errorf("%s should have prefix \"10\"", hc)
	}
	if hc.HasPrefix(MakeCode(2, 0x3)) {
		t.Errorf("%s should not have prefix \"11\"", hc)
	}
	if hc.HasPrefix(MakeCode(5, 0x16)) {
		t.Errorf("%s should not have a longer prefix", hc)
	}
}
