package huffpack

import (
	"math/rand"
)

// concreteInput is the A:3 B:2 C:1 example used throughout the tests.
var concreteInput = []byte{0x41, 0x41, 0x41, 0x42, 0x42, 0x43}

func mustFreq(data []byte) FrequencyTable {
	freq, err := CountFrequencies(data)
	if err != nil {
		panic(err)
	}
	return freq
}

func mustCodes(data []byte) (*CodeTable, *InverseCodeTable) {
	tree, err := BuildTree(mustFreq(data))
	if err != nil {
		panic(err)
	}
	return GenerateCodes(tree)
}

func randomBytes(seed int64, n int, alphabet int) []byte {
	rng := rand.New(rand.NewSource(seed))
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.Intn(alphabet))
	}
	return out
}

// skewedBytes returns data whose symbol counts follow a Fibonacci-like
// progression, which produces a deep, unbalanced tree.
func skewedBytes() []byte {
	var out []byte
	a, b := 1, 1
	for symbol := 0; symbol < 20; symbol++ {
		for i := 0; i < a; i++ {
			out = append(out, byte(symbol))
		}
		a, b = b, a+b
	}
	return out
}

func roundTripInputs() map[string][]byte {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	return map[string][]byte{
		"single-byte":  {0x00},
		"two-symbols":  []byte("ab"),
		"concrete":     concreteInput,
		"text":         []byte("the quick brown fox jumps over the lazy dog"),
		"all-bytes":    all,
		"repeated":     bytesOf('x', 1000),
		"random-small": randomBytes(1, 37, 5),
		"random-large": randomBytes(2, 65536, 256),
		"skewed":       skewedBytes(),
	}
}

func bytesOf(ch byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = ch
	}
	return out
}
