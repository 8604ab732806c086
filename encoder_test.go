package huffpack

import (
	"errors"
	"strings"
	"testing"
)

func TestEncoder(t *testing.T) {
	var e Encoder
	if err := e.Init(mustFreq(concreteInput)); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 2\n",
		"\tEncode(65) = \"0\"\n",
		"\tEncode(66) = \"11\"\n",
		"\tEncode(67) = \"10\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if _, found := e.Encode(0x44); found {
		t.Errorf("expected no code for symbol 0x44")
	}
}

func TestEncoder_Empty(t *testing.T) {
	var e Encoder
	if err := e.Init(FrequencyTable{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestEncoder_ZeroValue(t *testing.T) {
	var e Encoder
	if _, found := e.Encode(0x41); found {
		t.Errorf("expected no code from a zero Encoder")
	}
	if e.MinSize() != 0 || e.MaxSize() != 0 {
		t.Errorf("expected sizes 0 .. 0, got %d .. %d", e.MinSize(), e.MaxSize())
	}

	expectDump := "Encoder{\n\tMinSize() = 0\n\tMaxSize() = 0\n}\n"
	var buf strings.Builder
	_, _ = e.Dump(&buf)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
