package logger

import (
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	type testRow struct {
		name    string
		verbose bool
		expect  string
	}

	testData := [...]testRow{
		{
			name:    "quiet",
			verbose: false,
			expect:  "huffpack: [ERROR] bad \"x\"\n",
		},
		{
			name:    "verbose",
			verbose: true,
			expect:  "huffpack: [INFO] read 3 bytes\nhuffpack: [ERROR] bad \"x\"\n",
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var buf strings.Builder
			l := New(&buf, row.verbose)
			l.Infof("read %d bytes", 3)
			l.Errorf("bad %q", "x")
			actual := buf.String()
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}
