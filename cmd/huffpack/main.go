// Command huffpack compresses and decompresses files with static Huffman
// coding.
//
// Usage:
//
//     huffpack -c [-v] [-o out]... file...
//     huffpack -d [-o out]... file...
//
// Without -o, compressing "name" writes "name.rbh" and decompressing
// "name.rbh" writes "name".
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/internal/logger"
)

const containerSuffix = ".rbh"

type stringList []string

func (list *stringList) String() string {
	return strings.Join(*list, ",")
}

func (list *stringList) Set(value string) error {
	*list = append(*list, value)
	return nil
}

var _ flag.Value = (*stringList)(nil)

type options struct {
	compress   bool
	decompress bool
	verbose    bool
	keepGoing  bool
	outputs    stringList
	inputs     []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "huffpack: %v\n", err)
		return 2
	}

	logg := logger.New(stderr, opts.verbose)

	failed := false
	for index, input := range opts.inputs {
		output, err := outputPath(opts, index)
		if err == nil {
			err = processFile(opts, input, output, stdout, logg)
		}
		if err != nil {
			logg.Errorf("%s: %v", input, err)
			failed = true
			if !opts.keepGoing {
				return 1
			}
		}
	}
	if failed {
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.compress, "c", false, "compress the files")
	fs.BoolVar(&opts.compress, "compress", false, "compress the files")
	fs.BoolVar(&opts.decompress, "d", false, "decompress the files")
	fs.BoolVar(&opts.decompress, "decompress", false, "decompress the files")
	fs.BoolVar(&opts.verbose, "v", false, "report the compression rate of each file")
	fs.BoolVar(&opts.verbose, "verbose", false, "report the compression rate of each file")
	fs.BoolVar(&opts.keepGoing, "k", false, "continue with the remaining files after an error")
	fs.BoolVar(&opts.keepGoing, "keep-going", false, "continue with the remaining files after an error")
	fs.Var(&opts.outputs, "o", "output path, once per input file")
	fs.Var(&opts.outputs, "output", "output path, once per input file")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.inputs = fs.Args()

	switch {
	case opts.compress == opts.decompress:
		return options{}, errors.New("exactly one of -compress or -decompress is required")
	case len(opts.inputs) == 0:
		return options{}, errors.New("no input files")
	case len(opts.outputs) != 0 && len(opts.outputs) != len(opts.inputs):
		return options{}, fmt.Errorf("number of -output arguments (%d) should be the same as the number of files (%d)", len(opts.outputs), len(opts.inputs))
	}
	return opts, nil
}

func outputPath(opts options, index int) (string, error) {
	if len(opts.outputs) != 0 {
		return opts.outputs[index], nil
	}
	input := opts.inputs[index]
	if opts.compress {
		return input + containerSuffix, nil
	}
	if base := strings.TrimSuffix(input, containerSuffix); base != input && base != "" {
		return base, nil
	}
	return "", fmt.Errorf("cannot derive an output name without the %q suffix; use -output", containerSuffix)
}

func processFile(opts options, input, output string, stdout io.Writer, logg logger.Logger) error {
	if opts.decompress {
		logg.Infof("decompressing %s to %s", input, output)
		return huffpack.DecompressFile(input, output)
	}

	logg.Infof("compressing %s to %s", input, output)
	if err := huffpack.CompressFile(input, output); err != nil {
		return err
	}
	if opts.verbose {
		rate, err := huffpack.FileCompressionRatio(input, output)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s compression rate: %.2f%%\n", input, rate)
	}
	return nil
}
