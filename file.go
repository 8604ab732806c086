package huffpack

import (
	"errors"
	"fmt"
	"os"
)

// CompressFile compresses the file at inputPath into a new container at
// outputPath, replacing any existing file there.  If compression fails, the
// partially written output is removed.
func CompressFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return &IOError{Op: "read", Path: inputPath, Err: err}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return &IOError{Op: "create", Path: outputPath, Err: err}
	}

	if err := CompressTo(f, data); err != nil {
		_ = f.Close()
		_ = os.Remove(outputPath)
		return wrapPathError("write", outputPath, err)
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: outputPath, Err: err}
	}
	return nil
}

// DecompressFile restores the original contents of the container at
// inputPath into outputPath, replacing any existing file there.
func DecompressFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return &IOError{Op: "read", Path: inputPath, Err: err}
	}

	out, err := Decompress(data)
	if err != nil {
		return wrapPathError("decompress", inputPath, err)
	}

	if err := os.WriteFile(outputPath, out, 0o666); err != nil {
		return &IOError{Op: "write", Path: outputPath, Err: err}
	}
	return nil
}

// CompressionRatio returns the space saved by compression as a percentage,
// (1 - compressed/original) × 100.  The result is negative when the
// container is larger than the original.  An original size of 0 yields 0.
func CompressionRatio(original, compressed int64) float64 {
	if original == 0 {
		return 0
	}
	return (1 - float64(compressed)/float64(original)) * 100
}

// FileCompressionRatio computes CompressionRatio from the sizes of two
// files on disk.
func FileCompressionRatio(originalPath, compressedPath string) (float64, error) {
	a, err := os.Stat(originalPath)
	if err != nil {
		return 0, &IOError{Op: "stat", Path: originalPath, Err: err}
	}
	b, err := os.Stat(compressedPath)
	if err != nil {
		return 0, &IOError{Op: "stat", Path: compressedPath, Err: err}
	}
	return CompressionRatio(a.Size(), b.Size()), nil
}

// wrapPathError attaches a path to an error.  Format errors keep their
// sentinel, so errors.Is still matches them; anything else came from the
// file itself and becomes an IOError.
func wrapPathError(op, path string, err error) error {
	for _, sentinel := range codecErrors {
		if errors.Is(err, sentinel) {
			return fmt.Errorf("%s %q: %w", op, path, err)
		}
	}
	return &IOError{Op: op, Path: path, Err: err}
}

var codecErrors = []error{
	ErrEmptyInput,
	ErrCorruptHeader,
	ErrDeserialization,
	ErrMissingCode,
	ErrTruncatedStream,
	ErrInvalidCode,
	ErrCountOverflow,
}
