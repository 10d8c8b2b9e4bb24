// SPDX-License-Identifier: MIT

// Package dmfile opens and creates dm files on disk, transparently handling
// gzip and zstd compression.
//
// Reading sniffs the stream's magic bytes, so a compressed file is decoded
// whatever its name. Writing picks the codec from the path suffix.
package dmfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Stdio is the path placeholder for standard input / output.
const Stdio = "-"

// Codec identifies a compression format.
type Codec uint8

const (
	// CodecNone is plain text.
	CodecNone Codec = iota
	// CodecGzip is RFC 1952 gzip (suffix ".gz").
	CodecGzip
	// CodecZstd is Zstandard (suffix ".zst").
	CodecZstd
)

// String returns the codec name.
func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecGzip:
		return "gzip"
	case CodecZstd:
		return "zstd"
	default:
		return fmt.Sprintf("codec(%d)", uint8(c))
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ErrUnknownCodec is returned by NewWriter for a Codec value it does not know.
var ErrUnknownCodec = errors.New("dmfile: unknown codec")

// CodecFor maps a path suffix to its codec. Matching is case-insensitive.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CodecGzip
	case ".zst", ".zstd":
		return CodecZstd
	default:
		return CodecNone
	}
}

// Detect peeks at br and reports the codec of the stream it holds.
// Nothing is consumed.
func Detect(br *bufio.Reader) Codec {
	head, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return CodecZstd
	case bytes.HasPrefix(head, gzipMagic):
		return CodecGzip
	default:
		return CodecNone
	}
}

// Open opens path for reading and decompresses it if needed.
// The caller must Close the result, which also closes the file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := newReader(f, f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("dmfile: open %s: %w", path, err)
	}

	return rc, nil
}

// NewReader wraps r with the decoder matching its magic bytes.
// Closing the result releases the decoder but not r.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	return newReader(r, nil)
}

func newReader(r io.Reader, underlying io.Closer) (io.ReadCloser, error) {
	br := bufio.NewReader(r)

	switch Detect(br) {
	case CodecGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip header: %w", err)
		}
		return &readCloser{Reader: zr, closers: []io.Closer{zr, underlying}}, nil

	case CodecZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zstd init: %w", err)
		}
		return &readCloser{Reader: zr, closers: []io.Closer{zstdCloser{zr}, underlying}}, nil

	default:
		return &readCloser{Reader: br, closers: []io.Closer{underlying}}, nil
	}
}

// Create creates (or truncates) path and returns a writer compressing with
// the codec implied by its suffix. Close flushes the compressor and the file.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	wc, err := newWriter(f, CodecFor(path), f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("dmfile: create %s: %w", path, err)
	}

	return wc, nil
}

// NewWriter wraps w with an encoder for c.
// Closing the result flushes the encoder but does not close w.
func NewWriter(w io.Writer, c Codec) (io.WriteCloser, error) {
	return newWriter(w, c, nil)
}

func newWriter(w io.Writer, c Codec, underlying io.Closer) (io.WriteCloser, error) {
	switch c {
	case CodecNone:
		return &writeCloser{Writer: w, closers: []io.Closer{underlying}}, nil

	case CodecGzip:
		zw, err := gzip.NewWriterLevel(w, gzip.DefaultCompression)
		if err != nil {
			return nil, err
		}
		return &writeCloser{Writer: zw, closers: []io.Closer{zw, underlying}}, nil

	case CodecZstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		return &writeCloser{Writer: zw, closers: []io.Closer{zw, underlying}}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodec, c)
	}
}

// zstdCloser adapts (*zstd.Decoder).Close, which returns nothing.
type zstdCloser struct{ d *zstd.Decoder }

func (z zstdCloser) Close() error {
	z.d.Close()
	return nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error { return closeAll(r.closers) }

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error { return closeAll(w.closers) }

// closeAll closes in order, skipping nils, and returns every error joined.
func closeAll(closers []io.Closer) error {
	var errs []error
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
