package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Format identifies a compressed stream format
type Format string

const (
	FormatZstd Format = "zstd"
	FormatGzip Format = "gzip"
)

// CompressionLevel trades speed for ratio
type CompressionLevel int

const (
	LevelFastest CompressionLevel = iota
	LevelDefault
	LevelBetter
	LevelBest
)

var levelNames = map[string]CompressionLevel{
	"fastest": LevelFastest,
	"default": LevelDefault,
	"better":  LevelBetter,
	"best":    LevelBest,
}

// ParseCompressionLevel maps a level name to a CompressionLevel
func ParseCompressionLevel(name string) (CompressionLevel, error) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LevelDefault, fmt.Errorf("unsupported compression level: %q", name)
	}
	return level, nil
}

// String returns the level name
func (l CompressionLevel) String() string {
	for name, level := range levelNames {
		if level == l {
			return name
		}
	}
	return "unknown"
}

func (l CompressionLevel) zstd() zstd.EncoderLevel {
	switch l {
	case LevelFastest:
		return zstd.SpeedFastest
	case LevelBetter:
		return zstd.SpeedBetterCompression
	case LevelBest:
		return zstd.SpeedBestCompression
	default:
		return zstd.SpeedDefault
	}
}

func (l CompressionLevel) gzip() int {
	switch l {
	case LevelFastest:
		return gzip.BestSpeed
	case LevelBetter:
		return 7
	case LevelBest:
		return gzip.BestCompression
	default:
		return gzip.DefaultCompression
	}
}

// sniffLen is how much of a stream is inspected to detect its format
const sniffLen = 3072

// Codec wraps streams in compressing and decompressing filters
type Codec struct {
	level CompressionLevel
}

// NewCodec creates a codec at the given level
func NewCodec(level CompressionLevel) *Codec {
	return &Codec{level: level}
}

// DefaultCodec returns a codec at the default level
func DefaultCodec() *Codec {
	return NewCodec(LevelDefault)
}

// Level returns the configured compression level
func (c *Codec) Level() CompressionLevel {
	return c.level
}

// FormatFor picks the output format from the destination name: gzip for .gz
// and .gzip, zstd otherwise
func (c *Codec) FormatFor(dest string) Format {
	switch strings.ToLower(filepath.Ext(dest)) {
	case ".gz", ".gzip":
		return FormatGzip
	default:
		return FormatZstd
	}
}

// NewWriter returns a writer that compresses into w. Closing it flushes the
// stream trailer but does not close w.
func (c *Codec) NewWriter(w io.Writer, format Format) (io.WriteCloser, error) {
	switch format {
	case FormatGzip:
		gw, err := gzip.NewWriterLevel(w, c.level.gzip())
		if err != nil {
			return nil, fmt.Errorf("gzip writer: %w", err)
		}
		return gw, nil
	case FormatZstd:
		zw, err := zstd.NewWriter(w,
			zstd.WithEncoderLevel(c.level.zstd()),
			// an empty input still needs a frame for the magic bytes to be detected
			zstd.WithZeroFrames(true),
		)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return zw, nil
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrUnsupportedFormat)
	}
}

// NewReader detects the format of r from its magic bytes and returns a
// decompressing reader. Closing it releases decoder resources but does not
// close r.
func (c *Codec) NewReader(r io.Reader) (io.ReadCloser, Format, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, "", fmt.Errorf("failed to read header: %w", err)
	}

	mtype := mimetype.Detect(head)
	switch {
	case mtype.Is("application/zstd"):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, "", fmt.Errorf("zstd reader: %w", err)
		}
		return zr.IOReadCloser(), FormatZstd, nil
	case mtype.Is("application/gzip"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, "", fmt.Errorf("gzip reader: %w", err)
		}
		return gr, FormatGzip, nil
	default:
		return nil, "", fmt.Errorf("detected %s: %w", mtype.String(), ErrUnsupportedFormat)
	}
}

// Compress streams src through the compressor into dst
func (c *Codec) Compress(dst io.Writer, src io.Reader, format Format) (int64, error) {
	cw, err := c.NewWriter(dst, format)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(cw, src)
	if err != nil {
		cw.Close()
		return n, fmt.Errorf("compress: %w", err)
	}
	if err := cw.Close(); err != nil {
		return n, fmt.Errorf("compress: %w", err)
	}
	return n, nil
}

// DecompressTo detects the format of src and streams it through the matching
// decompressor into the writer returned by open. open is only called once the
// format is recognised; the writer is closed before returning.
func (c *Codec) DecompressTo(open func() (io.WriteCloser, error), src io.Reader) (int64, error) {
	cr, _, err := c.NewReader(src)
	if err != nil {
		return 0, err
	}
	defer cr.Close()

	dst, err := open()
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dst, cr)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, fmt.Errorf("decompress: %w", err)
	}
	return n, nil
}
