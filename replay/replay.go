package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/lixenwraith/gasup/engine"
)

// Version of the log layout; readers reject anything else
const Version = 1

// maxLine bounds a single JSONL line; the header carries the full config
const maxLine = 1 << 20

// Header is the first line of a replay log
type Header struct {
	Version int           `json:"version"`
	Seed    int64         `json:"seed"`
	Best    float64       `json:"best"`
	Config  engine.Config `json:"config"`
}

// Writer appends tick records as zstd-compressed JSONL
// Implements engine.TickRecorder
type Writer struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// Create truncates path and writes the header line
func Create(path string, h Header) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("replay: encoder: %w", err)
	}
	w := &Writer{f: f, enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}

	h.Version = Version
	if err := w.write(h); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}

// Record appends one tick
func (w *Writer) Record(rec engine.TickRecord) error {
	return w.write(rec)
}

func (w *Writer) write(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return errors.New("replay: writer closed")
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("replay: marshal: %w", err)
	}
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("replay: write: %w", err)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("replay: write: %w", err)
	}
	return w.w.Flush()
}

// Close flushes the encoder and closes the file; safe to call twice
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	if w.w != nil {
		err = w.w.Flush()
		w.w = nil
	}
	if w.enc != nil {
		if cerr := w.enc.Close(); err == nil {
			err = cerr
		}
		w.enc = nil
	}
	if w.f != nil {
		if cerr := w.f.Close(); err == nil {
			err = cerr
		}
		w.f = nil
	}
	return err
}

// Reader streams a replay log written by Writer
type Reader struct {
	Header Header

	f   *os.File
	dec *zstd.Decoder
	sc  *bufio.Scanner
}

// Open reads and validates the header of the log at path
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("replay: decoder: %w", err)
	}
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	r := &Reader{f: f, dec: dec, sc: sc}
	if !sc.Scan() {
		err := sc.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		r.Close()
		return nil, fmt.Errorf("replay: header: %w", err)
	}
	if err := json.Unmarshal(sc.Bytes(), &r.Header); err != nil {
		r.Close()
		return nil, fmt.Errorf("replay: header: %w", err)
	}
	if r.Header.Version != Version {
		r.Close()
		return nil, fmt.Errorf("replay: unsupported version %d", r.Header.Version)
	}
	return r, nil
}

// Next returns the next tick record, io.EOF after the last one
func (r *Reader) Next() (engine.TickRecord, error) {
	var rec engine.TickRecord
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return rec, fmt.Errorf("replay: read: %w", err)
		}
		return rec, io.EOF
	}
	if err := json.Unmarshal(r.sc.Bytes(), &rec); err != nil {
		return rec, fmt.Errorf("replay: unmarshal: %w", err)
	}
	return rec, nil
}

func (r *Reader) Close() error {
	r.dec.Close()
	return r.f.Close()
}
