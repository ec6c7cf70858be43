// Package input turns puzzle input text into typed records.
//
// Three shapes are supported:
//
//   - Lines:   one record per line, trimmed of surrounding spaces.
//   - Records: groups of lines separated by blank lines, passed verbatim.
//   - CommaSep: a parser adaptor splitting one line on commas.
//
// Sequences are lazy iter.Seq2 values yielding (record, nil). A parse or
// read failure is yielded once as (zero, err) and ends the sequence, so a
// range loop sees every good record before the first bad one.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// ErrParse indicates that a record did not parse.
var ErrParse = errors.New("input: parsing record")

// ErrRead indicates a failure opening or reading the input.
var ErrRead = errors.New("input: reading")

// Parser converts the text of one record.
type Parser[T any] func(s string) (T, error)

// LineError locates a record that failed to parse.
type LineError struct {
	Name string // input name, usually the file's base name
	Line int    // 1-based line on which the record ends
	Raw  string // record text as handed to the parser
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v for %q", e.Name, e.Line, e.Err, e.Raw)
}

func (e *LineError) Unwrap() error { return e.Err }

func (e *LineError) Is(target error) bool { return target == ErrParse }

// Lines parses r one line at a time. Surrounding spaces and the line
// terminator are removed before parse is called; lines that are blank after
// trimming are still handed to parse. name labels errors.
func Lines[T any](r io.Reader, name string, parse Parser[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		sc := bufio.NewScanner(r)
		line := 0
		for sc.Scan() {
			line++
			raw := strings.TrimSpace(sc.Text())
			v, err := parse(raw)
			if err != nil {
				yield(zero, &LineError{Name: name, Line: line, Raw: raw, Err: err})
				return
			}
			if !yield(v, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(zero, fmt.Errorf("%w %s: %w", ErrRead, name, err))
		}
	}
}

// Records parses r in groups of lines separated by one or more blank lines.
// Whitespace may be significant, so each record is passed as its lines
// joined with "\n", each terminated by "\n", without any trimming.
func Records[T any](r io.Reader, name string, parse Parser[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var (
			zero T
			buf  strings.Builder
			line int
		)
		flush := func() bool {
			if buf.Len() == 0 {
				return true
			}
			raw := buf.String()
			buf.Reset()
			v, err := parse(raw)
			if err != nil {
				yield(zero, &LineError{Name: name, Line: line, Raw: raw, Err: err})
				return false
			}
			return yield(v, nil)
		}

		sc := bufio.NewScanner(r)
		for sc.Scan() {
			text := strings.TrimSuffix(sc.Text(), "\r")
			if strings.TrimSpace(text) == "" {
				if !flush() {
					return
				}
				line++
				continue
			}
			line++
			buf.WriteString(text)
			buf.WriteByte('\n')
		}
		if err := sc.Err(); err != nil {
			yield(zero, fmt.Errorf("%w %s: %w", ErrRead, name, err))
			return
		}
		flush()
	}
}

// LinesFile is Lines over the file at path. The file is opened when
// iteration starts and closed when it ends; failure to open is yielded as
// an ErrRead error.
func LinesFile[T any](path string, parse Parser[T]) iter.Seq2[T, error] {
	return fromFile(path, parse, Lines[T])
}

// RecordsFile is Records over the file at path; see LinesFile.
func RecordsFile[T any](path string, parse Parser[T]) iter.Seq2[T, error] {
	return fromFile(path, parse, Records[T])
}

func fromFile[T any](path string, parse Parser[T], split func(io.Reader, string, Parser[T]) iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			var zero T
			yield(zero, fmt.Errorf("%w: %w", ErrRead, err))
			return
		}
		defer f.Close()
		for v, err := range split(f, filepath.Base(path), parse) {
			if !yield(v, err) {
				return
			}
		}
	}
}

// Collect drains seq, returning every record or the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// CommaSep adapts an item parser into a line parser for comma-separated
// lists. Items are not trimmed.
func CommaSep[T any](parse Parser[T]) Parser[[]T] {
	return func(s string) ([]T, error) {
		fields := strings.Split(s, ",")
		out := make([]T, 0, len(fields))
		for i, f := range fields {
			v, err := parse(f)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, v)
		}
		return out, nil
	}
}
