package input_test

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/input"
)

func TestLines(t *testing.T) {
	got, err := input.Collect(input.Lines(strings.NewReader(" 1\n2 \n  3\n"), "nums", strconv.Atoi))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestLines_StopsAtFirstError(t *testing.T) {
	var good []int
	var errs []error
	for v, err := range input.Lines(strings.NewReader("1\n2\nthree\n4\n"), "nums", strconv.Atoi) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		good = append(good, v)
	}
	assert.Equal(t, []int{1, 2}, good)
	require.Len(t, errs, 1)

	err := errs[0]
	assert.ErrorIs(t, err, input.ErrParse)
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	var le *input.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "nums", le.Name)
	assert.Equal(t, 3, le.Line)
	assert.Equal(t, "three", le.Raw)
	assert.Contains(t, err.Error(), "nums:3:")
}

func TestLines_EarlyBreak(t *testing.T) {
	n := 0
	for range input.Lines(strings.NewReader("1\n2\n3\n"), "nums", strconv.Atoi) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestLines_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := input.Collect(input.Lines(iotest.ErrReader(boom), "broken", strconv.Atoi))
	assert.ErrorIs(t, err, input.ErrRead)
	assert.ErrorIs(t, err, boom)
}

func TestRecords(t *testing.T) {
	in := "a\nb\n\n\nc\n  d\n\ne"
	got, err := input.Collect(input.Records(strings.NewReader(in), "groups", func(s string) (string, error) {
		return s, nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a\nb\n", "c\n  d\n", "e\n"}, got)
}

func TestRecords_ErrorLine(t *testing.T) {
	in := "1\n2\n\n3\nx\n\n4\n"
	sum := func(s string) (int, error) {
		total := 0
		for _, f := range strings.Fields(s) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return 0, err
			}
			total += v
		}
		return total, nil
	}
	got, err := input.Collect(input.Records(strings.NewReader(in), "groups", sum))
	assert.Equal(t, []int{3}, got)

	var le *input.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 5, le.Line)
	assert.Equal(t, "3\nx\n", le.Raw)
}

func TestCommaSep(t *testing.T) {
	parse := input.CommaSep(strconv.Atoi)
	got, err := parse("3,4,3,1,2")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 3, 1, 2}, got)

	_, err = parse("1,,2")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), "item 1")

	rows, err := input.Collect(input.Lines(strings.NewReader("1,2\n3\n"), "csv", parse))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3}}, rows)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day01.txt")
	require.NoError(t, os.WriteFile(path, []byte("10\n20\n\n30\n"), 0o600))

	lines, err := input.Collect(input.LinesFile(path, func(s string) (string, error) { return s, nil }))
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20", "", "30"}, lines)

	records, err := input.Collect(input.RecordsFile(path, func(s string) (string, error) { return s, nil }))
	require.NoError(t, err)
	assert.Equal(t, []string{"10\n20\n", "30\n"}, records)

	_, err = input.Collect(input.LinesFile(filepath.Join(dir, "missing.txt"), strconv.Atoi))
	assert.ErrorIs(t, err, input.ErrRead)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = input.Collect(input.LinesFile(path, strconv.Atoi))
	var le *input.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "day01.txt", le.Name)
	assert.Equal(t, 3, le.Line)
}
