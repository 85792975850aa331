package lab

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gotest.tools/assert"

	"github.com/ieee0824/ust2lab-go/phoneme"
	"github.com/ieee0824/ust2lab-go/segment"
)

var testSegments = []segment.Segment{
	{Sample: "s", Name: "k", Start: 0, End: 0},
	{Sample: "s", Name: "a", Start: 0, End: 450},
	{Sample: "s", Name: "k", Start: 450, End: 490.5},
	{Sample: "s", Name: "y", Start: 490.5, End: 530},
	{Sample: "s", Name: "a", Start: 530, End: 1000},
}

func TestWriteHTS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatHTS, testSegments))

	want := "0 0 k\n0 4500000 a\n4500000 4905000 k\n4905000 5300000 y\n5300000 10000000 a\n"
	assert.Equal(t, want, buf.String())

	labels, err := ReadHTS(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(FromSegments(testSegments), labels); diff != "" {
		t.Errorf("ReadHTS mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteAudacity(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatAudacity, testSegments[1:3]))

	want := "0\t0.45\ta\n0.45\t0.4905\tk\n"
	assert.Equal(t, want, buf.String())

	labels, err := Read(strings.NewReader(want+"\\\t100\t2000\n"), FormatAudacity)
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, "k", labels[1].Name)
	assert.Equal(t, 450.0, labels[1].Start)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"hts", FormatHTS},
		{"LAB", FormatHTS},
		{" audacity ", FormatAudacity},
		{"txt", FormatAudacity},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
	_, err := ParseFormat("textgrid")
	require.Error(t, err)
	require.Error(t, Write(&bytes.Buffer{}, Format("textgrid"), nil))
}

func TestReadErrors(t *testing.T) {
	_, err := ReadHTS(strings.NewReader("0 100 a\n100\n"))
	assert.ErrorContains(t, err, "line 2")
	_, err = ReadHTS(strings.NewReader("0 x a\n"))
	assert.ErrorContains(t, err, "line 1: end")
}

func TestValidate(t *testing.T) {
	labels := FromSegments(testSegments)
	require.NoError(t, Validate(labels, ValidateOptions{AllowEmpty: true}))

	err := Validate(labels, ValidateOptions{})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.DeepEqual(t, []int{1}, verr.InvalidDuration)

	bad := []Label{
		{Start: 0, End: 100, Name: "a"},
		{Start: 120, End: 110, Name: ""},
		{Start: 110, End: 200, Name: "k"},
	}
	err = Validate(bad, ValidateOptions{})
	require.True(t, errors.As(err, &verr))
	assert.DeepEqual(t, []int{2}, verr.InvalidDuration)
	assert.DeepEqual(t, []int{2}, verr.EmptyName)
	assert.DeepEqual(t, [][2]int{{1, 2}}, verr.Inconsistent)
	assert.ErrorContains(t, err, "inconsistent labels on lines: [1, 2]")
}

func TestCompare(t *testing.T) {
	a := FromSegments(testSegments)
	b := FromSegments(testSegments)
	b[2].End, b[3].Start = 495, 495

	d := Compare(a, b)
	assert.Equal(t, true, d.Aligned)
	assert.Equal(t, 0, d.EditDistance)
	assert.Equal(t, 4.5, d.MaxBoundaryDelta)

	d = Compare(a, a[1:])
	assert.Equal(t, false, d.Aligned)
	assert.Equal(t, 1, d.EditDistance)
}

func TestSummarize(t *testing.T) {
	s := Summarize(FromSegments(testSegments))
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 1000.0, s.Duration)
	assert.Equal(t, 2, s.ByClass[phoneme.ClassConsonant])
	assert.Equal(t, 2, s.ByClass[phoneme.ClassVowel])
	assert.Equal(t, 1, s.ByClass[phoneme.ClassSemivowel])
}
