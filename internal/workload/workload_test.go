// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petenewcomb/cpusched-go"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	chk := require.New(t)
	f, err := Parse(strings.NewReader(`# convoy
id,arrival,burst,priority
P1,0,24,2
P2, 1, 3
P3,2,3,1
`), CSV)
	chk.NoError(err)
	chk.Zero(f.Quantum)
	chk.Equal([]cpusched.Process{
		{ID: "P1", Arrival: 0, Burst: 24, Priority: 2},
		{ID: "P2", Arrival: 1, Burst: 3, Priority: 1},
		{ID: "P3", Arrival: 2, Burst: 3, Priority: 1},
	}, f.Processes.Processes())
}

func TestParseCSVHeaderWithoutPriority(t *testing.T) {
	chk := require.New(t)
	f, err := Parse(strings.NewReader("ID, Arrival, Burst\nP1,0,2\n"), CSV)
	chk.NoError(err)
	chk.Equal([]cpusched.Process{{ID: "P1", Arrival: 0, Burst: 2, Priority: 1}}, f.Processes.Processes())
}

func TestParseCSVRejectsBadRows(t *testing.T) {
	for name, tt := range map[string]struct {
		input string
		want  error
	}{
		"too few fields":  {"P1,0\n", ErrInvalidWorkload},
		"too many fields": {"P1,0,1,1,1\n", ErrInvalidWorkload},
		"not a number":    {"P1,0,x\n", ErrInvalidWorkload},
		"bad first row":   {"P1,zero,24\nP2,1,3\nP3,2,3\n", ErrInvalidWorkload},
		"unknown header":  {"name,arrival,burst\nP1,0,1\n", ErrInvalidWorkload},
		"zero burst":      {"P1,0,0\n", cpusched.ErrInvalidProcessSet},
		"duplicate":       {"P1,0,1\nP1,1,1\n", cpusched.ErrInvalidProcessSet},
		"empty":           {"", cpusched.ErrInvalidProcessSet},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), CSV)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseYAML(t *testing.T) {
	chk := require.New(t)
	f, err := Parse(strings.NewReader(`
quantum: 4
processes:
  - {id: A, arrival: 0, burst: 5, priority: 3}
  - id: B
    arrival: 2
    burst: 1
`), YAML)
	chk.NoError(err)
	chk.Equal(4, f.Quantum)
	chk.Equal([]cpusched.Process{
		{ID: "A", Arrival: 0, Burst: 5, Priority: 3},
		{ID: "B", Arrival: 2, Burst: 1, Priority: 1},
	}, f.Processes.Processes())
}

func TestParseYAMLRejectsBadDocuments(t *testing.T) {
	for name, tt := range map[string]struct {
		input string
		want  error
	}{
		"unknown field":     {"processes:\n  - {id: A, arrival: 0, burst: 1, nice: 3}\n", ErrInvalidWorkload},
		"malformed":         {"processes: [\n", ErrInvalidWorkload},
		"negative quantum":  {"quantum: -1\nprocesses:\n  - {id: A, arrival: 0, burst: 1}\n", cpusched.ErrInvalidQuantum},
		"negative arrival":  {"processes:\n  - {id: A, arrival: -2, burst: 1}\n", cpusched.ErrInvalidProcessSet},
		"empty document":    {"", cpusched.ErrInvalidProcessSet},
		"missing processes": {"quantum: 2\n", cpusched.ErrInvalidProcessSet},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), YAML)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	chk := require.New(t)
	in := &File{Quantum: 3, Processes: LongFirstProcess()}
	var sb strings.Builder
	chk.NoError(in.Encode(&sb))
	out, err := Parse(strings.NewReader(sb.String()), YAML)
	chk.NoError(err)
	chk.Equal(in, out)
}

func TestLoad(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "convoy.csv")
	chk.NoError(os.WriteFile(csvPath, []byte("P1,0,24\nP2,1,3\nP3,2,3\n"), 0o600))
	f, err := Load(csvPath)
	chk.NoError(err)
	chk.Equal(LongFirstProcess(), f.Processes)

	ymlPath := filepath.Join(dir, "convoy.YML")
	chk.NoError(os.WriteFile(ymlPath, []byte("quantum: 5\nprocesses:\n  - {id: P1, arrival: 0, burst: 24}\n  - {id: P2, arrival: 1, burst: 3}\n  - {id: P3, arrival: 2, burst: 3}\n"), 0o600))
	f, err = Load(ymlPath)
	chk.NoError(err)
	chk.Equal(5, f.Quantum)
	chk.Equal(LongFirstProcess(), f.Processes)

	_, err = Load(filepath.Join(dir, "convoy.txt"))
	chk.ErrorIs(err, ErrInvalidWorkload)

	_, err = Load(filepath.Join(dir, "absent.csv"))
	chk.ErrorIs(err, os.ErrNotExist)
}

func TestGenerate(t *testing.T) {
	chk := require.New(t)
	ps, err := Generate(4)
	chk.NoError(err)
	chk.Equal([]cpusched.Process{
		{ID: "P1", Arrival: 0, Burst: 24, Priority: 1},
		{ID: "P2", Arrival: 1, Burst: 3, Priority: 1},
		{ID: "P3", Arrival: 2, Burst: 3, Priority: 1},
		{ID: "P4", Arrival: 3, Burst: 3, Priority: 1},
	}, ps.Processes())

	_, err = Generate(0)
	chk.ErrorIs(err, cpusched.ErrInvalidProcessSet)
}
