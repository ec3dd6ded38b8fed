// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package workload reads process sets from files and builds the stock
// workloads offered by the command line tool and the HTTP API.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/petenewcomb/cpusched-go"
	"gopkg.in/yaml.v3"
)

type constError string

func (e constError) Error() string {
	return string(e)
}

// ErrInvalidWorkload is wrapped by errors reporting a workload that cannot be
// decoded. Decoded workloads that fail process set validation wrap
// [cpusched.ErrInvalidProcessSet] instead.
const ErrInvalidWorkload = constError("invalid workload")

// Format identifies a workload encoding.
type Format string

const (
	// CSV rows are "id,arrival,burst[,priority]". Lines starting with '#'
	// are skipped, as is a leading header row naming exactly those columns.
	// Priority defaults to 1.
	CSV Format = "csv"

	// YAML documents hold an optional quantum and a list of processes.
	YAML Format = "yaml"
)

// FormatOf infers the format of a file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: cannot tell the format of %s", ErrInvalidWorkload, path)
	}
}

// File is a decoded workload.
type File struct {
	// Quantum is the Round Robin time slice requested by the file, or zero if
	// it names none.
	Quantum int

	Processes cpusched.ProcessSet
}

// Load reads the workload at path, choosing the decoder by extension.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	wl, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wl, nil
}

// Parse decodes a workload from r.
func Parse(r io.Reader, format Format) (*File, error) {
	switch format {
	case CSV:
		return parseCSV(r)
	case YAML:
		return parseYAML(r)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidWorkload, string(format))
	}
}

func parseCSV(r io.Reader) (*File, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkload, err)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	procs := make([]cpusched.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 3 or 4", ErrInvalidWorkload, i+1, len(row))
		}
		p := cpusched.Process{ID: strings.TrimSpace(row[0]), Priority: 1}
		fields := []*int{&p.Arrival, &p.Burst, &p.Priority}
		for j, s := range row[1:] {
			v, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %w", ErrInvalidWorkload, i+1, err)
			}
			*fields[j] = v
		}
		procs = append(procs, p)
	}
	ps, err := cpusched.NewProcessSet(procs...)
	if err != nil {
		return nil, err
	}
	return &File{Processes: ps}, nil
}

var csvColumns = []string{"id", "arrival", "burst", "priority"}

// isHeader reports whether a row names the CSV columns. Any other row is
// parsed as a process, so a malformed first row is an error rather than a
// skipped header.
func isHeader(row []string) bool {
	if len(row) < 3 || len(row) > len(csvColumns) {
		return false
	}
	for i, name := range row {
		if !strings.EqualFold(strings.TrimSpace(name), csvColumns[i]) {
			return false
		}
	}
	return true
}

type yamlFile struct {
	Quantum   int           `yaml:"quantum,omitempty"`
	Processes []yamlProcess `yaml:"processes"`
}

type yamlProcess struct {
	ID       string `yaml:"id"`
	Arrival  int    `yaml:"arrival"`
	Burst    int    `yaml:"burst"`
	Priority *int   `yaml:"priority"`
}

func parseYAML(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc yamlFile
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkload, err)
	}
	if doc.Quantum < 0 {
		return nil, fmt.Errorf("%w: quantum %d is negative", cpusched.ErrInvalidQuantum, doc.Quantum)
	}

	procs := make([]cpusched.Process, len(doc.Processes))
	for i, yp := range doc.Processes {
		procs[i] = cpusched.Process{ID: yp.ID, Arrival: yp.Arrival, Burst: yp.Burst, Priority: 1}
		if yp.Priority != nil {
			procs[i].Priority = *yp.Priority
		}
	}
	ps, err := cpusched.NewProcessSet(procs...)
	if err != nil {
		return nil, err
	}
	return &File{Quantum: doc.Quantum, Processes: ps}, nil
}

// Encode writes the workload as YAML in the form Parse accepts.
func (f *File) Encode(w io.Writer) error {
	doc := yamlFile{Quantum: f.Quantum, Processes: make([]yamlProcess, 0, f.Processes.Len())}
	for _, p := range f.Processes.Processes() {
		doc.Processes = append(doc.Processes, yamlProcess{ID: p.ID, Arrival: p.Arrival, Burst: p.Burst, Priority: &p.Priority})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}
