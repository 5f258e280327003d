// Package yamltable reads and writes type tables as YAML:
//
//	types:
//	  - code: INFP
//	    stack: FiNeSiTe
//
// Rows are a sequence, not a mapping, so declared order survives a round trip.
package yamltable

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/corey/fstack/internal/ports"
)

// ErrEmptyTable is returned when a file parses but declares no rows.
var ErrEmptyTable = errors.New("table file declares no types")

// document is the on-disk form.
type document struct {
	Types []ports.TableEntry `yaml:"types"`
}

// Source loads a table from a YAML file. It implements ports.TableSource.
type Source struct {
	Path string
}

// Entries reads and decodes the file at s.Path.
func (s Source) Entries() ([]ports.TableEntry, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return entries, nil
}

// Decode parses a YAML table document. Unknown fields are rejected so that
// typos such as "stak:" do not silently produce empty stacks.
func Decode(r io.Reader) ([]ports.TableEntry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("decode table: %w", err)
	}
	if len(doc.Types) == 0 {
		return nil, ErrEmptyTable
	}
	return doc.Types, nil
}

// Encode writes entries as a YAML table document.
func Encode(w io.Writer, entries []ports.TableEntry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Types: entries}); err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	return enc.Close()
}
