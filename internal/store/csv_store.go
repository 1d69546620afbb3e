// Package store persists entity collections as flat CSV files. Every load
// reads the whole collection, every save rewrites it, header row included.
// All typed values cross this boundary as formatted text.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Record is one flat row, keyed by header field name.
type Record map[string]string

type RecordStore interface {
	// LoadAll returns every record in file order, or an empty slice when
	// the backing file does not exist yet.
	LoadAll() ([]Record, error)
	// SaveAll rewrites the whole backing collection.
	SaveAll(records []Record) error
}

// CSVStore is a RecordStore over a single CSV file with a fixed field set.
type CSVStore struct {
	path   string
	fields []string
}

func NewCSVStore(path string, fields []string) *CSVStore {
	return &CSVStore{path: path, fields: fields}
}

func (s *CSVStore) LoadAll() ([]Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", s.path, err)
	}

	var records []Record
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", s.path, err)
		}
		rec := make(Record, len(header))
		for i, field := range header {
			if i < len(row) {
				rec[field] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *CSVStore) SaveAll(records []Record) error {
	// Write to a sibling temp file and rename over the target, so a crash
	// mid-save leaves the previous dataset intact.
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(s.fields); err != nil {
		f.Close()
		return fmt.Errorf("write header of %s: %w", s.path, err)
	}
	row := make([]string, len(s.fields))
	for _, rec := range records {
		for i, field := range s.fields {
			row[i] = rec[field]
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", s.path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// Ensure bootstraps every missing backing file with a header-only CSV so
// first runs start from recognizable empty collections.
func Ensure(stores ...*CSVStore) error {
	for _, s := range stores {
		if _, err := os.Stat(s.path); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", s.path, err)
		}
		if err := s.SaveAll(nil); err != nil {
			return err
		}
	}
	return nil
}
