package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"logicss/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates empty report. If destination cannot be created report goes
// to temporary file, see Name.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	return &Report{entries: make(map[string]entry), file: f}, nil
}

// entry is either in memory data or a file read when report is finalized.
type entry struct {
	original string
	actual   string
	stamp    time.Time
	data     []byte
}

// Report accumulates files and data for debug archive. All methods are safe
// to call on nil report, which means no report was requested.
// NOTE: not to be used concurrently.
type Report struct {
	entries map[string]entry
	file    *os.File
}

// Close writes the archive.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	defer r.file.Close()
	return r.finalize()
}

// Name returns absolute name of the archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store remembers file to be read into archive on Close. Storing different
// file under the same name is a programming error.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if old, exists := r.entries[name]; exists && old.original != path {
		panic(fmt.Sprintf("attempt to overwrite file in the report for [%s]: was %s, now %s", name, old.original, path))
	}
	e := entry{original: path, actual: path}
	if p, err := filepath.Abs(path); err == nil {
		e.actual = p
	}
	r.entries[name] = e
}

// StoreData puts data into archive under requested name. Names which are
// already taken get time stamp suffix.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	e := entry{data: slices.Clone(data), stamp: time.Now()}
	r.entries[r.uniqueName(name, e.stamp)] = e
}

// StoreCopy reads file now, so later changes to it do not affect the report.
func (r *Report) StoreCopy(name, path string) error {
	if r == nil {
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("unable to store %s in the report: not a regular file", path)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return err
	}
	e := entry{original: path, actual: abs, stamp: info.ModTime(), data: data}
	r.entries[r.uniqueName(name, time.Now())] = e
	return nil
}

func (r *Report) uniqueName(name string, stamp time.Time) string {
	if _, exists := r.entries[name]; exists {
		return fmt.Sprintf("%s-%d", name, stamp.UnixNano())
	}
	return name
}

func (r *Report) finalize() error {
	arc := zip.NewWriter(r.file)

	names := slices.Sorted(maps.Keys(r.entries))
	if err := saveFile(arc, "MANIFEST", time.Now(), bytes.NewReader(r.manifest(names))); err != nil {
		return err
	}

	for _, name := range names {
		e := r.entries[name]
		if e.data != nil {
			if err := saveFile(arc, name, e.stamp, bytes.NewReader(e.data)); err != nil {
				return err
			}
			continue
		}
		if err := saveStoredFile(arc, name, e.actual); err != nil {
			return err
		}
	}
	return arc.Close()
}

func (r *Report) manifest(names []string) []byte {
	now := time.Now()
	buf := new(bytes.Buffer)
	for _, name := range names {
		e := r.entries[name]
		stamp := e.stamp
		if stamp.IsZero() {
			stamp = now
		}
		fmt.Fprintf(buf, "%s\t%s\t%s : %s\n", stamp.UTC().Format(time.UnixDate), name, e.original, e.actual)
	}
	return buf.Bytes()
}

// saveStoredFile ignores files which do not exist (anymore).
func saveStoredFile(arc *zip.Writer, name, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return saveFile(arc, name, info.ModTime(), f)
}

func saveFile(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
