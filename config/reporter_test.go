package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}

	stored := filepath.Join(dir, "input.css")
	if err := os.WriteFile(stored, []byte("a { inset: 0; }"), 0644); err != nil {
		t.Fatal(err)
	}
	copied := filepath.Join(dir, "copied.css")
	if err := os.WriteFile(copied, []byte("before"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("input.css", stored)
	r.Store("input.css", stored) // same path again is fine
	r.Store("missing.log", filepath.Join(dir, "missing.log"))
	if err := r.StoreCopy("copied.css", copied); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	if err := os.WriteFile(copied, []byte("after"), 0644); err != nil {
		t.Fatal(err)
	}
	r.StoreData("result.css", []byte("a { top: 0; }"))
	r.StoreData("result.css", []byte("second"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, conf.Destination)
	if files["input.css"] != "a { inset: 0; }" {
		t.Errorf("input.css = %q", files["input.css"])
	}
	if files["copied.css"] != "before" {
		t.Errorf("copied.css = %q, copy must not follow later changes", files["copied.css"])
	}
	if files["result.css"] != "a { top: 0; }" {
		t.Errorf("result.css = %q", files["result.css"])
	}
	if _, ok := files["missing.log"]; ok {
		t.Error("missing file must not be archived")
	}

	var versioned int
	for name, data := range files {
		if strings.HasPrefix(name, "result.css-") && data == "second" {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("expected versioned duplicate entry, got files %v", files)
	}
	if !strings.Contains(files["MANIFEST"], "input.css") {
		t.Errorf("MANIFEST does not mention stored file:\n%s", files["MANIFEST"])
	}
}

func TestReport_StoreConflict(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("final.log", "a.log")

	defer func() {
		if recover() == nil {
			t.Error("Store() with different path should panic")
		}
	}()
	r.Store("final.log", "b.log")
}

func TestReport_StoreCopyDirectory(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.StoreCopy("dir", t.TempDir()); err == nil {
		t.Error("StoreCopy() of directory should fail")
	}
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name on nil report = %q", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
