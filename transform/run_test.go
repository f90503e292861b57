package transform

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"logicss/common"
	"logicss/config"
	"logicss/state"
)

const (
	sampleCSS = "a { margin-inline-start: 1px; color: red; }\n"
	sampleLTR = "a {\n  margin-left: 1px;\n  color: red;\n}\n"
	sampleRTL = "a {\n  margin-right: 1px;\n  color: red;\n}\n"
)

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T, dir common.Direction) (context.Context, *state.LocalEnv) {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Transform.Direction = dir
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestProcess_Stdin(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionLtr)

	var out bytes.Buffer
	if err := process(ctx, "-", "", strings.NewReader(sampleCSS), &out, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if out.String() != sampleLTR {
		t.Errorf("got:\n%s\nwant:\n%s", out.String(), sampleLTR)
	}
}

func TestProcess_SingleFileToStdout(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionRtl)
	src := filepath.Join(t.TempDir(), "site.css")
	writeFile(t, src, sampleCSS)

	var out bytes.Buffer
	if err := process(ctx, src, "", nil, &out, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if out.String() != sampleRTL {
		t.Errorf("got:\n%s\nwant:\n%s", out.String(), sampleRTL)
	}
}

func TestProcess_SingleFileToDirectory(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionLtr)
	src := filepath.Join(t.TempDir(), "nested", "site.css")
	writeFile(t, src, sampleCSS)
	dst := t.TempDir()

	if err := process(ctx, src, dst, nil, nil, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if got := readFile(t, filepath.Join(dst, "site.css")); got != sampleLTR {
		t.Errorf("got:\n%s\nwant:\n%s", got, sampleLTR)
	}
}

func TestProcess_SingleFileOverwrite(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionLtr)
	tmp := t.TempDir()
	src := filepath.Join(tmp, "site.css")
	writeFile(t, src, sampleCSS)
	dst := filepath.Join(tmp, "out", "result.css")

	if err := process(ctx, src, dst, nil, nil, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if got := readFile(t, dst); got != sampleLTR {
		t.Errorf("got:\n%s\nwant:\n%s", got, sampleLTR)
	}

	err := process(ctx, src, dst, nil, nil, env.Log)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected existing output error, got %v", err)
	}

	env.Overwrite = true
	env.Cfg.Transform.Direction = common.DirectionRtl
	if err := process(ctx, src, dst, nil, nil, env.Log); err != nil {
		t.Fatalf("process() with overwrite error = %v", err)
	}
	if got := readFile(t, dst); got != sampleRTL {
		t.Errorf("got:\n%s\nwant:\n%s", got, sampleRTL)
	}
}

func TestProcess_Directory(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionLtr)
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "a.css"), sampleCSS)
	writeFile(t, filepath.Join(src, "sub", "b.CSS"), sampleCSS)
	writeFile(t, filepath.Join(src, "notes.txt"), "margin-inline-start")

	if err := process(ctx, src, dst, nil, nil, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	for _, name := range []string{"a.css", filepath.Join("sub", "b.CSS")} {
		if got := readFile(t, filepath.Join(dst, name)); got != sampleLTR {
			t.Errorf("%s:\n%s", name, got)
		}
	}
	if _, err := os.Stat(filepath.Join(dst, "notes.txt")); !os.IsNotExist(err) {
		t.Error("non stylesheet file must be skipped")
	}
}

func TestProcess_DirectoryNoDirs(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionRtl)
	env.NoDirs = true
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "deep", "er", "c.css"), sampleCSS)

	if err := process(ctx, src, dst, nil, nil, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if got := readFile(t, filepath.Join(dst, "c.css")); got != sampleRTL {
		t.Errorf("got:\n%s", got)
	}
}

func TestProcess_DirectoryPartialFailure(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionLtr)
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "one.css"), sampleCSS)
	writeFile(t, filepath.Join(src, "two.css"), sampleCSS)
	writeFile(t, filepath.Join(src, "three.css"), sampleCSS)
	// occupied destination for one file only
	writeFile(t, filepath.Join(dst, "two.css"), "keep me")

	err := process(ctx, src, dst, nil, nil, env.Log)
	if err == nil {
		t.Fatal("expected error for existing output")
	}
	if n := len(multierr.Errors(err)); n != 1 {
		t.Errorf("expected 1 aggregated error, got %d: %v", n, err)
	}
	if got := readFile(t, filepath.Join(dst, "two.css")); got != "keep me" {
		t.Errorf("existing file changed: %q", got)
	}
	for _, name := range []string{"one.css", "three.css"} {
		if got := readFile(t, filepath.Join(dst, name)); got != sampleLTR {
			t.Errorf("%s:\n%s", name, got)
		}
	}
}

func TestProcess_DirectoryWithoutDestination(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionLtr)
	err := process(ctx, t.TempDir(), "", nil, nil, env.Log)
	if err == nil || !strings.Contains(err.Error(), "destination directory is required") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestProcess_NonExistentPath(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionLtr)
	err := process(ctx, "/nonexistent/path/site.css", "", nil, nil, env.Log)
	if err == nil || !strings.Contains(err.Error(), "input source was not found") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestProcess_CancelledContext(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionLtr)
	cancelCtx, cancel := context.WithCancel(ctx)
	cancel()

	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.css"), sampleCSS)
	err := process(cancelCtx, src, t.TempDir(), nil, nil, env.Log)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}

func TestCollectFiles_NaturalOrder(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionLtr)
	src := t.TempDir()
	for _, name := range []string{"part10.css", "part2.css", "part1.css", "x.scss"} {
		writeFile(t, filepath.Join(src, name), "")
	}
	out := filepath.Join(src, "out")
	writeFile(t, filepath.Join(out, "part0.css"), "")

	files, err := collectFiles(ctx, src, out, []string{".css", ".SCSS"}, env.Log)
	if err != nil {
		t.Fatalf("collectFiles() error = %v", err)
	}
	want := []string{"part1.css", "part2.css", "part10.css", "x.scss"}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Errorf("got %q, want %q", files, want)
	}
}

func TestProcess_Charset(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionRtl)
	env.CodePage = charmap.Windows1251

	src := `@charset "windows-1251";` + "\n" + `a::before { content: "Привет"; float: inline-start; }`
	encoded, err := charmap.Windows1251.NewEncoder().String(src)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := process(ctx, "-", "", strings.NewReader(encoded), &out, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	want := "a::before {\n  content: \"Привет\";\n  float: right;\n}\n"
	if out.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", out.String(), want)
	}
	if charsetName(env) != "windows-1251" {
		t.Errorf("charsetName() = %q", charsetName(env))
	}
}

func TestProcess_CharsetRule(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionRtl)

	src := `@charset "windows-1251";` + "\n" + `a::before { content: "Привет"; float: inline-start; }`
	encoded, err := charmap.Windows1251.NewEncoder().String(src)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := process(ctx, "-", "", strings.NewReader(encoded), &out, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	want := "a::before {\n  content: \"Привет\";\n  float: right;\n}\n"
	if out.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      string
		wantStale bool
	}{
		{"plain", "a{}", "a{}", false},
		{"utf-8 rule", `@charset "UTF-8"; a{}`, `@charset "UTF-8"; a{}`, false},
		{"unknown rule", `@charset "no-such"; a{}`, `@charset "no-such"; a{}`, false},
		{"utf-16 rule", `@charset "utf-16le"; a{}`, `@charset "utf-16le"; a{}`, false},
		{"latin1 rule", "@charset \"iso-8859-1\"; a{content:\"\xe9\"}", `@charset "iso-8859-1"; a{content:"é"}`, true},
		{"single quotes", `@charset 'koi8-r'; a{}`, `@charset 'koi8-r'; a{}`, false},
		{"utf-8 bom", "\xef\xbb\xbfa{}", "a{}", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, env := setupTestEnv(t, common.DirectionLtr)
			got, stale, err := decode([]byte(tt.in), env, env.Log)
			if err != nil {
				t.Fatalf("decode() error = %v", err)
			}
			if string(got) != tt.want || stale != tt.wantStale {
				t.Errorf("decode() = %q, %t; want %q, %t", got, stale, tt.want, tt.wantStale)
			}
		})
	}
}

func TestProcess_UTF16WithBOM(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionLtr)
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(sampleCSS)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := process(ctx, "-", "", strings.NewReader(encoded), &out, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if out.String() != sampleLTR {
		t.Errorf("got:\n%s\nwant:\n%s", out.String(), sampleLTR)
	}
	if charsetName(env) != "UTF-8" {
		t.Errorf("charsetName() = %q", charsetName(env))
	}
}

func TestProcess_UTF8WithBOM(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionLtr)

	var out bytes.Buffer
	if err := process(ctx, "-", "", strings.NewReader("\xef\xbb\xbf"+sampleCSS), &out, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if out.String() != sampleLTR {
		t.Errorf("got:\n%q\nwant:\n%q", out.String(), sampleLTR)
	}
}

func newTestCommand(out *bytes.Buffer) *cli.Command {
	return &cli.Command{
		Name: "transform",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir"},
			&cli.BoolFlag{Name: "preserve"},
			&cli.BoolFlag{Name: "overwrite"},
			&cli.BoolFlag{Name: "nodirs"},
			&cli.StringFlag{Name: "charset"},
		},
		Action: Run,
		Writer: out,
	}
}

func TestRun_FlagsOverrideConfig(t *testing.T) {
	ctx, env := setupTestEnv(t, common.DirectionLtr)
	src := filepath.Join(t.TempDir(), "site.css")
	writeFile(t, src, sampleCSS)

	var out bytes.Buffer
	if err := newTestCommand(&out).Run(ctx, []string{"transform", "--dir", "rtl", "--preserve", src}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := "a {\n  margin-right: 1px;\n  margin-inline-start: 1px;\n  color: red;\n}\n"
	if out.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", out.String(), want)
	}
	if env.Cfg.Transform.Direction != common.DirectionRtl || !env.Cfg.Transform.Preserve {
		t.Errorf("flags were not applied: %+v", env.Cfg.Transform)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no source", []string{"transform"}, "no input source"},
		{"bad direction", []string{"transform", "--dir", "up", "-"}, "text direction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestEnv(t, common.DirectionUnset)
			var out bytes.Buffer
			err := newTestCommand(&out).Run(ctx, tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
