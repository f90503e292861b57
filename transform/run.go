package transform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"logicss/common"
	"logicss/state"
)

// stdinName is used for output naming and reporting when stylesheet comes
// from standard input.
const stdinName = "stdin.css"

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("transform")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	// command line overrides configuration
	if cmd.IsSet("dir") {
		dir, err := common.ParseDirection(cmd.String("dir"))
		if err != nil {
			return fmt.Errorf("unable to use requested text direction: %w", err)
		}
		env.Cfg.Transform.Direction = dir
	}
	if cmd.IsSet("preserve") {
		env.Cfg.Transform.Preserve = cmd.Bool("preserve")
	}
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	if cp := cmd.String("charset"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		}
	}

	log.Info("Processing starting",
		zap.String("source", src), zap.String("destination", dst),
		zap.Stringer("dir", env.Cfg.Transform.Direction), zap.Bool("preserve", env.Cfg.Transform.Preserve),
		zap.String("charset", charsetName(env)))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	in, out := cmd.Root().Reader, cmd.Root().Writer
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return process(ctx, src, dst, in, out, log)
}

// process handles the core logic independently of CLI framework. Source is
// either "-" for standard input, single stylesheet or directory. Without
// destination result of single stylesheet goes to out.
func process(ctx context.Context, src, dst string, in io.Reader, out io.Writer, log *zap.Logger) error {
	if src == "-" {
		return processStream(ctx, in, stdinName, dst, out, log)
	}

	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	switch {
	case fi.IsDir():
		if len(dst) == 0 {
			return fmt.Errorf("destination directory is required to process directory (%s)", src)
		}
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
		return processDir(ctx, src, dst, log)
	case fi.Mode().IsRegular():
		f, err := os.Open(src)
		if err != nil {
			return err
		}
		defer f.Close()
		return processStream(ctx, f, filepath.Base(src), dst, out, log)
	default:
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
}

// processStream rewrites single stylesheet. Destination may be file name,
// existing directory or empty to use out.
func processStream(ctx context.Context, r io.Reader, name, dst string, out io.Writer, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	result, err := rewrite(r, name, env, log)
	if err != nil {
		return err
	}

	if len(dst) == 0 {
		if _, err := io.Copy(out, bytes.NewReader(result)); err != nil {
			return fmt.Errorf("unable to write result: %w", err)
		}
		return nil
	}

	target := dst
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		target = buildOutputPath(name, dst, env)
	}
	return writeResult(target, result, env, log)
}

// processDir finds stylesheets with configured extensions in directory tree
// and rewrites them in natural order. Failure to process one file does not
// stop processing, all failures are returned together.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	files, err := collectFiles(ctx, dir, dst, env.Cfg.Transform.Extensions, log)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
		return nil
	}

	var errs error
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		if err := processFile(ctx, dir, rel, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", rel), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", rel, err))
		}
	}
	if n := len(multierr.Errors(errs)); n > 0 {
		log.Warn("Some files were not processed", zap.Int("failed", n), zap.Int("total", len(files)))
	}
	return errs
}

// collectFiles returns paths relative to dir. Files under destination are
// skipped when it is located inside of the source tree.
func collectFiles(ctx context.Context, dir, dst string, exts []string, log *zap.Logger) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			if path != dir && path == dst {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !slices.ContainsFunc(exts, func(ext string) bool {
			return strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext))
		}) {
			log.Debug("Skipping file, not a stylesheet", zap.String("file", path))
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Sort(natural.StringSlice(files))
	return files, nil
}

func processFile(ctx context.Context, dir, rel, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var target string
	log.Info("Rewriting starting", zap.String("from", rel))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Rewriting ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("rewriting panic: %v", r)
		} else if rerr == nil {
			log.Info("Rewriting completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", target))
		}
	}(time.Now())

	f, err := os.Open(filepath.Join(dir, rel))
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := rewrite(f, filepath.ToSlash(rel), env, log)
	if err != nil {
		return err
	}
	target = buildOutputPath(rel, dst, env)
	return writeResult(target, result, env, log)
}

// writeResult writes data to file creating directories as necessary.
// Existing file is only replaced when overwrite was requested.
func writeResult(target string, data []byte, env *state.LocalEnv, log *zap.Logger) error {
	if _, err := os.Stat(target); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", target)
		}
		log.Warn("Overwriting existing file", zap.String("file", target))
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	return nil
}
