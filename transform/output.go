package transform

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"logicss/config"
	"logicss/state"
)

// buildOutputPath returns output file name for src, which is path of the
// source relative to processed root (or just base name for single file),
// under dst directory. Source directory structure is kept unless NoDirs is
// requested. Output name template may add its own subdirectories, every
// segment is cleaned and, if requested, transliterated. Extension of the
// source is always kept.
func buildOutputPath(src, dst string, env *state.LocalEnv) string {
	outDir := dst
	if !env.NoDirs {
		outDir = filepath.Join(dst, filepath.Dir(src))
	}
	ext := filepath.Ext(src)

	name := strings.TrimSuffix(filepath.Base(src), ext)
	if tmpl := env.Cfg.Transform.OutputNameTemplate; tmpl != "" {
		values := newValues(config.OutputNameTemplateFieldName, src, env.Cfg.Transform.Direction)
		expanded, err := expandTemplate(config.OutputNameTemplateFieldName, tmpl, values)
		switch {
		case err != nil:
			env.Log.Warn("Unable to prepare output file name, using default", zap.Error(err))
		case strings.TrimSpace(expanded) == "":
			env.Log.Warn("Output file name template expanded to nothing, using default", zap.String("template", tmpl))
		default:
			name = filepath.FromSlash(expanded)
		}
	}

	parts := []string{outDir}
	segments := splitPath(name)
	for i, s := range segments {
		s = cleanPathSegment(s, env)
		if i == len(segments)-1 {
			s += ext
		}
		parts = append(parts, s)
	}
	return filepath.Join(parts...)
}

// splitPath returns non empty path segments, leading separators and
// references to parent directories are dropped so result never escapes
// output directory.
func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(filepath.ToSlash(path), "/") {
		if s == "" || s == "." || s == ".." {
			continue
		}
		segments = append(segments, s)
	}
	if len(segments) == 0 {
		return []string{""}
	}
	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Transform.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
