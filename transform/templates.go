package transform

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"logicss/common"
	"logicss/config"
)

// Values is a struct that holds variables we make available for output name
// template expansion.
type Values struct {
	Context   string
	Name      string // source file name without extension
	Ext       string // source file extension including dot
	Dir       string // source directory relative to processed root, slash separated
	Direction string // unset, ltr or rtl
}

func newValues(name config.TemplateFieldName, src string, dir common.Direction) Values {
	base := filepath.Base(src)
	ext := filepath.Ext(base)
	rel := filepath.ToSlash(filepath.Dir(src))
	if rel == "." {
		rel = ""
	}
	return Values{
		Context:   string(name),
		Name:      strings.TrimSuffix(base, ext),
		Ext:       ext,
		Dir:       rel,
		Direction: dir.String(),
	}
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", name, err)
	}
	return buf.String(), nil
}
