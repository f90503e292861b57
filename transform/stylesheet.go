package transform

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	xtransform "golang.org/x/text/transform"

	"logicss/css"
	"logicss/logical"
	"logicss/state"
)

var (
	utf8BOM      = []byte("\xef\xbb\xbf")
	charsetStart = []byte(`@charset "`)
)

// decode converts stylesheet into UTF-8. Explicitly requested code page wins,
// then byte order mark, then label of leading @charset rule. Stale is true
// when @charset rule (if any) no longer describes returned data.
func decode(raw []byte, env *state.LocalEnv, log *zap.Logger) (data []byte, stale bool, err error) {
	if env.CodePage != nil {
		data, err = env.CodePage.NewDecoder().Bytes(raw)
		return data, true, err
	}

	hasBOM := bytes.HasPrefix(raw, utf8BOM) || bytes.HasPrefix(raw, []byte{0xfe, 0xff}) || bytes.HasPrefix(raw, []byte{0xff, 0xfe})
	if !hasBOM {
		if label := charsetLabel(raw); len(label) > 0 {
			enc, name := charset.Lookup(label)
			switch {
			case enc == nil:
				log.Warn("Unknown @charset label, assuming UTF-8", zap.String("label", label))
			case name != "utf-8" && !strings.HasPrefix(name, "utf-16"):
				// utf-16 labels cannot be right for ASCII compatible rule and are ignored
				log.Debug("Decoding stylesheet using @charset", zap.String("charset", name))
				data, err = enc.NewDecoder().Bytes(raw)
				return data, true, err
			}
		}
	}

	data, _, err = xtransform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	// BOM of UTF-8 stream passes through decoder
	return bytes.TrimPrefix(data, utf8BOM), hasBOM && !bytes.HasPrefix(raw, utf8BOM), err
}

// charsetLabel returns encoding label when data starts with @charset rule
// written exactly as CSS requires for detection.
func charsetLabel(raw []byte) string {
	rest, ok := bytes.CutPrefix(raw, charsetStart)
	if !ok {
		return ""
	}
	label, _, ok := bytes.Cut(rest, []byte(`";`))
	if !ok || len(label) > 64 {
		return ""
	}
	return string(label)
}

// rewrite reads single stylesheet, replaces logical properties and returns
// resulting CSS text. Name is used for logging and debug report only.
func rewrite(r io.Reader, name string, env *state.LocalEnv, log *zap.Logger) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read stylesheet (%s): %w", name, err)
	}
	data, stale, err := decode(raw, env, log)
	if err != nil {
		return nil, fmt.Errorf("unable to decode stylesheet (%s): %w", name, err)
	}

	sheet := css.NewParser(log).Parse(data, name)
	for _, w := range sheet.Warnings {
		log.Warn("Stylesheet problem", zap.String("file", name), zap.String("warning", w))
	}
	if stale {
		dropCharset(sheet, log)
	}

	env.Rpt.StoreData("source/"+name, data)
	env.Rpt.StoreData("dump/"+name+".before.txt", []byte(sheet.Dump()))

	st := logical.New(env.RewriteOptions(), log).Process(sheet)

	result := []byte(sheet.String())
	env.Rpt.StoreData("dump/"+name+".after.txt", []byte(sheet.Dump()))
	env.Rpt.StoreData("result/"+name, result)

	log.Debug("Stylesheet rewritten", zap.String("file", name),
		zap.Int("declarations", st.Visited), zap.Int("rewritten", st.Rewritten),
		zap.Int("rules", st.RulesAdded), zap.Int("removed", st.ParentsRemoved))
	return result, nil
}

// dropCharset removes @charset rule since output is always UTF-8 after
// decoding.
func dropCharset(sheet *css.Stylesheet, log *zap.Logger) {
	for _, n := range sheet.Nodes() {
		at, ok := n.(*css.AtRule)
		if !ok || !strings.EqualFold(at.Name, "charset") {
			continue
		}
		sheet.Remove(at)
		log.Debug("Removing charset rule of re-encoded stylesheet", zap.String("charset", at.Params))
		return
	}
}

// charsetName returns canonical IANA name of the encoding for logging.
func charsetName(env *state.LocalEnv) string {
	if env.CodePage == nil {
		return "UTF-8"
	}
	if n, err := ianaindex.IANA.Name(env.CodePage); err == nil {
		return n
	}
	return "unknown"
}
