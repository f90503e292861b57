package css

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into node tree.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// maxStalledErrors limits how many errors in a row parser may report before
// we give up on the rest of the stylesheet.
const maxStalledErrors = 64

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Warnings: make([]string, 0),
	}

	log := p.log
	if len(source) > 0 && source[0] != "" {
		log = log.With(zap.String("source", source[0]))
		log.Debug("Parsing CSS", zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	var (
		// stack of open blocks, sheet is always at the bottom
		stack     = []Parent{sheet}
		selectors []string
		stalled   int
	)
	top := func() Parent { return stack[len(stack)-1] }
	pop := func() {
		if len(stack) > 1 {
			stack = stack[:len(stack)-1]
		}
	}

	for {
		gt, _, data := parser.Next()
		if gt != css.ErrorGrammar {
			stalled = 0
		}

		switch gt {
		case css.ErrorGrammar:
			err := parser.Err()
			if err == nil || errors.Is(err, io.EOF) {
				if len(stack) > 1 {
					sheet.Warnings = append(sheet.Warnings, "unexpected end of stylesheet, unclosed block")
				}
				return sheet
			}
			if stalled++; stalled > maxStalledErrors {
				sheet.Warnings = append(sheet.Warnings, "parsing stopped: "+err.Error())
				log.Debug("CSS parser does not advance, giving up", zap.Error(err))
				return sheet
			}
			sheet.Warnings = append(sheet.Warnings, err.Error())
			log.Debug("CSS parse error", zap.Error(err))

		case css.CommentGrammar:
			top().Append(&Comment{Text: string(data)})

		case css.AtRuleGrammar:
			// @-rule without block (e.g., @import, @charset)
			at := &AtRule{Name: atRuleName(data), Params: joinTokens(parser.Values())}
			top().Append(at)

		case css.BeginAtRuleGrammar:
			at := &AtRule{Name: atRuleName(data), Params: joinTokens(parser.Values()), HasBlock: true}
			top().Append(at)
			stack = append(stack, at)

		case css.EndAtRuleGrammar:
			pop()

		case css.QualifiedRuleGrammar:
			// one part of comma separated selector list, the rest follows
			selectors = append(selectors, selectorList(data, parser.Values())...)

		case css.BeginRulesetGrammar:
			selectors = append(selectors, selectorList(data, parser.Values())...)
			rule := NewRule(selectors...)
			selectors = nil
			top().Append(rule)
			stack = append(stack, rule)

		case css.EndRulesetGrammar:
			pop()

		case css.DeclarationGrammar:
			value, important := declarationValue(parser.Values())
			top().Append(&Declaration{Property: string(data), Value: value, Important: important})

		case css.CustomPropertyGrammar:
			// custom properties are kept verbatim
			top().Append(&Declaration{Property: string(data), Value: strings.TrimSpace(rawTokens(parser.Values()))})

		case css.TokenGrammar:
			sheet.Warnings = append(sheet.Warnings, "unexpected token: "+string(data))
			log.Debug("Skipping stray token", zap.ByteString("token", data))
		}
	}
}

func atRuleName(data []byte) string {
	return strings.TrimPrefix(string(data), "@")
}

// selectorList splits selector tokens into separate selectors at top level
// commas. Parser drops whitespace around combinators, it is put back as
// single space on each side.
func selectorList(data []byte, values []css.Token) []string {
	tokens := values
	if len(data) > 0 {
		tokens = append([]css.Token{{TokenType: css.IdentToken, Data: data}}, values...)
	}

	var (
		out    []string
		sb     strings.Builder
		level  int
		skipWS bool
	)
	flush := func() {
		if sel := strings.TrimSpace(sb.String()); sel != "" {
			out = append(out, sel)
		}
		sb.Reset()
		skipWS = false
	}
	for _, t := range tokens {
		switch t.TokenType {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			level++
		case css.RightParenthesisToken, css.RightBracketToken:
			if level > 0 {
				level--
			}
		}

		switch {
		case level == 0 && t.TokenType == css.CommaToken:
			flush()
		case level == 0 && t.TokenType == css.DelimToken && isCombinator(t.Data):
			head := strings.TrimRight(sb.String(), " ")
			sb.Reset()
			if head != "" {
				sb.WriteString(head)
				sb.WriteByte(' ')
			}
			sb.Write(t.Data)
			sb.WriteByte(' ')
			skipWS = true
		case t.TokenType == css.WhitespaceToken:
			if cur := sb.String(); !skipWS && cur != "" && !strings.HasSuffix(cur, " ") {
				sb.WriteByte(' ')
			}
		default:
			sb.Write(t.Data)
			skipWS = false
		}
	}
	flush()
	return out
}

func isCombinator(data []byte) bool {
	return len(data) == 1 && (data[0] == '>' || data[0] == '+' || data[0] == '~')
}

// joinTokens builds value string collapsing whitespace runs into single
// space. Parser strips whitespace around commas, list items are written
// separated by ", ".
func joinTokens(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		switch {
		case t.TokenType == css.CommaToken:
			if len(parts) > 0 && parts[len(parts)-1] == " " {
				parts = parts[:len(parts)-1]
			}
			parts = append(parts, ",", " ")
		case t.TokenType != css.WhitespaceToken:
			parts = append(parts, string(t.Data))
		case len(parts) > 0 && parts[len(parts)-1] != " ":
			// Add space between non-whitespace tokens
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

func rawTokens(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	return sb.String()
}

// declarationValue converts value tokens to string and strips trailing
// "!important".
func declarationValue(tokens []css.Token) (string, bool) {
	end := len(tokens)
	skipWS := func() {
		for end > 0 && tokens[end-1].TokenType == css.WhitespaceToken {
			end--
		}
	}
	skipWS()
	if end >= 2 &&
		tokens[end-1].TokenType == css.IdentToken && strings.EqualFold(string(tokens[end-1].Data), "important") {
		i := end - 2
		for i >= 0 && tokens[i].TokenType == css.WhitespaceToken {
			i--
		}
		if i >= 0 && tokens[i].TokenType == css.DelimToken && string(tokens[i].Data) == "!" {
			end = i
			skipWS()
			return joinTokens(tokens[:end]), true
		}
	}
	return joinTokens(tokens[:end]), false
}
