// Package check runs the front-end over a source buffer: it tokenizes the
// input, interns every symbol, verifies paren balance, and reports problems
// as diagnostics.
package check

import (
	"errors"
	"math"

	"resona/internal/diag"
	"resona/internal/lexer"
	"resona/internal/source"
	"resona/internal/strbuf"
	"resona/internal/symbol"
)

// Result summarizes a run over one buffer.
type Result struct {
	Tokens      int // Tokens scanned, excluding the End token.
	Symbols     int // Distinct symbols interned so far.
	Diagnostics int // Messages reported during this run.
}

// Checker drives the front end. The zero value uses the built-in message
// catalog and an empty symbol table. The symbol table persists across runs,
// so ids stay stable over multiple buffers.
type Checker struct {
	Writer  diag.Writer
	Symbols symbol.Table
}

// Run scans the given buffer and reports diagnostics to h. It returns
// diag.Canceled if the handler canceled; rendering of the in-flight message
// still completes first.
func (c *Checker) Run(text []byte, h diag.Handler) (Result, error) {
	var res Result
	if uint64(len(text)) > uint64(math.MaxUint32) {
		err := c.write(&res, h, diag.Error, diag.CodeFileTooLong,
			strbuf.SpanParam(source.NewSpan(0, 0)),
			strbuf.U64(uint64(len(text))),
			strbuf.U64(uint64(math.MaxUint32)))
		return res, err
	}
	var open []source.Span
	tz := lexer.New(text)
	for {
		tok := tz.Next()
		if tok.Type == lexer.End {
			res.Symbols = c.Symbols.Len()
			eof := tok.Span()
			for _, span := range open {
				err := c.write(&res, h, diag.Error, diag.CodeUnclosedParen,
					strbuf.SpanParam(eof), strbuf.SpanParam(span))
				if err != nil {
					return res, err
				}
			}
			return res, nil
		}
		res.Tokens++
		switch tok.Type {
		case lexer.Error:
			err := c.write(&res, h, diag.Error, diag.CodeInvalidChar,
				strbuf.SpanParam(tok.Span()))
			if err != nil {
				return res, err
			}
		case lexer.Symbol:
			_, err := c.Symbols.Add(string(tok.Text))
			if errors.Is(err, symbol.ErrTooLong) {
				err = c.write(&res, h, diag.Error, diag.CodeSymbolTooLong,
					strbuf.SpanParam(tok.Span()),
					strbuf.U64(uint64(len(tok.Text))),
					strbuf.U64(symbol.MaxLen))
			}
			if err != nil {
				return res, err
			}
		case lexer.ParenOpen:
			open = append(open, tok.Span())
		case lexer.ParenClose:
			if len(open) == 0 {
				err := c.write(&res, h, diag.Error, diag.CodeExtraParen,
					strbuf.SpanParam(tok.Span()))
				if err != nil {
					return res, err
				}
			} else {
				open = open[:len(open)-1]
			}
		}
		res.Symbols = c.Symbols.Len()
	}
}

func (c *Checker) write(res *Result, h diag.Handler, level diag.Level, code int, params ...strbuf.Param) error {
	res.Diagnostics++
	return c.Writer.Write(h, level, code, params)
}
