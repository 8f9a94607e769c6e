package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"resona/internal/diag"
	"resona/internal/source"
)

// collector gathers rendered diagnostic lines as LSP diagnostics for one
// document. It implements diag.Handler and never cancels.
type collector struct {
	index       *source.Index
	diagnostics []protocol.Diagnostic
}

func (c *collector) Report(span source.Span, level diag.Level, code int, text string) error {
	start := c.index.Pos(span.Start)
	end := c.index.Pos(span.End)
	d := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(start.Line - 1), // LSP positions are 0-based.
				Character: uint32(start.Col),
			},
			End: protocol.Position{
				Line:      uint32(end.Line - 1),
				Character: uint32(end.Col),
			},
		},
		Severity: ptrSeverity(severity(level)),
		Source:   ptrString("resona"),
		Message:  text,
	}
	if code != 0 {
		d.Code = &protocol.IntegerOrString{Value: protocol.Integer(code)}
	}
	c.diagnostics = append(c.diagnostics, d)
	return nil
}

func severity(level diag.Level) protocol.DiagnosticSeverity {
	switch level {
	case diag.Error:
		return protocol.DiagnosticSeverityError
	case diag.Warning:
		return protocol.DiagnosticSeverityWarning
	}
	return protocol.DiagnosticSeverityInformation
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
