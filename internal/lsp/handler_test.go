package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// A misbehaving client may send didChange for a document it never opened.
// The handler must drop the notification instead of checking with a nil
// checker.
func TestDidChangeUnopenedDocument(t *testing.T) {
	h := NewHandler()
	params := &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{
				URI: "file:///never-opened.rsn",
			},
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "(osc 440)"},
		},
	}

	assert.NotPanics(t, func() {
		err := h.TextDocumentDidChange(&glsp.Context{}, params)
		assert.NoError(t, err)
	})
	assert.Empty(t, h.content)
	assert.Empty(t, h.checkers)
}

func TestDidCloseForgetsDocument(t *testing.T) {
	h := NewHandler()
	uri := protocol.DocumentUri("file:///open.rsn")
	h.content[uri] = "(mix)"
	h.checkers[uri] = nil

	err := h.TextDocumentDidClose(&glsp.Context{}, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	assert.NoError(t, err)
	assert.Empty(t, h.content)
	assert.Empty(t, h.checkers)
}
