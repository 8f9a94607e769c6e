// Package lsp serves Resona front-end diagnostics over the Language Server
// Protocol.
package lsp

import (
	"log"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"resona/internal/check"
	"resona/internal/source"
)

// Handler implements the LSP server handlers for Resona documents. Each open
// document gets its own checker so symbol ids stay stable per document.
type Handler struct {
	mu       sync.Mutex
	content  map[protocol.DocumentUri]string
	checkers map[protocol.DocumentUri]*check.Checker
}

// NewHandler creates an LSP handler with no open documents.
func NewHandler() *Handler {
	return &Handler{
		content:  make(map[protocol.DocumentUri]string),
		checkers: make(map[protocol.DocumentUri]*check.Checker),
	}
}

// Initialize advertises the server's capabilities: full-document sync only,
// since the front end re-scans the whole buffer on every change.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen checks a newly opened document and publishes its
// diagnostics.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.mu.Lock()
	h.content[uri] = params.TextDocument.Text
	h.checkers[uri] = new(check.Checker)
	h.mu.Unlock()
	h.publish(ctx, uri)
	return nil
}

// TextDocumentDidChange applies a full-sync content change and re-checks.
// Changes for documents that were never opened are ignored.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.mu.Lock()
	if _, ok := h.checkers[uri]; !ok {
		h.mu.Unlock()
		log.Printf("change for unopened document %s ignored", uri)
		return nil
	}
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			h.content[uri] = c.Text
		case protocol.TextDocumentContentChangeEventWhole:
			h.content[uri] = c.Text
		}
	}
	h.mu.Unlock()
	h.publish(ctx, uri)
	return nil
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	delete(h.content, params.TextDocument.URI)
	delete(h.checkers, params.TextDocument.URI)
	h.mu.Unlock()
	return nil
}

// publish runs the front end over the document and sends the resulting
// diagnostics. An empty list clears earlier diagnostics on the client.
func (h *Handler) publish(ctx *glsp.Context, uri protocol.DocumentUri) {
	h.mu.Lock()
	text, ok := h.content[uri]
	checker := h.checkers[uri]
	h.mu.Unlock()
	if !ok || checker == nil {
		return
	}

	var index source.Index
	if err := index.SetText(text); err != nil {
		log.Printf("index %s: %v", uri, err)
		return
	}
	col := &collector{index: &index}
	if _, err := checker.Run([]byte(text), col); err != nil {
		log.Printf("check %s: %v", uri, err)
		return
	}

	diagnostics := col.diagnostics
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
