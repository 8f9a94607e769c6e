// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"resona/internal/lsp"
)

const lsName = "resona"

var (
	version = "0.0.1"
	handler protocol.Handler
)

func main() {
	// 1 = debug level, nil = default backend.
	commonlog.Configure(1, nil)

	resonaHandler := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:            resonaHandler.Initialize,
		Initialized:           resonaHandler.Initialized,
		Shutdown:              resonaHandler.Shutdown,
		SetTrace:              resonaHandler.SetTrace,
		TextDocumentDidOpen:   resonaHandler.TextDocumentDidOpen,
		TextDocumentDidChange: resonaHandler.TextDocumentDidChange,
		TextDocumentDidClose:  resonaHandler.TextDocumentDidClose,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Printf("Starting %s LSP server (version %s)...", lsName, version)
	if err := s.RunStdio(); err != nil {
		log.Println("Error running LSP server:", err)
		os.Exit(1)
	}
}
