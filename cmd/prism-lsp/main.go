// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"prism/internal/lsp"
)

const lsName = "prism" // Name identifier for the language server

var handler protocol.Handler

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	prismHandler := lsp.NewPrismHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     prismHandler.Initialize,
		Initialized:                    prismHandler.Initialized,
		Shutdown:                       prismHandler.Shutdown,
		SetTrace:                       prismHandler.SetTrace,
		TextDocumentDidOpen:            prismHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           prismHandler.TextDocumentDidClose,
		TextDocumentDidChange:          prismHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: prismHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Prism LSP server...")

	// Serve over standard input/output, the transport editors expect
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Prism LSP server:", err)
		os.Exit(1)
	}
}
