package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/mgomes/goofscript/goof"
)

const (
	severityError   = 1
	severityWarning = 2

	completionKindVariable = 6
	completionKindKeyword  = 14
)

var keywordDocs = map[string]string{
	"write":   "Prints a value followed by a newline.",
	"read":    "Reads one line of input as text.",
	"run":     "Runs `at` one line or `from` one line `to` another, then continues.",
	"from":    "Starts the line range of a run statement.",
	"to":      "Ends the line range of a run statement.",
	"at":      "Names the single line a run statement executes.",
	"end":     "Stops the program.",
	"if":      "Runs the statement before it only when the condition is yes.",
	"be":      "Assigns a value to a name.",
	"yes":     "The true choice.",
	"no":      "The false choice.",
	"open":    "Opens a group.",
	"close":   "Closes a group.",
	"dot":     "Joins the digits of a decimal number.",
	"neg":     "Negates a number.",
	"num":     "Converts a value to a number. yes is 0, no is 1.",
	"text":    "Converts a value to text.",
	"choice":  "Converts a value to yes or no.",
	"pow":     "Raises a number to a power.",
	"times":   "Multiplies numbers.",
	"over":    "Divides numbers. Whole numbers divide without remainder.",
	"mod":     "Remainder of a division.",
	"plus":    "Adds numbers or joins text.",
	"minus":   "Subtracts numbers.",
	"below":   "Less than.",
	"above":   "Greater than.",
	"atmost":  "Less than or equal.",
	"atleast": "Greater than or equal.",
	"is":      "Equality. Never fails.",
	"isnt":    "Inequality. Never fails.",
	"not":     "Negates a choice.",
	"and":     "Both choices are yes.",
	"or":      "Either choice is yes.",
	"com":     "Starts a comment that runs to the end of the line.",
}

// lspServer keeps the open documents in memory and answers over stdio.
type lspServer struct {
	in     *bufio.Reader
	out    *bufio.Writer
	engine *goof.Engine
	open   map[string]string
}

func newLSPServer(in io.Reader, out io.Writer) *lspServer {
	return &lspServer{
		in:     bufio.NewReader(in),
		out:    bufio.NewWriter(out),
		engine: goof.NewEngine(goof.Config{}),
		open:   make(map[string]string),
	}
}

func runLSP() error {
	return newLSPServer(os.Stdin, os.Stdout).serve()
}

func (s *lspServer) serve() error {
	for {
		body, err := readFrame(s.in)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		var req lspRequest
		if json.Unmarshal(body, &req) != nil {
			continue
		}
		if msg := s.dispatch(req); msg != nil {
			if err := writeFrame(s.out, msg); err != nil {
				return err
			}
		}
		if req.Method == "exit" {
			return nil
		}
	}
}

type lspHandler func(*lspServer, lspRequest) any

var lspHandlers = map[string]lspHandler{
	"initialize":              (*lspServer).initialize,
	"shutdown":                (*lspServer).shutdown,
	"textDocument/didOpen":    (*lspServer).didOpen,
	"textDocument/didChange":  (*lspServer).didChange,
	"textDocument/didClose":   (*lspServer).didClose,
	"textDocument/completion": (*lspServer).completion,
	"textDocument/hover":      (*lspServer).hover,
}

// dispatch returns the message to send back, or nil when there is none.
// Unknown notifications are dropped; unknown requests get an error.
func (s *lspServer) dispatch(req lspRequest) any {
	handle, ok := lspHandlers[req.Method]
	switch {
	case ok:
		return handle(s, req)
	case req.isNotification():
		return nil
	default:
		return replyError(req, codeMethodNotFound, "method not found")
	}
}

func (s *lspServer) initialize(req lspRequest) any {
	var result lspInitializeResult
	result.Capabilities.TextDocumentSync = 1
	result.Capabilities.HoverProvider = true
	return reply(req, result)
}

func (s *lspServer) shutdown(req lspRequest) any {
	if req.isNotification() {
		return nil
	}
	return reply(req, nil)
}

func (s *lspServer) didOpen(req lspRequest) any {
	var params lspDocumentParams
	if json.Unmarshal(req.Params, &params) != nil {
		return nil
	}
	return s.store(params.TextDocument.URI, params.TextDocument.Text)
}

func (s *lspServer) didChange(req lspRequest) any {
	var params lspDidChangeParams
	if json.Unmarshal(req.Params, &params) != nil || len(params.ContentChanges) == 0 {
		return nil
	}
	full := params.ContentChanges[len(params.ContentChanges)-1].Text
	return s.store(params.TextDocument.URI, full)
}

func (s *lspServer) didClose(req lspRequest) any {
	var params lspDocumentParams
	if json.Unmarshal(req.Params, &params) == nil {
		delete(s.open, params.TextDocument.URI)
	}
	return nil
}

// store records the document text and produces its diagnostics.
func (s *lspServer) store(uri, text string) lspNotification {
	s.open[uri] = text
	return lspNotification{
		JSONRPC: "2.0",
		Method:  "textDocument/publishDiagnostics",
		Params: lspPublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: diagnosticsForSource(s.engine, text),
		},
	}
}

func (s *lspServer) completion(req lspRequest) any {
	if req.isNotification() {
		return nil
	}
	var params lspPositionParams
	_ = json.Unmarshal(req.Params, &params)
	return reply(req, lspCompletionList{Items: completionItems(s.open[params.TextDocument.URI])})
}

func (s *lspServer) hover(req lspRequest) any {
	if req.isNotification() {
		return nil
	}
	var params lspPositionParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return replyError(req, codeInvalidParams, "invalid hover params")
	}
	text := s.open[params.TextDocument.URI]
	word := wordAtPosition(text, params.Position.Line, params.Position.Character)
	if word == "" {
		return reply(req, nil)
	}
	return reply(req, lspHover{Contents: lspMarkupContent{Kind: "markdown", Value: hoverText(word, text)}})
}

// diagnosticsForSource reports the syntax error if there is one, otherwise
// the analyzer warnings.
func diagnosticsForSource(engine *goof.Engine, source string) []lspDiagnostic {
	program, err := engine.Compile(source)
	if err == nil {
		warnings := analyzeProgramWarnings(program.Statements())
		diags := make([]lspDiagnostic, len(warnings))
		for i, w := range warnings {
			diags[i] = diagnosticAt(w.Pos, severityWarning, w.Message)
		}
		return diags
	}
	pos, message, ok := goof.Diagnostic(err)
	if !ok {
		return []lspDiagnostic{diagnosticAt(goof.Position{}, severityError, err.Error())}
	}
	return []lspDiagnostic{diagnosticAt(pos, severityError, message)}
}

// diagnosticAt converts a one-based source position into a single character
// range.
func diagnosticAt(pos goof.Position, severity int, message string) lspDiagnostic {
	start := lspPosition{Line: max(pos.Line-1, 0), Character: max(pos.Column-1, 0)}
	end := start
	end.Character++
	return lspDiagnostic{
		Range:    lspRange{Start: start, End: end},
		Severity: severity,
		Source:   "goofkit-lsp",
		Message:  message,
	}
}

// completionItems offers every keyword plus the names assigned in source.
func completionItems(source string) []lspCompletionItem {
	labels := slices.Concat(goof.Keywords(), goof.AssignedNames(source))
	slices.Sort(labels)

	items := make([]lspCompletionItem, len(labels))
	for i, label := range labels {
		items[i] = lspCompletionItem{Label: label, Kind: completionKindVariable, Detail: "variable"}
		if _, ok := keywordDocs[label]; ok {
			items[i].Kind, items[i].Detail = completionKindKeyword, "keyword"
		}
	}
	return items
}

func hoverText(word, source string) string {
	kind := "symbol"
	switch doc, isKeyword := keywordDocs[word]; {
	case isKeyword:
		kind = "keyword. " + doc
	case slices.Contains(goof.AssignedNames(source), word):
		kind = "variable"
	}
	return "`" + word + "`\n\ngoofscript " + kind
}

// wordAtPosition returns the identifier touching the zero-based cursor. A
// cursor just past the end of a word still selects it.
func wordAtPosition(source string, line, character int) string {
	rows := strings.Split(source, "\n")
	if line < 0 || line >= len(rows) {
		return ""
	}
	row := strings.TrimSuffix(rows[line], "\r")
	at := min(max(character, 0), len(row))

	start, end := at, at
	for start > 0 && isWordByte(row[start-1]) {
		start--
	}
	for end < len(row) && isWordByte(row[end]) {
		end++
	}
	return row[start:end]
}

// isWordByte matches identifier characters, which are ASCII letters only.
func isWordByte(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
