package transfer

import (
	"clipboard/internal/validation"
)

// Kind identifies what an endpoint of a transfer is
type Kind int

const (
	KindClipboard Kind = iota
	KindFile
)

// Endpoint is the source or destination of a transfer
type Endpoint struct {
	Kind Kind
	Path string
}

// String returns the file path, or "clipboard"
func (e Endpoint) String() string {
	if e.Kind == KindFile {
		return e.Path
	}
	return "clipboard"
}

// IsClipboard reports whether the endpoint is the system clipboard
func (e Endpoint) IsClipboard() bool {
	return e.Kind == KindClipboard
}

func endpointFor(path string) Endpoint {
	if path == "" {
		return Endpoint{Kind: KindClipboard}
	}
	return Endpoint{Kind: KindFile, Path: path}
}

// Request describes a single transfer. An empty path selects the clipboard.
type Request struct {
	Source Endpoint
	Dest   Endpoint
}

// NewRequest builds a transfer request from the --input and --output values
func NewRequest(input, output string) (Request, error) {
	if err := validation.ValidateEndpoints(input, output); err != nil {
		return Request{}, err
	}
	return Request{
		Source: endpointFor(input),
		Dest:   endpointFor(output),
	}, nil
}
