package transfer

import (
	"io"
	"os"

	clipErrors "clipboard/internal/errors"
)

// Read returns the full contents of the request's source
func (t *Transferer) Read(src Endpoint) ([]byte, error) {
	if src.IsClipboard() {
		return t.readClipboard()
	}
	return t.readFile(src.Path)
}

func (t *Transferer) readClipboard() ([]byte, error) {
	if !t.clip.HasText() {
		return nil, clipErrors.WrapSourceError(nil, clipErrors.MsgClipboardNoText, "")
	}
	data, err := t.clip.ReadText()
	if err != nil {
		return nil, clipErrors.WrapSourceError(err, clipErrors.MsgClipboardNoText, "")
	}
	return data, nil
}

// readFile copies the file byte for byte, with no newline or encoding translation
func (t *Transferer) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, clipErrors.WrapSourceError(err, clipErrors.MsgFileNotOpened, path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, clipErrors.WrapSourceError(err, clipErrors.MsgFileNotRead, path)
	}
	return data, nil
}
