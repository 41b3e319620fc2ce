package transfer

import (
	"fmt"
	"os"

	"clipboard/internal/config"
	clipErrors "clipboard/internal/errors"
)

// Confirmation messages
const (
	MsgCopiedToClipboard = "File copied to clipboard"
)

// Write delivers payload to the request destination and returns the confirmation message.
// An empty message with a nil error means the write was skipped.
func (t *Transferer) Write(req Request, payload []byte) (string, error) {
	if req.Dest.IsClipboard() {
		return t.writeClipboard(payload)
	}
	return t.writeFile(req, payload)
}

func (t *Transferer) writeClipboard(payload []byte) (string, error) {
	if err := t.clip.WriteText(payload); err != nil {
		// Fatal only in strict mode; the default keeps exit code 0.
		return "", clipErrors.WrapSinkError(err, clipErrors.MsgClipboardNotSet, "", t.strict)
	}
	return MsgCopiedToClipboard, nil
}

func (t *Transferer) writeFile(req Request, payload []byte) (string, error) {
	path := req.Dest.Path
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, config.OutputFileMode)
	if err != nil {
		if t.strict {
			return "", clipErrors.WrapSinkError(err, clipErrors.MsgFileNotWritten, path, true)
		}
		t.logger.Debug("Output file could not be opened, skipping write.", "path", path, "error", err)
		return "", nil
	}

	_, werr := f.Write(payload)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		return "", clipErrors.WrapSinkError(werr, clipErrors.MsgFileNotWritten, path, true)
	}

	if req.Source.IsClipboard() {
		return fmt.Sprintf("Clipboard copied to %s", path), nil
	}
	return fmt.Sprintf("File copied to %s", path), nil
}
