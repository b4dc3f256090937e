package export

import (
	"context"
	"errors"
)

// ShareText accompanies every shared document.
const ShareText = "Segue o documento gerado."

// ErrShareUnsupported is returned when no share target is available. Its
// message is the notice shown to the user.
var ErrShareUnsupported = errors.New("O compartilhamento direto não é suportado neste navegador/dispositivo. Por favor, baixe o PDF e envie manualmente.")

// ShareRequest is what a share target receives.
type ShareRequest struct {
	FileName string
	MIMEType string
	Data     []byte
	Title    string
	Text     string
}

// Sharer hands a document to a platform share target.
type Sharer interface {
	Share(ctx context.Context, req ShareRequest) error
}

// SharerFunc adapts a function to Sharer.
type SharerFunc func(ctx context.Context, req ShareRequest) error

func (f SharerFunc) Share(ctx context.Context, req ShareRequest) error { return f(ctx, req) }

// Share offers doc to s under the template title. A nil Sharer yields
// ErrShareUnsupported; errors from s are returned as they are and are never
// fatal to the caller's session.
func Share(ctx context.Context, doc *Document, s Sharer) error {
	if s == nil {
		return ErrShareUnsupported
	}
	return s.Share(ctx, ShareRequest{
		FileName: doc.FileName(),
		MIMEType: MIMEType,
		Data:     doc.Data,
		Title:    doc.Title,
		Text:     ShareText,
	})
}
