package domain

import (
	"encoding/json"
	"time"
)

// ContactSubmission es el mensaje del formulario de contacto. No se
// persiste del lado del sitio: se envia una vez y se descarta.
type ContactSubmission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice es una notificacion transitoria que la pagina descarta sola.
type Notice struct {
	Kind         NoticeKind    `json:"kind"`
	Message      string        `json:"message"`
	DismissAfter time.Duration `json:"-"`
}

// DismissAfterMillis expone el retardo en el formato que usa el template.
func (n Notice) DismissAfterMillis() int64 {
	return n.DismissAfter.Milliseconds()
}

type noticeJSON struct {
	Kind           NoticeKind `json:"kind"`
	Message        string     `json:"message"`
	DismissAfterMS int64      `json:"dismiss_after_ms"`
}

// MarshalJSON serializa el retardo en milisegundos, igual que el template.
func (n Notice) MarshalJSON() ([]byte, error) {
	return json.Marshal(noticeJSON{Kind: n.Kind, Message: n.Message, DismissAfterMS: n.DismissAfterMillis()})
}

func (n *Notice) UnmarshalJSON(data []byte) error {
	var raw noticeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = Notice{Kind: raw.Kind, Message: raw.Message, DismissAfter: time.Duration(raw.DismissAfterMS) * time.Millisecond}
	return nil
}
