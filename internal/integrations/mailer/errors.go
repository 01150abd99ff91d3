package mailer

import "errors"

var (
	// ErrUnknownKind возвращается для неизвестного типа письма
	ErrUnknownKind = errors.New("mailer: unknown message kind")

	// ErrRender возвращается при ошибке рендеринга шаблона
	ErrRender = errors.New("mailer: failed to render template")

	// ErrSend возвращается при ошибке отправки через SMTP
	ErrSend = errors.New("mailer: failed to send")
)
