package events

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации события
	ErrEncode = errors.New("events: failed to encode event")

	// ErrPublish возвращается при ошибке публикации в Redis
	ErrPublish = errors.New("events: failed to publish event")
)
