package usecases

import "context"

// HTMLRenderer turns a raw message body into sanitized HTML.
type HTMLRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type CreateMessageExecutor interface {
	Execute(ctx context.Context, cmd CreateMessageCommand) (*MessageView, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, query ListMessagesQuery) ([]MessageView, error)
}
