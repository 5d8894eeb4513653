package router

import (
	"strings"
	"time"

	tg "github.com/m3rciful/tailtrust/core/telegram"
	"github.com/m3rciful/tailtrust/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// TextOptions controls fallback behaviour for text updates.
type TextOptions struct {
	UnknownText tele.HandlerFunc
}

// TextRoutes builds the handler for free-text routing. Commands typed as
// plain text are resolved through the registry first; everything else goes
// to the registry's text fallback (the conversation continuation).
func TextRoutes(reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if reg != nil {
			// Only slash-prefixed text can address a command; plain words
			// always belong to the active conversation.
			if strings.HasPrefix(text, "/") {
				if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
					name := normalizeHandlerName(key)
					return handleWithSummary(c, name, start, func() error {
						return cmd.Handler(c)
					})
				}
			}

			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "continuation", start, func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", nil)
		return nil
	}

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
		},
	}
}
