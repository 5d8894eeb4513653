package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/tailtrust/clinic/engine"
	"github.com/m3rciful/tailtrust/core/telegram/helpers"
	"github.com/m3rciful/tailtrust/core/telegram/keyboard"
)

func chatID(c tele.Context) int64 {
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	return 0
}

// reply renders an engine reply: options become a single-column
// keyboard, terminal replies drop the previous keyboard.
func (a *App) reply(c tele.Context, r engine.Reply) error {
	if len(r.Options) > 0 {
		return helpers.SendKeyboard(c, r.Text, keyboard.SingleColumn(r.Options))
	}
	if r.ClearKeyboard {
		return helpers.SendKeyboard(c, r.Text, keyboard.RemoveKeyboard())
	}
	return helpers.SendText(c, r.Text)
}

func (a *App) handleStart(c tele.Context) error {
	helpers.WithHandler(c, "start")
	return a.reply(c, a.engine.Welcome())
}

func (a *App) handleHelp(c tele.Context) error {
	ctx := helpers.WithHandler(c, "help")
	r, err := a.engine.Help(ctx, chatID(c))
	if err != nil {
		return err
	}
	return a.reply(c, r)
}

func (a *App) handleRegister(c tele.Context) error {
	ctx := helpers.WithHandler(c, "register")
	r, err := a.engine.StartRegistration(ctx, chatID(c))
	if err != nil {
		return err
	}
	return a.reply(c, r)
}

func (a *App) handleReset(c tele.Context) error {
	ctx := helpers.WithHandler(c, "reset")
	r, err := a.engine.Reset(ctx, chatID(c))
	if err != nil {
		return err
	}
	return a.reply(c, r)
}

func (a *App) handleProfile(c tele.Context) error {
	ctx := helpers.WithHandler(c, "profile")
	r, err := a.engine.Profile(ctx, chatID(c))
	if err != nil {
		return err
	}
	return a.reply(c, r)
}

func (a *App) handleAppointment(c tele.Context) error {
	ctx := helpers.WithHandler(c, "appointment")
	r, err := a.engine.StartBooking(ctx, chatID(c))
	if err != nil {
		return err
	}
	return a.reply(c, r)
}

func (a *App) handleApplist(c tele.Context) error {
	ctx := helpers.WithHandler(c, "applist")
	r, err := a.engine.Appointments(ctx, chatID(c))
	if err != nil {
		return err
	}
	return a.reply(c, r)
}

// handleText is the free-text continuation of the active flow.
func (a *App) handleText(c tele.Context) error {
	ctx := helpers.WithHandler(c, "continue")
	r, err := a.engine.Continue(ctx, chatID(c), c.Text())
	if err != nil {
		return err
	}
	return a.reply(c, r)
}
