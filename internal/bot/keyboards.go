package bot

import (
	"strconv"

	"gopkg.in/telebot.v4"
)

const (
	callbackTake    = "application_take"
	callbackAccept  = "application_accept"
	callbackDecline = "application_decline"
)

func takeKeyboard(applicationID int64) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("Take", callbackTake, strconv.FormatInt(applicationID, 10)),
	))
	return markup
}

func decisionKeyboard(applicationID int64) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("Accept", callbackAccept, strconv.FormatInt(applicationID, 10)),
		markup.Data("Decline", callbackDecline, strconv.FormatInt(applicationID, 10)),
	))
	return markup
}

// userDecisionKeyboard is shown with the overview: 1-5 edit the matching
// question, 6 submits the application.
func userDecisionKeyboard() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text("1"), markup.Text("2"), markup.Text("3")),
		markup.Row(markup.Text("4"), markup.Text("5"), markup.Text("6")),
	)
	return markup
}

func removeKeyboard() *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{RemoveKeyboard: true}
}
