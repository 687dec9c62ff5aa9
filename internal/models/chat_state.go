package models

import "time"

type ConversationStage string

const (
	// StageQuestion means the bot is waiting for an answer to Question.
	StageQuestion ConversationStage = "question"
	// StageDecision means the overview was shown and the bot is waiting
	// for the user to pick a question to edit or to submit.
	StageDecision ConversationStage = "decision"
	// StageEdit means the user picked a question on the decision screen
	// and the bot is waiting for the replacement answer.
	StageEdit ConversationStage = "edit"
	// StageRejectReason means an admin pressed "Decline" and the bot is
	// waiting for the rejection reason text.
	StageRejectReason ConversationStage = "reject_reason"
)

// ChatState is the conversation position of one user in one chat. The key
// includes the chat so an admin typing a rejection reason in the admin chat
// does not clobber their own questionnaire in the private chat.
type ChatState struct {
	UserID   int64             `gorm:"primaryKey;autoIncrement:false"`
	ChatID   int64             `gorm:"primaryKey;autoIncrement:false"`
	Stage    ConversationStage `gorm:"type:text;not null"`
	Question Question

	// PendingApplicationID is set while an admin is typing a rejection reason.
	PendingApplicationID int64

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
