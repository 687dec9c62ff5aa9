package models

import (
	"fmt"
	"strconv"
	"time"
)

type Question int

const (
	QuestionPubgID Question = iota + 1
	QuestionAge
	QuestionGameModes
	QuestionActivity
	QuestionAbout
)

const QuestionCount = 5

func (q Question) Valid() bool {
	return q >= QuestionPubgID && q <= QuestionAbout
}

func (q Question) Label() string {
	switch q {
	case QuestionPubgID:
		return "PUBG ID"
	case QuestionAge:
		return "Age"
	case QuestionGameModes:
		return "Game modes"
	case QuestionActivity:
		return "Activity"
	case QuestionAbout:
		return "About yourself"
	default:
		return ""
	}
}

// Prompt is the message sent to the user when the question is asked.
func (q Question) Prompt() string {
	switch q {
	case QuestionPubgID:
		return "Question 1/5. What is your PUBG ID?"
	case QuestionAge:
		return "Question 2/5. How old are you?"
	case QuestionGameModes:
		return "Question 3/5. Which game modes do you play?"
	case QuestionActivity:
		return "Question 4/5. How often and at what hours are you online?"
	case QuestionAbout:
		return "Question 5/5. Tell us a bit about yourself."
	default:
		return ""
	}
}

// Validate applies the question's format rules to a candidate answer.
// The free-form questions accept anything.
func (q Question) Validate(text string) error {
	switch q {
	case QuestionPubgID:
		if !isDigits(text) {
			return fmt.Errorf("pubg id %q: %w", text, ErrInvalidAnswer)
		}
	case QuestionAge:
		age, err := strconv.Atoi(text)
		if !isDigits(text) || err != nil || age < 1 || age > 100 {
			return fmt.Errorf("age %q: %w", text, ErrInvalidAnswer)
		}
	}
	return nil
}

// ValidationHint is the message re-sent to the user when Validate fails.
func (q Question) ValidationHint() string {
	switch q {
	case QuestionPubgID:
		return "The PUBG ID must consist only of digits. Try again."
	case QuestionAge:
		return "The age must be a number from 1 to 100. Try again."
	default:
		return ""
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func Questions() []Question {
	return []Question{
		QuestionPubgID,
		QuestionAge,
		QuestionGameModes,
		QuestionActivity,
		QuestionAbout,
	}
}

type ApplicationAnswer struct {
	ID             int64    `gorm:"primaryKey"`
	ApplicationID  int64    `gorm:"uniqueIndex:idx_application_question"`
	QuestionNumber Question `gorm:"uniqueIndex:idx_application_question"`
	AnswerText     string   `gorm:"type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
