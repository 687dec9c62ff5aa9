package models

import "time"

type ApplicationStatus string

const (
	ApplicationStatusInProgress ApplicationStatus = "in_progress"
	ApplicationStatusWaiting    ApplicationStatus = "waiting"
	ApplicationStatusProcessing ApplicationStatus = "processing"
	ApplicationStatusAccepted   ApplicationStatus = "accepted"
	ApplicationStatusRejected   ApplicationStatus = "rejected"
)

// Application is a single membership request. Status transitions are
// performed only through the methods below, each of which enforces its
// guard locally and never touches storage.
type Application struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"index"`
	User   *User `gorm:"constraint:OnDelete:CASCADE"`

	Status          ApplicationStatus `gorm:"type:text;not null"`
	DecisionDate    *time.Time
	RejectionReason string `gorm:"type:text"`
	InviteLink      string `gorm:"size:255"`
	AdminID         *int64

	Answers []ApplicationAnswer `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func NewApplication(userID int64) *Application {
	return &Application{
		UserID: userID,
		Status: ApplicationStatusInProgress,
	}
}

func (a *Application) Answer(q Question) (ApplicationAnswer, bool) {
	for _, ans := range a.Answers {
		if ans.QuestionNumber == q {
			return ans, true
		}
	}
	return ApplicationAnswer{}, false
}

func (a *Application) AddAnswer(q Question, text string) error {
	if _, ok := a.Answer(q); ok {
		return ErrAnswerExists
	}
	a.Answers = append(a.Answers, ApplicationAnswer{
		ApplicationID:  a.ID,
		QuestionNumber: q,
		AnswerText:     text,
	})
	return nil
}

func (a *Application) UpdateAnswer(q Question, text string) error {
	for i := range a.Answers {
		if a.Answers[i].QuestionNumber == q {
			a.Answers[i].AnswerText = text
			return nil
		}
	}
	return ErrAnswerNotFound
}

// ClearAnswers restarts the questionnaire for an unfinished application.
func (a *Application) ClearAnswers() error {
	if a.Status != ApplicationStatusInProgress {
		return ErrWrongStatus
	}
	a.Answers = nil
	return nil
}

// NextQuestion returns the lowest unanswered question, or false when the
// questionnaire is filled.
func (a *Application) NextQuestion() (Question, bool) {
	for _, q := range Questions() {
		if _, ok := a.Answer(q); !ok {
			return q, true
		}
	}
	return 0, false
}

func (a *Application) allAnswered() bool {
	if len(a.Answers) != QuestionCount {
		return false
	}
	_, missing := a.NextQuestion()
	return !missing
}

func (a *Application) Complete() error {
	if !a.allAnswered() {
		return ErrIncomplete
	}
	if a.Status != ApplicationStatusInProgress {
		return ErrWrongStatus
	}
	a.Status = ApplicationStatusWaiting
	return nil
}

func (a *Application) Take(adminID int64) error {
	if a.Status != ApplicationStatusWaiting {
		return ErrWrongStatus
	}
	a.Status = ApplicationStatusProcessing
	a.AdminID = &adminID
	return nil
}

func (a *Application) Accept(inviteLink string) error {
	if a.Status != ApplicationStatusProcessing {
		return ErrWrongStatus
	}
	a.Status = ApplicationStatusAccepted
	a.InviteLink = inviteLink
	a.AdminID = nil
	return nil
}

func (a *Application) Reject(reason string) error {
	if a.Status != ApplicationStatusProcessing {
		return ErrWrongStatus
	}
	now := time.Now().UTC()
	a.Status = ApplicationStatusRejected
	a.RejectionReason = reason
	a.DecisionDate = &now
	a.AdminID = nil
	return nil
}
