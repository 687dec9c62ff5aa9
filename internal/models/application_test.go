package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledApplication(status ApplicationStatus) *Application {
	app := &Application{ID: 1, UserID: 1, Status: status}
	for _, q := range Questions() {
		app.Answers = append(app.Answers, ApplicationAnswer{
			ApplicationID:  app.ID,
			QuestionNumber: q,
			AnswerText:     "answer",
		})
	}
	return app
}

func TestApplicationComplete(t *testing.T) {
	t.Run("all answered in progress", func(t *testing.T) {
		app := filledApplication(ApplicationStatusInProgress)
		require.NoError(t, app.Complete())
		assert.Equal(t, ApplicationStatusWaiting, app.Status)
	})

	t.Run("missing answer", func(t *testing.T) {
		app := filledApplication(ApplicationStatusInProgress)
		app.Answers = app.Answers[:QuestionCount-1]
		assert.ErrorIs(t, app.Complete(), ErrIncomplete)
		assert.Equal(t, ApplicationStatusInProgress, app.Status)
	})

	t.Run("no answers", func(t *testing.T) {
		app := NewApplication(1)
		assert.ErrorIs(t, app.Complete(), ErrIncomplete)
	})

	t.Run("wrong status", func(t *testing.T) {
		for _, status := range []ApplicationStatus{
			ApplicationStatusWaiting,
			ApplicationStatusProcessing,
			ApplicationStatusAccepted,
			ApplicationStatusRejected,
		} {
			app := filledApplication(status)
			assert.ErrorIs(t, app.Complete(), ErrWrongStatus, "status %s", status)
		}
	})
}

func TestApplicationAnswers(t *testing.T) {
	app := NewApplication(1)

	require.NoError(t, app.AddAnswer(QuestionPubgID, "12345"))
	assert.ErrorIs(t, app.AddAnswer(QuestionPubgID, "67890"), ErrAnswerExists)

	require.NoError(t, app.UpdateAnswer(QuestionPubgID, "67890"))
	ans, ok := app.Answer(QuestionPubgID)
	require.True(t, ok)
	assert.Equal(t, "67890", ans.AnswerText)

	assert.ErrorIs(t, app.UpdateAnswer(QuestionAge, "20"), ErrAnswerNotFound)
}

func TestApplicationClearAnswers(t *testing.T) {
	app := filledApplication(ApplicationStatusInProgress)
	require.NoError(t, app.ClearAnswers())
	assert.Empty(t, app.Answers)

	app = filledApplication(ApplicationStatusWaiting)
	assert.ErrorIs(t, app.ClearAnswers(), ErrWrongStatus)
	assert.Len(t, app.Answers, QuestionCount)
}

func TestApplicationNextQuestion(t *testing.T) {
	app := NewApplication(1)

	q, ok := app.NextQuestion()
	require.True(t, ok)
	assert.Equal(t, QuestionPubgID, q)

	require.NoError(t, app.AddAnswer(QuestionPubgID, "id"))
	require.NoError(t, app.AddAnswer(QuestionGameModes, "tdm"))

	q, ok = app.NextQuestion()
	require.True(t, ok)
	assert.Equal(t, QuestionAge, q)

	app = filledApplication(ApplicationStatusInProgress)
	_, ok = app.NextQuestion()
	assert.False(t, ok)
}

func TestApplicationTake(t *testing.T) {
	app := filledApplication(ApplicationStatusWaiting)
	require.NoError(t, app.Take(99))
	assert.Equal(t, ApplicationStatusProcessing, app.Status)
	require.NotNil(t, app.AdminID)
	assert.EqualValues(t, 99, *app.AdminID)

	assert.ErrorIs(t, app.Take(100), ErrWrongStatus)
}

func TestApplicationAccept(t *testing.T) {
	app := filledApplication(ApplicationStatusWaiting)
	require.NoError(t, app.Take(99))

	require.NoError(t, app.Accept("https://t.me/+invite"))
	assert.Equal(t, ApplicationStatusAccepted, app.Status)
	assert.Equal(t, "https://t.me/+invite", app.InviteLink)
	assert.Nil(t, app.AdminID)
	assert.Nil(t, app.DecisionDate)

	assert.ErrorIs(t, app.Accept("again"), ErrWrongStatus)
}

func TestApplicationReject(t *testing.T) {
	app := filledApplication(ApplicationStatusWaiting)
	require.NoError(t, app.Take(99))

	require.NoError(t, app.Reject("no room"))
	assert.Equal(t, ApplicationStatusRejected, app.Status)
	assert.Equal(t, "no room", app.RejectionReason)
	require.NotNil(t, app.DecisionDate)
	assert.Nil(t, app.AdminID)

	assert.ErrorIs(t, app.Reject("again"), ErrWrongStatus)
}

func TestUserBanUnban(t *testing.T) {
	user := &User{ID: 1}

	require.NoError(t, user.Ban())
	assert.True(t, user.IsBanned)
	assert.ErrorIs(t, user.Ban(), ErrAlreadyBanned)

	require.NoError(t, user.Unban())
	assert.False(t, user.IsBanned)
	assert.ErrorIs(t, user.Unban(), ErrNotBanned)
}

func TestQuestionLabels(t *testing.T) {
	for _, q := range Questions() {
		assert.True(t, q.Valid())
		assert.NotEmpty(t, q.Label())
		assert.NotEmpty(t, q.Prompt())
	}
	assert.False(t, Question(0).Valid())
	assert.False(t, Question(6).Valid())
}

func TestQuestionValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		q    Question
		text string
		ok   bool
	}{
		{"pubg id digits", QuestionPubgID, "51234567", true},
		{"pubg id letters", QuestionPubgID, "not-a-number", false},
		{"pubg id mixed", QuestionPubgID, "1234x", false},
		{"pubg id empty", QuestionPubgID, "", false},
		{"age in range", QuestionAge, "20", true},
		{"age lower bound", QuestionAge, "1", true},
		{"age upper bound", QuestionAge, "100", true},
		{"age zero", QuestionAge, "0", false},
		{"age too large", QuestionAge, "999", false},
		{"age signed", QuestionAge, "+20", false},
		{"age words", QuestionAge, "twenty", false},
		{"free-form text", QuestionAbout, "anything goes, even 999", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.q.Validate(tc.text)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidAnswer)
				assert.NotEmpty(t, tc.q.ValidationHint())
			}
		})
	}
}
