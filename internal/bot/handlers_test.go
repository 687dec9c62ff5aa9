package bot

import (
	"context"
	"fmt"
	"testing"

	"github.com/clan-rush/recruitbot/internal/config"
	"github.com/clan-rush/recruitbot/internal/models"
	"github.com/clan-rush/recruitbot/internal/service"
	"github.com/clan-rush/recruitbot/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

// fakeContext overrides the telebot.Context methods the handlers touch
// and records outgoing messages. Handlers that go through uc.Bot() are
// not testable with it.
type fakeContext struct {
	telebot.Context

	chat     *telebot.Chat
	sender   *telebot.User
	text     string
	data     string
	callback *telebot.Callback

	sent []string
}

func (c *fakeContext) Update() telebot.Update                     { return telebot.Update{ID: 1} }
func (c *fakeContext) Chat() *telebot.Chat                        { return c.chat }
func (c *fakeContext) Sender() *telebot.User                      { return c.sender }
func (c *fakeContext) Text() string                               { return c.text }
func (c *fakeContext) Data() string                               { return c.data }
func (c *fakeContext) Callback() *telebot.Callback                { return c.callback }
func (c *fakeContext) Respond(...*telebot.CallbackResponse) error { return nil }

func (c *fakeContext) Send(what interface{}, _ ...interface{}) error {
	c.sent = append(c.sent, fmt.Sprint(what))
	return nil
}

func (c *fakeContext) lastSent() string {
	if len(c.sent) == 0 {
		return ""
	}
	return c.sent[len(c.sent)-1]
}

func newTestHandler(t *testing.T) (*Handler, *storagetest.Memory) {
	t.Helper()

	mem := storagetest.NewMemory()
	svc := service.New(mem, service.DefaultCooldown)
	cfg := &config.Config{AdminChatID: -100}
	return New(cfg, mem, svc), mem
}

func privateText(userID int64, text string) *fakeContext {
	return &fakeContext{
		chat:   &telebot.Chat{ID: userID, Type: telebot.ChatPrivate},
		sender: &telebot.User{ID: userID},
		text:   text,
	}
}

func stateOf(t *testing.T, mem *storagetest.Memory, userID, chatID int64) *models.ChatState {
	t.Helper()

	state, err := mem.GetChatState(context.Background(), userID, chatID)
	require.NoError(t, err)
	return state
}

func TestHandleAnswerRepromptsOnInvalidInput(t *testing.T) {
	h, mem := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, mem.CreateUser(ctx, &models.User{ID: 1}))
	_, err := h.svc.Start(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, mem.SetChatState(ctx, &models.ChatState{
		UserID:   1,
		ChatID:   1,
		Stage:    models.StageQuestion,
		Question: models.QuestionPubgID,
	}))

	fc := privateText(1, "not-a-number")
	require.NoError(t, h.handleText(NewUpdateContext(ctx, fc)))

	assert.Equal(t, models.QuestionPubgID.ValidationHint(), fc.lastSent())
	state := stateOf(t, mem, 1, 1)
	assert.Equal(t, models.StageQuestion, state.Stage)
	assert.Equal(t, models.QuestionPubgID, state.Question)

	app, err := mem.GetLastApplication(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, app.Answers)

	fc = privateText(1, "51234")
	require.NoError(t, h.handleText(NewUpdateContext(ctx, fc)))

	assert.Equal(t, models.QuestionAge.Prompt(), fc.lastSent())
	assert.Equal(t, models.QuestionAge, stateOf(t, mem, 1, 1).Question)

	fc = privateText(1, "999")
	require.NoError(t, h.handleText(NewUpdateContext(ctx, fc)))

	assert.Equal(t, models.QuestionAge.ValidationHint(), fc.lastSent())
	assert.Equal(t, models.QuestionAge, stateOf(t, mem, 1, 1).Question)
}

func TestHandleAnswerRepeatReturnsToOverview(t *testing.T) {
	h, mem := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, mem.CreateUser(ctx, &models.User{ID: 1}))
	_, err := h.svc.Start(ctx, 1)
	require.NoError(t, err)
	_, err = h.svc.SubmitAnswer(ctx, 1, models.QuestionPubgID, "12345")
	require.NoError(t, err)
	require.NoError(t, mem.SetChatState(ctx, &models.ChatState{
		UserID:   1,
		ChatID:   1,
		Stage:    models.StageQuestion,
		Question: models.QuestionPubgID,
	}))

	fc := privateText(1, "67890")
	require.NoError(t, h.handleText(NewUpdateContext(ctx, fc)))

	assert.Contains(t, fc.lastSent(), "1) PUBG ID: 67890")
	assert.Equal(t, models.StageDecision, stateOf(t, mem, 1, 1).Stage)
}

func TestDeclineKeepsAdminQuestionnaireState(t *testing.T) {
	h, mem := newTestHandler(t)
	ctx := context.Background()

	// The admin is filling out their own questionnaire in the private chat.
	require.NoError(t, mem.SetChatState(ctx, &models.ChatState{
		UserID:   99,
		ChatID:   99,
		Stage:    models.StageQuestion,
		Question: models.QuestionAge,
	}))

	fc := &fakeContext{
		chat:     &telebot.Chat{ID: -100, Type: telebot.ChatSuperGroup},
		sender:   &telebot.User{ID: 99},
		data:     "5",
		callback: &telebot.Callback{},
	}
	require.NoError(t, h.handleDecline(NewUpdateContext(ctx, fc)))

	reviewState := stateOf(t, mem, 99, -100)
	assert.Equal(t, models.StageRejectReason, reviewState.Stage)
	assert.EqualValues(t, 5, reviewState.PendingApplicationID)

	questionnaire := stateOf(t, mem, 99, 99)
	assert.Equal(t, models.StageQuestion, questionnaire.Stage)
	assert.Equal(t, models.QuestionAge, questionnaire.Question)
}
