package planner

import (
	"context"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"

	"github.com/RayDR/YelpOut/app/common/consts/biz"
	"github.com/RayDR/YelpOut/app/common/consts/errno"
	"github.com/RayDR/YelpOut/app/common/snowflake"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
	"github.com/RayDR/YelpOut/app/api/planner/internal/itinerary"
	"github.com/RayDR/YelpOut/app/api/planner/internal/logic/helper"
	"github.com/RayDR/YelpOut/app/api/planner/internal/mq"
	"github.com/RayDR/YelpOut/app/api/planner/internal/session"
	"github.com/RayDR/YelpOut/app/api/planner/internal/svc"
	"github.com/RayDR/YelpOut/app/api/planner/internal/types"
	"github.com/RayDR/YelpOut/app/api/planner/internal/validate"
)

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
	now    func() time.Time
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
		now:    time.Now,
	}
}

// Chat advances one conversation turn: command detection first (restart,
// help, emotion, complaint, field edits), then extraction or per-question
// parsing, then the sequencer decides what to ask next or declares the plan
// complete.
func (l *ChatLogic) Chat(req *types.ChatRequest) (*types.ChatResponse, error) {
	if req == nil || strings.TrimSpace(req.Message) == "" {
		return nil, errors.New(int(errno.InvalidParam), "empty message")
	}
	now := l.now()

	sess := l.loadOrCreateSession(req.SessionId, req.Language, now)
	lang := helper.Lang(req.Language, sess.Language)
	sess.Language = lang
	sess.AppendMessage("user", req.Message, now)

	resp := &types.ChatResponse{SessionId: sess.ID}
	message := req.Message

	switch {
	case conversation.DetectRestart(message, lang):
		sess.Reset()
		resp.Replies = append(resp.Replies, conversation.RestartResponse(lang))
		l.askNext(resp, sess, lang, now)

	case l.handleHelp(resp, message, lang, sess, now):

	case l.handleComplaint(resp, message, lang, sess, now):

	case l.handleEmotion(resp, message, lang, sess, now):

	default:
		l.advancePlan(resp, message, lang, sess, now)
	}

	for _, reply := range resp.Replies {
		sess.AppendMessage("assistant", reply, now)
	}
	resp.Context = sess.Context
	l.svcCtx.Sessions.Put(sess)
	return resp, nil
}

func (l *ChatLogic) loadOrCreateSession(id, language string, now time.Time) *session.Session {
	if id != "" {
		if sess, ok := l.svcCtx.Sessions.Get(id); ok {
			return sess
		}
	}
	return l.svcCtx.Sessions.New(snowflake.NextString(), helper.Lang(language, ""), now)
}

// handleHelp answers meta questions about the assistant itself. A message
// that also carries planning info is treated as planning, so "how about
// dinner tonight" never turns into a usage guide.
func (l *ChatLogic) handleHelp(resp *types.ChatResponse, message string, lang conversation.Language, sess *session.Session, now time.Time) bool {
	_, text, ok := conversation.DetectHelpQuery(message, lang)
	if !ok {
		return false
	}
	if update := conversation.ExtractInitialInfo(message, now); !update.Empty() {
		return false
	}

	resp.Replies = append(resp.Replies, text)
	l.reAsk(resp, sess, lang, now)
	return true
}

func (l *ChatLogic) handleComplaint(resp *types.ChatResponse, message string, lang conversation.Language, sess *session.Session, now time.Time) bool {
	severity, ok := conversation.DetectComplaint(message, lang)
	if !ok {
		return false
	}

	evt := mq.FeedbackEvent{
		SessionID: sess.ID,
		Kind:      biz.ComplaintEventTag,
		Severity:  string(severity),
		Message:   message,
		Language:  string(lang),
		At:        now.Unix(),
	}
	if err := mq.PublishFeedbackEvent(l.svcCtx, evt); err != nil {
		l.Logger.Error("logic: publish feedback event failed: ", err)
	}

	resp.Replies = append(resp.Replies, conversation.ComplaintResponse(lang))
	l.reAsk(resp, sess, lang, now)
	return true
}

func (l *ChatLogic) handleEmotion(resp *types.ChatResponse, message string, lang conversation.Language, sess *session.Session, now time.Time) bool {
	emotion, text, ok := conversation.DetectEmotion(message, lang)
	if !ok || emotion == conversation.EmotionNegative {
		return false
	}
	// Thanks or praise bundled with an actual answer should not eat the turn.
	if update := conversation.ExtractInitialInfo(message, now); !update.Empty() {
		return false
	}

	resp.Replies = append(resp.Replies, text)
	l.reAsk(resp, sess, lang, now)
	return true
}

func (l *ChatLogic) advancePlan(resp *types.ChatResponse, message string, lang conversation.Language, sess *session.Session, now time.Time) {
	if key, update, ok := conversation.DetectChangeRequest(message, sess.Context, now); ok {
		sess.Awaiting = sess.Context.Apply(update, sess.Awaiting)
		if ack := conversation.ModificationAck(key, l.changedValue(key, sess.Context), lang); ack != "" {
			resp.Replies = append(resp.Replies, ack)
		}
		l.finishTurn(resp, sess, lang, now)
		return
	}

	var update conversation.Update
	if sess.ActiveQuestion == "" {
		update = conversation.ExtractInitialInfo(message, now)
	} else {
		question := sess.ActiveQuestion
		if sess.Awaiting.Pending() {
			question = conversation.QuestionClarifyAmPm
		}
		update = conversation.ParseResponse(conversation.Normalize(message), question, sess.Context, sess.Awaiting, now)
	}
	sess.Awaiting = sess.Context.Apply(update, sess.Awaiting)

	// A start time already behind today's clock is bounced back.
	if ev := sess.Context.Event; ev != nil && sess.Context.StartTimeResolved() &&
		!conversation.ValidateTimeForToday(ev.DateISO, ev.StartTime, now) {
		ev.StartTime = ""
		ev.EndTime = ""
		resp.Replies = append(resp.Replies, conversation.MiscPrompt("pastTime", lang))
		prompt, chips := helper.PromptFor(conversation.QuestionStartTime, sess.Context, lang, now)
		resp.Question = prompt
		resp.Chips = chips
		sess.ActiveQuestion = conversation.QuestionStartTime
		return
	}

	l.finishTurn(resp, sess, lang, now)
}

// finishTurn runs the sequencer: pending clarification first, then
// completion, then the next unanswered question.
func (l *ChatLogic) finishTurn(resp *types.ChatResponse, sess *session.Session, lang conversation.Language, now time.Time) {
	if sess.Awaiting.Pending() {
		resp.Question = conversation.QuestionPrompt(conversation.QuestionClarifyAmPm, lang)
		resp.Chips = []string{"AM", "PM"}
		sess.ActiveQuestion = conversation.QuestionClarifyAmPm
		return
	}

	if conversation.HasAllRequiredInfo(sess.Context) {
		result := validate.PlanContext(sess.Context)
		if !result.Valid {
			l.bounceInvalid(resp, result, sess, lang, now)
			return
		}

		sess.Blocks = itinerary.Derive(sess.Context)
		sess.ActiveQuestion = ""
		resp.Replies = append(resp.Replies, conversation.MiscPrompt("planReady", lang))
		resp.Blocks = sess.Blocks
		resp.Completed = true
		return
	}

	l.askNext(resp, sess, lang, now)
}

func (l *ChatLogic) askNext(resp *types.ChatResponse, sess *session.Session, lang conversation.Language, now time.Time) {
	key, prompt, chips := helper.NextPrompt(sess.Context, lang, now)
	if key == "" {
		return
	}
	resp.Question = prompt
	resp.Chips = chips
	sess.ActiveQuestion = key
}

// reAsk repeats the currently-active question so side conversations (help,
// thanks, complaints) do not lose the thread.
func (l *ChatLogic) reAsk(resp *types.ChatResponse, sess *session.Session, lang conversation.Language, now time.Time) {
	if sess.ActiveQuestion == "" {
		l.askNext(resp, sess, lang, now)
		return
	}
	prompt, chips := helper.PromptFor(sess.ActiveQuestion, sess.Context, lang, now)
	resp.Question = prompt
	resp.Chips = chips
}

var invalidFieldQuestions = map[string]conversation.QuestionKey{
	"location":     conversation.QuestionLocation,
	"participants": conversation.QuestionGroupSize,
	"budget":       conversation.QuestionBudget,
	"preferences":  conversation.QuestionCuisine,
	"event":        conversation.QuestionDate,
}

func (l *ChatLogic) bounceInvalid(resp *types.ChatResponse, result validate.Result, sess *session.Session, lang conversation.Language, now time.Time) {
	first := result.Errors[0]
	l.Logger.Infow("logic: plan context failed validation",
		logx.Field("field", first.Field), logx.Field("msg", first.Message))

	key, ok := invalidFieldQuestions[first.Field]
	if !ok {
		key = conversation.QuestionEventType
	}
	resp.Replies = append(resp.Replies, conversation.MiscPrompt("didntCatch", lang))
	prompt, chips := helper.PromptFor(key, sess.Context, lang, now)
	resp.Question = prompt
	resp.Chips = chips
	sess.ActiveQuestion = key
}

func (l *ChatLogic) changedValue(key conversation.QuestionKey, ctx *conversation.PlanContext) string {
	switch key {
	case conversation.QuestionStartTime:
		return ctx.StartTime()
	case conversation.QuestionDate:
		if ctx.Event != nil {
			return ctx.Event.DateISO
		}
	case conversation.QuestionDuration:
		if ctx.Event != nil {
			return ctx.Event.EndTime
		}
	case conversation.QuestionLocation:
		if ctx.Location != nil {
			return ctx.Location.Text
		}
	case conversation.QuestionBudget:
		if ctx.Budget != nil {
			return string(ctx.Budget.Tier)
		}
	}
	return ""
}
