package planner

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"

	"github.com/RayDR/YelpOut/app/common/consts/biz"
	"github.com/RayDR/YelpOut/app/common/consts/errno"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
	"github.com/RayDR/YelpOut/app/api/planner/internal/mq"
	"github.com/RayDR/YelpOut/app/api/planner/internal/svc"
	"github.com/RayDR/YelpOut/app/api/planner/internal/types"
	"github.com/RayDR/YelpOut/app/api/planner/internal/validate"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type SendItineraryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendItineraryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendItineraryLogic {
	return &SendItineraryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SendItinerary queues the finished plan for email delivery. The payload is
// self-contained so the worker never needs the session back.
func (l *SendItineraryLogic) SendItinerary(req *types.SendItineraryRequest) (*types.SendItineraryResponse, error) {
	if req == nil || req.SessionId == "" {
		return nil, errors.New(int(errno.InvalidParam), "missing session id")
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, errors.New(int(errno.InvalidParam), "invalid email address")
	}

	sess, ok := l.svcCtx.Sessions.Get(req.SessionId)
	if !ok {
		return nil, errors.New(int(errno.SessionNotFound), "session not found")
	}
	if len(sess.Blocks) == 0 {
		return nil, errors.New(int(errno.ContextIncomplete), "no itinerary to send")
	}

	payload := mq.SendItineraryPayload{
		Email:        req.Email,
		EventType:    sess.Context.EventType(),
		GroupDisplay: validate.FormatGroupDisplay(sess.Context.Participants),
		Language:     string(sess.Language),
		Blocks:       sess.Blocks,
	}
	if sess.Context.Event != nil {
		payload.PlanDate = sess.Context.Event.DateISO
	}
	if sess.Context.Location != nil {
		payload.Location = sess.Context.Location.Text
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.New(int(errno.InternalError), "encode itinerary payload")
	}

	if l.svcCtx.AsynqClient != nil {
		task := asynq.NewTask(mq.TaskSendItinerary, body)
		if _, err := l.svcCtx.AsynqClient.Enqueue(task, asynq.Queue(biz.MailQueue)); err != nil {
			l.Logger.Error("logic: enqueue itinerary mail failed: ", err)
			return nil, errors.New(int(errno.MailQueueError), "failed to queue itinerary email")
		}
	} else {
		// No queue configured: deliver inline rather than dropping the request.
		subject, html := mq.BuildItineraryEmail(payload)
		if err := mq.SendMail(l.svcCtx.Config.Smtp, req.Email, subject, html); err != nil {
			l.Logger.Error("logic: send itinerary mail failed: ", err)
			return nil, errors.New(int(errno.MailQueueError), "failed to send itinerary email")
		}
	}

	return &types.SendItineraryResponse{
		Message: conversation.MiscPrompt("itineraryQueued", sess.Language),
	}, nil
}
