package planner

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"

	"github.com/RayDR/YelpOut/app/common/consts/errno"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
	"github.com/RayDR/YelpOut/app/api/planner/internal/logic/helper"
	"github.com/RayDR/YelpOut/app/api/planner/internal/svc"
	"github.com/RayDR/YelpOut/app/api/planner/internal/types"
)

type RestartLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRestartLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RestartLogic {
	return &RestartLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RestartLogic) Restart(req *types.RestartRequest) (*types.RestartResponse, error) {
	if req == nil || req.SessionId == "" {
		return nil, errors.New(int(errno.InvalidParam), "missing session id")
	}

	sess, ok := l.svcCtx.Sessions.Get(req.SessionId)
	if !ok {
		return nil, errors.New(int(errno.SessionNotFound), "session not found")
	}

	lang := helper.Lang(req.Language, sess.Language)
	sess.Language = lang
	sess.Reset()

	now := time.Now()
	key, prompt, chips := helper.NextPrompt(sess.Context, lang, now)
	sess.ActiveQuestion = key
	l.svcCtx.Sessions.Put(sess)

	return &types.RestartResponse{
		SessionId: sess.ID,
		Replies:   []string{conversation.RestartResponse(lang)},
		Question:  prompt,
		Chips:     chips,
	}, nil
}
