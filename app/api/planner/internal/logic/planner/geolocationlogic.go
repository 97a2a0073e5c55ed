package planner

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"

	"github.com/RayDR/YelpOut/app/common/consts/biz"
	"github.com/RayDR/YelpOut/app/common/consts/errno"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
	"github.com/RayDR/YelpOut/app/api/planner/internal/svc"
	"github.com/RayDR/YelpOut/app/api/planner/internal/types"
)

type GeolocationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGeolocationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GeolocationLogic {
	return &GeolocationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Geolocation resolves a pending location sentinel with device coordinates.
func (l *GeolocationLogic) Geolocation(req *types.GeolocationRequest) (*types.GeolocationResponse, error) {
	if req == nil || req.SessionId == "" {
		return nil, errors.New(int(errno.InvalidParam), "missing session id")
	}
	if req.Lat == 0 && req.Lng == 0 {
		return nil, errors.New(int(errno.InvalidParam), "missing coordinates")
	}

	sess, ok := l.svcCtx.Sessions.Get(req.SessionId)
	if !ok {
		return nil, errors.New(int(errno.SessionNotFound), "session not found")
	}

	text := req.Text
	if text == "" {
		text = conversation.GeolocationSentinel
	}
	sess.Context.Location = &conversation.LocationInfo{
		Text:     text,
		Lat:      req.Lat,
		Lng:      req.Lng,
		RadiusKm: biz.GeoRadiusKm,
	}
	l.svcCtx.Sessions.Put(sess)

	return &types.GeolocationResponse{
		SessionId: sess.ID,
		Context:   sess.Context,
	}, nil
}
