package planner

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"

	"github.com/RayDR/YelpOut/app/common/consts/errno"

	"github.com/RayDR/YelpOut/app/api/planner/internal/itinerary"
	"github.com/RayDR/YelpOut/app/api/planner/internal/places"
	"github.com/RayDR/YelpOut/app/api/planner/internal/svc"
	"github.com/RayDR/YelpOut/app/api/planner/internal/types"
)

const defaultRecommendationLimit = 3

type RecommendationsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRecommendationsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RecommendationsLogic {
	return &RecommendationsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Recommendations fills one plan block with venue options. Restrictive
// filters are relaxed step by step when the first search comes back empty.
func (l *RecommendationsLogic) Recommendations(req *types.RecommendationsRequest) (*types.RecommendationsResponse, error) {
	if req == nil || req.SessionId == "" || req.BlockId == "" {
		return nil, errors.New(int(errno.InvalidParam), "missing session or block id")
	}

	sess, ok := l.svcCtx.Sessions.Get(req.SessionId)
	if !ok {
		return nil, errors.New(int(errno.SessionNotFound), "session not found")
	}
	if sess.Context.Location == nil || sess.Context.Location.Text == "" {
		return nil, errors.New(int(errno.ContextIncomplete), "location is required")
	}

	var block *itinerary.PlanBlock
	for i := range sess.Blocks {
		if sess.Blocks[i].ID == req.BlockId {
			block = &sess.Blocks[i]
			break
		}
	}
	if block == nil {
		return nil, errors.New(int(errno.BlockNotFound), "block not found")
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	params := places.BuildSearchParams(sess.Context, block.Type, limit)
	// Over-fetch so exclusions and closing-time filtering leave enough.
	params.Limit = min(50, limit+len(req.ExcludeIds)+10)

	result, err := l.search(params)
	if err != nil {
		l.Logger.Error("logic: yelp search failed: ", err)
		return nil, errors.New(int(errno.PlacesUpstreamError), "failed to fetch recommendations")
	}

	options := places.NormalizeAll(result.Businesses, sess.Language, req.ExcludeIds, limit)
	options = itinerary.FilterByClosingTime(options, itinerary.ParseTimeToMinutes(block.StartTime))

	block.Options = options
	l.svcCtx.Sessions.Put(sess)

	return &types.RecommendationsResponse{
		BlockId: block.ID,
		Places:  options,
	}, nil
}

func (l *RecommendationsLogic) search(params places.SearchParams) (*places.SearchResponse, error) {
	result, err := l.svcCtx.Yelp.Search(l.ctx, params)
	if err != nil {
		return nil, err
	}

	if len(result.Businesses) == 0 && params.Attributes != "" {
		retry := params
		retry.Attributes = ""
		if result, err = l.svcCtx.Yelp.Search(l.ctx, retry); err != nil {
			return nil, err
		}
		params = retry
	}

	if len(result.Businesses) == 0 && params.Term != "" {
		retry := params
		retry.Term = ""
		retry.Attributes = ""
		if result, err = l.svcCtx.Yelp.Search(l.ctx, retry); err != nil {
			return nil, err
		}
	}
	return result, nil
}
