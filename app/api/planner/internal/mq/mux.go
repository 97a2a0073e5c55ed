package mq

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/RayDR/YelpOut/app/api/planner/internal/svc"
)

// NewAsynqMux registers handlers for queued tasks.
func NewAsynqMux(sc *svc.ServiceContext) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskSendItinerary, func(ctx context.Context, t *asynq.Task) error {
		var p SendItineraryPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		subject, body := BuildItineraryEmail(p)
		if err := SendMail(sc.Config.Smtp, p.Email, subject, body); err != nil {
			logx.WithContext(ctx).Error("mq: send itinerary mail failed: ", err)
			return err
		}
		return nil
	})
	return mux
}
