// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"github.com/RayDR/YelpOut/app/api/planner/internal/handler/planner"
	"github.com/RayDR/YelpOut/app/api/planner/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/planner/chat",
				Handler: planner.ChatHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/planner/restart",
				Handler: planner.RestartHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/planner/geolocation",
				Handler: planner.GeolocationHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/planner/recommendations",
				Handler: planner.RecommendationsHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/planner/itinerary/send",
				Handler: planner.SendItineraryHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/planner/health",
				Handler: planner.HealthHandler(serverCtx),
			},
		},
	)
}
