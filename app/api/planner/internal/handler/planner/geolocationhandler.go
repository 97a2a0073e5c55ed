// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package planner

import (
	"net/http"

	"github.com/RayDR/YelpOut/app/api/planner/internal/logic/planner"
	"github.com/RayDR/YelpOut/app/api/planner/internal/svc"
	"github.com/RayDR/YelpOut/app/api/planner/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func GeolocationHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GeolocationRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := planner.NewGeolocationLogic(r.Context(), svcCtx)
		resp, err := l.Geolocation(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
