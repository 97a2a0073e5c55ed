// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package planner

import (
	"net/http"

	"github.com/RayDR/YelpOut/app/api/planner/internal/logic/planner"
	"github.com/RayDR/YelpOut/app/api/planner/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func HealthHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := planner.NewHealthLogic(r.Context(), svcCtx)
		resp, err := l.Health()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
