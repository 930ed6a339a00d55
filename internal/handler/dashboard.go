package handler

import (
	"log/slog"
	"net/http"

	"github.com/sillygoals/sillygoals/internal/ctxkeys"
	"github.com/sillygoals/sillygoals/internal/htmx"
	"github.com/sillygoals/sillygoals/internal/service"
	"github.com/sillygoals/sillygoals/internal/ui"
	"github.com/sillygoals/sillygoals/internal/ui/views"
)

type DashboardHandler struct {
	groupService *service.GroupService
}

func NewDashboardHandler(groupService *service.GroupService) *DashboardHandler {
	return &DashboardHandler{
		groupService: groupService,
	}
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	groups, err := h.groupService.Groups(user.ID)
	if err != nil {
		slog.Error("failed to list groups", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	htmx.UpdateLocationAfterSwap(w)

	if htmx.NegotiateRequest(r) == htmx.ShapeFragment {
		ui.Render(w, r, views.DashboardContent(groups))
		return
	}

	ui.Render(w, r, views.Dashboard(user, groups))
}
