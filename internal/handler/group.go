package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sillygoals/sillygoals/internal/ctxkeys"
	"github.com/sillygoals/sillygoals/internal/htmx"
	"github.com/sillygoals/sillygoals/internal/repository"
	"github.com/sillygoals/sillygoals/internal/service"
	"github.com/sillygoals/sillygoals/internal/stage"
	"github.com/sillygoals/sillygoals/internal/ui"
	"github.com/sillygoals/sillygoals/internal/ui/views"
	"github.com/sillygoals/sillygoals/internal/validation"
)

type GroupHandler struct {
	groupService *service.GroupService
	goalService  *service.GoalService
}

func NewGroupHandler(groupService *service.GroupService, goalService *service.GoalService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		goalService:  goalService,
	}
}

// pathID parses a numeric path segment. A non-numeric id resolves nothing,
// so it reads as not found rather than a bad request.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *GroupHandler) NewGroupPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	tones, err := h.groupService.EligibleTones(user.ID)
	if err != nil {
		slog.Error("failed to list tones", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load form", http.StatusInternalServerError)
		return
	}

	htmx.UpdateLocationAfterSwap(w)

	if htmx.NegotiateRequest(r) == htmx.ShapeFragment {
		ui.Render(w, r, views.NewGroupContent(tones))
		return
	}

	groups, err := h.groupService.Groups(user.ID)
	if err != nil {
		slog.Error("failed to list groups", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load form", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, views.NewGroup(user, groups, tones))
}

func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	form, ok := parseGroupForm(w, r)
	if !ok {
		return
	}

	group, err := h.groupService.Create(user.ID, form.title, form.description, form.toneID)
	if err != nil {
		slog.Error("failed to create group", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to create group", http.StatusInternalServerError)
		return
	}

	htmx.TriggerNotification(w, htmx.Notification{
		Title:     "New Group Created!",
		Message:   "Created " + group.Title,
		Variant:   htmx.VariantSuccess,
		AutoClose: true,
	})
	http.Redirect(w, r, "/groups/"+strconv.FormatInt(group.ID, 10), http.StatusSeeOther)
}

func (h *GroupHandler) ShowGroup(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	groupID, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	group, err := h.groupService.WithTone(user.ID, groupID)
	if err != nil {
		groupError(w, err, user.ID, groupID)
		return
	}

	goals, err := h.goalService.ForGroup(group.ID)
	if err != nil {
		slog.Error("failed to list goals", "error", err, "group_id", group.ID)
		http.Error(w, "Failed to load group", http.StatusInternalServerError)
		return
	}
	buckets := stage.Partition(goals)

	htmx.UpdateLocationAfterSwap(w)

	if htmx.NegotiateRequest(r) == htmx.ShapeFragment {
		ui.Render(w, r, views.BoardContent(group, buckets))
		return
	}

	links, err := h.groupService.Links(user.ID)
	if err != nil {
		slog.Error("failed to list group links", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load group", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, views.Board(user, links, group, buckets))
}

func (h *GroupHandler) EditGroupPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	groupID, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	group, err := h.groupService.ByID(user.ID, groupID)
	if err != nil {
		groupError(w, err, user.ID, groupID)
		return
	}

	tones, err := h.groupService.EligibleTones(user.ID)
	if err != nil {
		slog.Error("failed to list tones", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load form", http.StatusInternalServerError)
		return
	}

	htmx.UpdateLocationAfterSwap(w)

	if htmx.NegotiateRequest(r) == htmx.ShapeFragment {
		ui.Render(w, r, views.EditGroupContent(group, tones))
		return
	}

	groups, err := h.groupService.Groups(user.ID)
	if err != nil {
		slog.Error("failed to list groups", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load form", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, views.EditGroup(user, groups, group, tones))
}

func (h *GroupHandler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	groupID, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	form, ok := parseGroupForm(w, r)
	if !ok {
		return
	}

	err := h.groupService.Update(user.ID, groupID, form.title, form.description, form.toneID)
	if err != nil {
		groupError(w, err, user.ID, groupID)
		return
	}

	if htmx.NegotiateRequest(r) == htmx.ShapeFragment {
		groups, err := h.groupService.Groups(user.ID)
		if err != nil {
			slog.Error("failed to list groups", "error", err, "user_id", user.ID)
			http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
			return
		}

		htmx.UpdateLocationAfterSettle(w)
		htmx.TriggerNotification(w, htmx.Notification{
			Title:     "Group Updated",
			Message:   "Updated " + form.title,
			Variant:   htmx.VariantSuccess,
			AutoClose: true,
		})
		ui.Render(w, r, views.DashboardContent(groups))
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *GroupHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	groupID, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	err := h.groupService.Delete(user.ID, groupID)
	if err != nil {
		groupError(w, err, user.ID, groupID)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type groupForm struct {
	title       string
	description string
	toneID      int64
}

func parseGroupForm(w http.ResponseWriter, r *http.Request) (groupForm, bool) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return groupForm{}, false
	}

	title := r.PostFormValue("title")
	err = validation.ValidateTitle(title)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return groupForm{}, false
	}

	toneID, err := strconv.ParseInt(r.PostFormValue("tone_id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid tone", http.StatusBadRequest)
		return groupForm{}, false
	}

	return groupForm{
		title:       title,
		description: r.PostFormValue("description"),
		toneID:      toneID,
	}, true
}

// groupError maps a missing or foreign group to 404. The repositories return
// the same error for both, so a caller cannot probe other users' ids.
func groupError(w http.ResponseWriter, err error, userID string, groupID int64) {
	if errors.Is(err, repository.ErrGroupNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	slog.Error("group operation failed", "error", err, "user_id", userID, "group_id", groupID)
	http.Error(w, "Something went wrong", http.StatusInternalServerError)
}
