package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/sillygoals/sillygoals/internal/ctxkeys"
	"github.com/sillygoals/sillygoals/internal/htmx"
	"github.com/sillygoals/sillygoals/internal/markdown"
	"github.com/sillygoals/sillygoals/internal/model"
	"github.com/sillygoals/sillygoals/internal/repository"
	"github.com/sillygoals/sillygoals/internal/service"
	"github.com/sillygoals/sillygoals/internal/stage"
	"github.com/sillygoals/sillygoals/internal/ui"
	"github.com/sillygoals/sillygoals/internal/ui/views"
	"github.com/sillygoals/sillygoals/internal/validation"
)

type GoalHandler struct {
	goalService  *service.GoalService
	groupService *service.GroupService
	markdown     *markdown.Parser
}

func NewGoalHandler(goalService *service.GoalService, groupService *service.GroupService, md *markdown.Parser) *GoalHandler {
	return &GoalHandler{
		goalService:  goalService,
		groupService: groupService,
		markdown:     md,
	}
}

func (h *GoalHandler) NewGoalPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	groupID, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	selectedStage := 0
	if raw := r.URL.Query().Get("stage"); raw != "" {
		selectedStage, ok = parseStage(raw)
		if !ok {
			http.Error(w, "Invalid stage", http.StatusBadRequest)
			return
		}
	}

	group, err := h.groupService.WithTone(user.ID, groupID)
	if err != nil {
		groupError(w, err, user.ID, groupID)
		return
	}

	htmx.UpdateLocationAfterSwap(w)

	if htmx.NegotiateRequest(r) == htmx.ShapeFragment {
		ui.Render(w, r, views.NewGoalContent(group, selectedStage))
		return
	}

	links, goals, err := h.boardData(user.ID, group.ID)
	if err != nil {
		http.Error(w, "Failed to load form", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, views.NewGoal(user, links, group, stage.Partition(goals), selectedStage))
}

func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	groupID, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	form, ok := parseGoalForm(w, r)
	if !ok {
		return
	}

	goal, err := h.goalService.Create(user.ID, groupID, form.title, form.description, form.stage, form.deadline)
	if err != nil {
		goalError(w, err, user.ID, groupID)
		return
	}

	h.respondWithBoard(w, r, user, groupID, htmx.Notification{
		Title:     "Goal Created",
		Message:   "Created " + goal.Title,
		Variant:   htmx.VariantSuccess,
		AutoClose: true,
	})
}

func (h *GoalHandler) ShowGoal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	groupID, ok := pathID(r, "group_id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	goalID, ok := pathID(r, "goal_id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	group, err := h.groupService.WithTone(user.ID, groupID)
	if err != nil {
		groupError(w, err, user.ID, groupID)
		return
	}

	htmx.UpdateLocationAfterSwap(w)

	if htmx.NegotiateRequest(r) == htmx.ShapeFragment {
		goal, err := h.goalService.ByID(group.ID, goalID)
		if err != nil {
			goalError(w, err, user.ID, groupID)
			return
		}

		ui.Render(w, r, views.GoalDetailContent(group, goal, h.description(goal)))
		return
	}

	links, goals, err := h.boardData(user.ID, group.ID)
	if err != nil {
		http.Error(w, "Failed to load goal", http.StatusInternalServerError)
		return
	}

	goal := findGoal(goals, goalID)
	if goal == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	ui.Render(w, r, views.GoalDetail(user, links, group, stage.Partition(goals), goal, h.description(goal)))
}

func (h *GoalHandler) EditGoalPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	groupID, ok := pathID(r, "group_id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	goalID, ok := pathID(r, "goal_id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	group, err := h.groupService.WithTone(user.ID, groupID)
	if err != nil {
		groupError(w, err, user.ID, groupID)
		return
	}

	htmx.UpdateLocationAfterSwap(w)

	if htmx.NegotiateRequest(r) == htmx.ShapeFragment {
		goal, err := h.goalService.ByID(group.ID, goalID)
		if err != nil {
			goalError(w, err, user.ID, groupID)
			return
		}

		ui.Render(w, r, views.EditGoalContent(group, goal))
		return
	}

	links, goals, err := h.boardData(user.ID, group.ID)
	if err != nil {
		http.Error(w, "Failed to load goal", http.StatusInternalServerError)
		return
	}

	goal := findGoal(goals, goalID)
	if goal == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	ui.Render(w, r, views.EditGoal(user, links, group, stage.Partition(goals), goal))
}

func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	groupID, ok := pathID(r, "group_id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	goalID, ok := pathID(r, "goal_id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	form, ok := parseGoalForm(w, r)
	if !ok {
		return
	}

	err := h.goalService.Update(user.ID, groupID, goalID, form.title, form.description, form.stage, form.deadline)
	if err != nil {
		goalError(w, err, user.ID, groupID)
		return
	}

	h.respondWithBoard(w, r, user, groupID, htmx.Notification{
		Title:     "Goal Updated",
		Message:   "Updated " + form.title,
		Variant:   htmx.VariantSuccess,
		AutoClose: true,
	})
}

// PatchGoalStage moves a goal between stages. It answers drag and drop, so
// the response carries no body for htmx to swap.
func (h *GoalHandler) PatchGoalStage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	groupID, ok := pathID(r, "group_id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	goalID, ok := pathID(r, "goal_id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	st, ok := parseStage(r.URL.Query().Get("stage"))
	if !ok {
		http.Error(w, "Invalid stage", http.StatusBadRequest)
		return
	}

	err := h.goalService.UpdateStage(user.ID, groupID, goalID, st)
	if err != nil {
		goalError(w, err, user.ID, groupID)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	groupID, ok := pathID(r, "group_id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	goalID, ok := pathID(r, "goal_id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	err := h.goalService.Delete(user.ID, groupID, goalID)
	if err != nil {
		goalError(w, err, user.ID, groupID)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// respondWithBoard answers a successful goal mutation: the refreshed board
// with a toast for fragment requests, a redirect back to the group otherwise.
func (h *GoalHandler) respondWithBoard(w http.ResponseWriter, r *http.Request, user *model.User, groupID int64, note htmx.Notification) {
	if htmx.NegotiateRequest(r) != htmx.ShapeFragment {
		http.Redirect(w, r, "/groups/"+strconv.FormatInt(groupID, 10), http.StatusSeeOther)
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

	htmx.UpdateLocationAfterSettle(w)
	htmx.TriggerNotification(w, note)
	ui.Render(w, r, views.BoardContent(group, stage.Partition(goals)))
}

func (h *GoalHandler) boardData(userID string, groupID int64) ([]*model.GroupLink, []*model.Goal, error) {
	links, err := h.groupService.Links(userID)
	if err != nil {
		slog.Error("failed to list group links", "error", err, "user_id", userID)
		return nil, nil, err
	}

	goals, err := h.goalService.ForGroup(groupID)
	if err != nil {
		slog.Error("failed to list goals", "error", err, "group_id", groupID)
		return nil, nil, err
	}

	return links, goals, nil
}

func (h *GoalHandler) description(goal *model.Goal) templ.Component {
	html, err := h.markdown.Parse([]byte(goal.Description))
	if err != nil {
		slog.Error("failed to render goal description", "error", err, "goal_id", goal.ID)
		return templ.Raw("")
	}
	return templ.Raw(string(html))
}

func findGoal(goals []*model.Goal, goalID int64) *model.Goal {
	for _, g := range goals {
		if g.ID == goalID {
			return g
		}
	}
	return nil
}

type goalForm struct {
	title       string
	description string
	stage       int
	deadline    *time.Time
}

func parseGoalForm(w http.ResponseWriter, r *http.Request) (goalForm, bool) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return goalForm{}, false
	}

	title := r.PostFormValue("title")
	err = validation.ValidateTitle(title)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return goalForm{}, false
	}

	st, err := strconv.Atoi(r.PostFormValue("stage"))
	if err != nil {
		http.Error(w, "Invalid stage", http.StatusBadRequest)
		return goalForm{}, false
	}

	var deadline *time.Time
	if raw := r.PostFormValue("deadline"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "Invalid deadline", http.StatusBadRequest)
			return goalForm{}, false
		}
		deadline = &d
	}

	return goalForm{
		title:       title,
		description: r.PostFormValue("description"),
		stage:       st,
		deadline:    deadline,
	}, true
}

// parseStage reads a stage number off the wire. Range checking lives in the
// service; this only rejects values that are not integers at all.
func parseStage(raw string) (int, bool) {
	st, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return st, true
}

func goalError(w http.ResponseWriter, err error, userID string, groupID int64) {
	switch {
	case errors.Is(err, repository.ErrGroupNotFound), errors.Is(err, repository.ErrGoalNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidStage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("goal operation failed", "error", err, "user_id", userID, "group_id", groupID)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
	}
}
