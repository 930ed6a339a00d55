package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/sillygoals/sillygoals/internal/model"
	"github.com/sillygoals/sillygoals/internal/stage"
)

// NewGoal is the full goal-creation page; the board stays visible behind the
// form.
func NewGoal(user *model.User, links []*model.GroupLink, group *model.GroupDisplay, buckets [stage.Count][]*model.Goal, selectedStage int) templ.Component {
	return shell(user, navLinks(links), joined(BoardContent(group, buckets), NewGoalContent(group, selectedStage)))
}

// NewGoalContent is the goal-creation form fragment.
func NewGoalContent(group *model.GroupDisplay, selectedStage int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section><h1 class="mb-4 text-2xl font-bold">New Goal in %s</h1>`, esc(group.Title))
		if err != nil {
			return err
		}
		err = goalForm(ctx, w, fmt.Sprintf("/groups/%d/goals/new", group.ID), group, nil, selectedStage)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, `</section>`)
		return err
	})
}

// GoalDetail is the full goal page.
func GoalDetail(user *model.User, links []*model.GroupLink, group *model.GroupDisplay, buckets [stage.Count][]*model.Goal, goal *model.Goal, description templ.Component) templ.Component {
	return shell(user, navLinks(links), joined(BoardContent(group, buckets), GoalDetailContent(group, goal, description)))
}

// GoalDetailContent is the goal detail fragment. The description arrives
// pre-rendered from markdown.
func GoalDetailContent(group *model.GroupDisplay, goal *model.Goal, description templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="max-w-lg" data-goal-id="%d">
<h1 class="mb-1 text-2xl font-bold">%s</h1>
<p class="mb-3 text-sm"><span class="%s inline-block h-3 w-3 rounded-full"></span> %s</p>`,
			goal.ID, esc(goal.Title), stage.Color(goal.Stage), esc(stage.Label(group.Stages, goal.Stage)))
		if err != nil {
			return err
		}

		if goal.Deadline != nil {
			_, err = fmt.Fprintf(w, `<p class="mb-3 text-sm text-gray-500">Due %s</p>`, goal.Deadline.Format("2006-01-02"))
			if err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `<div class="prose">`)
		if err != nil {
			return err
		}
		err = description.Render(ctx, w)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, `</div>
<div class="mt-4 text-sm">
<a href="/groups/%d/goals/%d/edit" hx-get="/groups/%d/goals/%d/edit" hx-target="#main" hx-push-url="true" class="text-sky-600">Edit</a>
<button hx-delete="/groups/%d/goals/%d" hx-confirm="Delete this goal?" hx-target="#main" class="ml-2 text-rose-600">Delete</button>
<a href="/groups/%d" hx-get="/groups/%d" hx-target="#main" hx-push-url="true" class="ml-2 text-gray-500">Back to board</a>
</div></section>`,
			group.ID, goal.ID, group.ID, goal.ID, group.ID, goal.ID, group.ID, group.ID)
		return err
	})
}

// EditGoal is the full goal-edit page.
func EditGoal(user *model.User, links []*model.GroupLink, group *model.GroupDisplay, buckets [stage.Count][]*model.Goal, goal *model.Goal) templ.Component {
	return shell(user, navLinks(links), joined(BoardContent(group, buckets), EditGoalContent(group, goal)))
}

// EditGoalContent is the goal-edit form fragment.
func EditGoalContent(group *model.GroupDisplay, goal *model.Goal) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section><h1 class="mb-4 text-2xl font-bold">Edit %s</h1>`, esc(goal.Title))
		if err != nil {
			return err
		}
		err = goalForm(ctx, w, fmt.Sprintf("/groups/%d/goals/%d/edit", group.ID, goal.ID), group, goal, goal.Stage)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, `</section>`)
		return err
	})
}

func goalForm(ctx context.Context, w io.Writer, action string, group *model.GroupDisplay, goal *model.Goal, selectedStage int) error {
	title, description, deadline := "", "", ""
	if goal != nil {
		title, description = goal.Title, goal.Description
		if goal.Deadline != nil {
			deadline = goal.Deadline.Format("2006-01-02")
		}
	}

	_, err := fmt.Fprintf(w, `<form method="post" action="%s" hx-post="%s" hx-target="#main" class="max-w-md space-y-3">
%s
<label class="block">Title<input type="text" name="title" value="%s" required class="mt-1 w-full rounded border p-2"></label>
<label class="block">Description<textarea name="description" class="mt-1 w-full rounded border p-2">%s</textarea></label>
<label class="block">Deadline<input type="date" name="deadline" value="%s" class="mt-1 w-full rounded border p-2"></label>
<label class="block">Stage<select name="stage" class="mt-1 w-full rounded border p-2">`,
		action, action, csrfInput(ctx), esc(title), esc(description), deadline)
	if err != nil {
		return err
	}

	for i := 0; i < stage.Count; i++ {
		selected := ""
		if i == selectedStage {
			selected = " selected"
		}
		_, err = fmt.Fprintf(w, `<option value="%d"%s>%s</option>`, i, selected, esc(stage.Label(group.Stages, i)))
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, `</select></label>
<button type="submit" class="rounded bg-sky-600 px-4 py-2 text-white">Save</button>
</form>`)
	return err
}

// joined renders components in sequence inside one swap target.
func joined(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			err := c.Render(ctx, w)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
