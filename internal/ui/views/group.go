package views

import (
	"context"
	"fmt"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"
	"github.com/sillygoals/sillygoals/internal/model"
	"github.com/sillygoals/sillygoals/internal/stage"
)

// NewGroup is the full group-creation page.
func NewGroup(user *model.User, groups []*model.Group, tones []*model.Tone) templ.Component {
	return shell(user, navGroups(groups), NewGroupContent(tones))
}

// NewGroupContent is the group-creation form fragment.
func NewGroupContent(tones []*model.Tone) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section><h1 class="mb-4 text-2xl font-bold">New Group</h1>`)
		if err != nil {
			return err
		}
		err = groupForm(ctx, w, "/groups/new", nil, tones)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, `</section>`)
		return err
	})
}

// EditGroup is the full group-edit page.
func EditGroup(user *model.User, groups []*model.Group, group *model.Group, tones []*model.Tone) templ.Component {
	return shell(user, navGroups(groups), EditGroupContent(group, tones))
}

// EditGroupContent is the group-edit form fragment.
func EditGroupContent(group *model.Group, tones []*model.Tone) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section><h1 class="mb-4 text-2xl font-bold">Edit %s</h1>`, esc(group.Title))
		if err != nil {
			return err
		}
		err = groupForm(ctx, w, fmt.Sprintf("/groups/%d/edit", group.ID), group, tones)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, `</section>`)
		return err
	})
}

func groupForm(ctx context.Context, w io.Writer, action string, group *model.Group, tones []*model.Tone) error {
	title, description := "", ""
	var toneID int64
	if group != nil {
		title, description, toneID = group.Title, group.Description, group.ToneID
	}

	_, err := fmt.Fprintf(w, `<form method="post" action="%s" hx-post="%s" hx-target="#main" class="max-w-md space-y-3">
%s
<label class="block">Title<input type="text" name="title" value="%s" required class="mt-1 w-full rounded border p-2"></label>
<label class="block">Description<textarea name="description" class="mt-1 w-full rounded border p-2">%s</textarea></label>
<label class="block">Tone<select name="tone_id" class="mt-1 w-full rounded border p-2">`,
		action, action, csrfInput(ctx), esc(title), esc(description))
	if err != nil {
		return err
	}

	for _, tone := range tones {
		selected := ""
		if tone.ID == toneID {
			selected = " selected"
		}
		_, err = fmt.Fprintf(w, `<option value="%d"%s>%s</option>`, tone.ID, selected, esc(tone.Name))
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, `</select></label>
<button type="submit" class="rounded bg-sky-600 px-4 py-2 text-white">Save</button>
</form>`)
	return err
}

// Board is the full group board page.
func Board(user *model.User, links []*model.GroupLink, group *model.GroupDisplay, buckets [stage.Count][]*model.Goal) templ.Component {
	return shell(user, navLinks(links), BoardContent(group, buckets))
}

// BoardContent renders the four stage columns for a group.
func BoardContent(group *model.GroupDisplay, buckets [stage.Count][]*model.Goal) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section id="board" data-group-id="%d">
<div class="mb-4 flex items-baseline justify-between">
<h1 class="text-2xl font-bold">%s</h1>
<p class="text-gray-500">%s</p>
<a href="/groups/%d/edit" hx-get="/groups/%d/edit" hx-target="#main" hx-push-url="true" class="text-sm text-sky-600">Edit group</a>
</div>
<div class="grid grid-cols-4 gap-4">`,
			group.ID, esc(group.Title), esc(group.Greeting), group.ID, group.ID)
		if err != nil {
			return err
		}

		for i := 0; i < stage.Count; i++ {
			colClass := twmerge.Merge("rounded-lg border p-3", stage.BorderLight(i), stage.ColorLight(i))
			_, err = fmt.Fprintf(w, `<div class="%s" data-stage="%d">
<h2 class="mb-2 flex items-center gap-2 font-semibold"><span class="%s inline-block h-3 w-3 rounded-full"></span>%s</h2>
<div class="space-y-2">`,
				colClass, i, stage.Color(i), esc(stage.Label(group.Stages, i)))
			if err != nil {
				return err
			}

			for _, goal := range buckets[i] {
				err = goalCard(w, group.ID, goal)
				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprintf(w, `</div>
<a href="/groups/%d/goals/new?stage=%d" hx-get="/groups/%d/goals/new?stage=%d" hx-target="#main" hx-push-url="true" class="mt-2 block text-sm text-gray-500">+ Add goal</a>
</div>`,
				group.ID, i, group.ID, i)
			if err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `</div></section>`)
		return err
	})
}

func goalCard(w io.Writer, groupID int64, goal *model.Goal) error {
	deadline := ""
	if goal.Deadline != nil {
		deadline = fmt.Sprintf(`<time class="mt-1 block text-xs text-gray-500">%s</time>`, goal.Deadline.Format("2006-01-02"))
	}

	_, err := fmt.Fprintf(w, `<article class="cursor-pointer rounded border bg-white p-2 shadow-sm" draggable="true" data-goal-id="%d" data-stage="%d" hx-get="/groups/%d/goals/%d" hx-target="#main" hx-push-url="true">
<h3 class="text-sm font-medium">%s</h3>%s
</article>`,
		goal.ID, goal.Stage, groupID, goal.ID, esc(goal.Title), deadline)
	return err
}
