package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/sillygoals/sillygoals/internal/model"
)

// Dashboard is the full dashboard page.
func Dashboard(user *model.User, groups []*model.Group) templ.Component {
	return shell(user, navGroups(groups), DashboardContent(groups))
}

// DashboardContent is the dashboard fragment: the user's groups as cards.
func DashboardContent(groups []*model.Group) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section id="dashboard"><h1 class="mb-4 text-2xl font-bold">Your Groups</h1>`)
		if err != nil {
			return err
		}

		if len(groups) == 0 {
			_, err = io.WriteString(w, `<p class="text-gray-500">No groups yet. Create one to get started.</p>`)
			if err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `<div class="grid grid-cols-1 gap-4 sm:grid-cols-2 lg:grid-cols-3">`)
		if err != nil {
			return err
		}

		for _, g := range groups {
			_, err = fmt.Fprintf(w, `<article class="rounded-lg border bg-white p-4 shadow-sm" data-group-id="%d">
<a href="/groups/%d" hx-get="/groups/%d" hx-target="#main" hx-push-url="true" class="font-semibold">%s</a>
<p class="mt-1 text-sm text-gray-500">%s</p>
<div class="mt-2 text-sm"><a href="/groups/%d/edit" hx-get="/groups/%d/edit" hx-target="#main" hx-push-url="true" class="text-sky-600">Edit</a>
<button hx-delete="/groups/%d" hx-confirm="Delete this group and all its goals?" hx-target="#main" class="ml-2 text-rose-600">Delete</button></div>
</article>`,
				g.ID, g.ID, g.ID, esc(g.Title), esc(g.Description), g.ID, g.ID, g.ID)
			if err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `</div></section>`)
		return err
	})
}
