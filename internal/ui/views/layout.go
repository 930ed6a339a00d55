// Package views holds the page and fragment components. Each route has a
// full-page component (shell, navigation, main content) and a bare fragment
// component suitable for an in-place swap; the handler picks one via the
// response negotiator.
package views

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"github.com/sillygoals/sillygoals/internal/ctxkeys"
	"github.com/sillygoals/sillygoals/internal/model"
)

const appTitle = "Silly Goals"

func esc(s string) string {
	return html.EscapeString(s)
}

// shell wraps main content with the full page chrome: head, htmx script,
// header with session controls, and a navigation sidebar.
func shell(user *model.User, nav, main templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head>
<body class="min-h-screen bg-gray-50 text-gray-900" hx-boost="true">
<header class="flex items-center justify-between border-b bg-white px-6 py-3">
<a href="/dashboard" class="text-lg font-bold">%s</a>
<div class="flex items-center gap-3"><span>%s</span>`, appTitle, appTitle, esc(user.Name))
		if err != nil {
			return err
		}

		err = logoutForm().Render(ctx, w)
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, `</div></header><div class="flex"><aside class="w-56 border-r bg-white p-4">`)
		if err != nil {
			return err
		}

		err = nav.Render(ctx, w)
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, `</aside><main id="main" class="flex-1 p-6">`)
		if err != nil {
			return err
		}

		err = main.Render(ctx, w)
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, `</main></div><div id="toast-container"></div></body></html>`)
		return err
	})
}

func logoutForm() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<form method="post" action="/auth/logout">%s<button type="submit" class="text-sm text-gray-500">Log out</button></form>`,
			csrfInput(ctx))
		return err
	})
}

// csrfInput renders the hidden token field; the token is placed in the
// request context by the CSRF middleware.
func csrfInput(ctx context.Context) string {
	return fmt.Sprintf(`<input type="hidden" name="csrftoken" value="%s">`, esc(ctxkeys.CSRFToken(ctx)))
}

// navGroups is the dashboard-side navigation over full group rows.
func navGroups(groups []*model.Group) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<nav class="space-y-1">`)
		if err != nil {
			return err
		}
		for _, g := range groups {
			_, err = fmt.Fprintf(w, `<a href="/groups/%d" hx-get="/groups/%d" hx-target="#main" hx-push-url="true" class="block rounded px-2 py-1 hover:bg-gray-100">%s</a>`,
				g.ID, g.ID, esc(g.Title))
			if err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `<a href="/groups/new" hx-get="/groups/new" hx-target="#main" hx-push-url="true" class="block rounded px-2 py-1 text-gray-500 hover:bg-gray-100">+ New Group</a></nav>`)
		return err
	})
}

// navLinks is the board-side navigation over the lighter link projection.
func navLinks(links []*model.GroupLink) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<nav class="space-y-1">`)
		if err != nil {
			return err
		}
		for _, l := range links {
			_, err = fmt.Fprintf(w, `<a href="/groups/%d" hx-get="/groups/%d" hx-target="#main" hx-push-url="true" class="block rounded px-2 py-1 hover:bg-gray-100">%s</a>`,
				l.ID, l.ID, esc(l.Title))
			if err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `<a href="/groups/new" hx-get="/groups/new" hx-target="#main" hx-push-url="true" class="block rounded px-2 py-1 text-gray-500 hover:bg-gray-100">+ New Group</a></nav>`)
		return err
	})
}
