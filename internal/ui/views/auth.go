package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// AuthPage renders the combined login and registration forms.
func AuthPage(errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
</head>
<body class="flex min-h-screen items-center justify-center bg-gray-50">
<div class="w-full max-w-sm space-y-6">
<h1 class="text-center text-2xl font-bold">%s</h1>`, appTitle, appTitle)
		if err != nil {
			return err
		}

		if errMsg != "" {
			_, err = fmt.Fprintf(w, `<p class="rounded bg-rose-100 p-2 text-sm text-rose-700">%s</p>`, esc(errMsg))
			if err != nil {
				return err
			}
		}

		token := csrfInput(ctx)
		_, err = fmt.Fprintf(w, `<form method="post" action="/auth/login" class="space-y-3 rounded-lg border bg-white p-4">
%s
<h2 class="font-semibold">Log in</h2>
<input type="email" name="email" placeholder="Email" required class="w-full rounded border p-2">
<input type="password" name="password" placeholder="Password" required class="w-full rounded border p-2">
<button type="submit" class="w-full rounded bg-sky-600 p-2 text-white">Log in</button>
</form>
<form method="post" action="/auth/register" class="space-y-3 rounded-lg border bg-white p-4">
%s
<h2 class="font-semibold">Create an account</h2>
<input type="text" name="name" placeholder="Name" required class="w-full rounded border p-2">
<input type="email" name="email" placeholder="Email" required class="w-full rounded border p-2">
<input type="password" name="password" placeholder="Password (12+ characters)" required class="w-full rounded border p-2">
<button type="submit" class="w-full rounded bg-emerald-600 p-2 text-white">Register</button>
</form>
</div></body></html>`, token, token)
		return err
	})
}
