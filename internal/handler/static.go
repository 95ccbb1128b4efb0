package handler

import "net/http"

// RootRedirect handles GET / - an unconditional temporary redirect to the
// static landing page.
func RootRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// StaticFiles returns the handler serving the front-end assets under
// /static/ from dir.
func StaticFiles(dir string) http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.Dir(dir)))
}
