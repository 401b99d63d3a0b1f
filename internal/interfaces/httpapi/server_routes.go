package httpapi

import "net/http"

const draftBase = "/v1/drafts/{divisionID}/{seasonID}"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDraftRoutes(mux *http.ServeMux, handler *Handler) {
	route := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireSessionKey(fn))
	}

	route("POST "+draftBase, handler.OpenSession)
	route("GET "+draftBase, handler.GetSession)
	route("DELETE "+draftBase, handler.DiscardSession)
	route("POST "+draftBase+"/start", handler.Start)
	route("POST "+draftBase+"/cancel", handler.Cancel)
	route("GET "+draftBase+"/order", handler.Order)
	route("POST "+draftBase+"/picks", handler.Pick)
	route("POST "+draftBase+"/assignments/assign", handler.AssignVolunteer)
	route("POST "+draftBase+"/assignments/decline", handler.DeclineVolunteer)
	route("POST "+draftBase+"/assignments/skip", handler.SkipAssignment)
	route("DELETE "+draftBase+"/managers/{managerID}/players/{playerID}", handler.RemovePlayer)
	route("PUT "+draftBase+"/managers/{managerID}/team", handler.BindTeam)
	route("POST "+draftBase+"/moves", handler.MovePlayer)
	route("POST "+draftBase+"/moves/resolve", handler.ResolveMove)
	route("POST "+draftBase+"/commit", handler.Commit)
}

func registerFeedRoutes(mux *http.ServeMux, feed http.Handler) {
	if feed == nil {
		return
	}
	mux.Handle("GET "+draftBase+"/feed", RequireSessionKey(feed))
}
