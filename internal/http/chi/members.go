package chi

import (
	"net/http"

	"github.com/marcelsud/booklend/library"
)

type memberRequest struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

type memberResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Borrowed []int64 `json:"borrowed"`
}

func getMembers(catalog library.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		members := catalog.ListMembers(r.Context())
		result := make([]memberResponse, 0, len(members))
		for _, m := range members {
			borrowed := m.Borrowed
			if borrowed == nil {
				borrowed = []int64{}
			}
			result = append(result, memberResponse{
				ID:       m.ID,
				Name:     m.Name,
				Borrowed: borrowed,
			})
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func postMembers(catalog library.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var mr memberRequest
		if err := json.NewDecoder(r.Body).Decode(&mr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if mr.ID == nil {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		o, err := catalog.RegisterMember(r.Context(), *mr.ID, mr.Name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, statusFor(o, http.StatusCreated), newOutcomeResponse(o))
	})
}
