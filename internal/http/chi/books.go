package chi

import (
	"net/http"

	"github.com/marcelsud/booklend/library"
)

/*
* Book in the web layer, hence the json tags
 */
type bookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Stock  *int   `json:"stock"`
}

type bookResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Stock     int    `json:"stock"`
	Available bool   `json:"available"`
}

type listingResponse struct {
	OK      bool           `json:"ok"`
	Outcome string         `json:"outcome"`
	Message string         `json:"message"`
	Books   []bookResponse `json:"books"`
}

func newListingResponse(l library.Listing) listingResponse {
	result := listingResponse{
		OK:      l.OK(),
		Outcome: l.Kind.String(),
		Message: l.Message,
		Books:   make([]bookResponse, 0, len(l.Books)),
	}
	for _, b := range l.Books {
		result.Books = append(result.Books, bookResponse{
			ID:        b.ID,
			Title:     b.Title,
			Author:    b.Author,
			Stock:     b.Stock,
			Available: b.IsAvailable(),
		})
	}
	return result
}

func getBooks(catalog library.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := catalog.ListBooks(r.Context())
		writeJSON(w, http.StatusOK, newListingResponse(l))
	})
}

func searchBooks(catalog library.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := catalog.SearchBooks(r.Context(), r.URL.Query().Get("q"))
		writeJSON(w, http.StatusOK, newListingResponse(l))
	})
}

func postBooks(catalog library.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var br bookRequest
		if err := json.NewDecoder(r.Body).Decode(&br); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if br.Stock == nil {
			http.Error(w, "stock is required", http.StatusBadRequest)
			return
		}
		o := catalog.AddBook(r.Context(), br.Title, br.Author, *br.Stock)
		writeJSON(w, statusFor(o, http.StatusCreated), newOutcomeResponse(o))
	})
}
