package chi

import (
	"context"
	"net/http"

	"github.com/marcelsud/booklend/library"
)

type loanRequest struct {
	MemberID *int64 `json:"member_id"`
	BookID   *int64 `json:"book_id"`
}

func postLoan(catalog library.UseCase) http.Handler {
	return loanHandler(catalog.BorrowBook)
}

func postReturn(catalog library.UseCase) http.Handler {
	return loanHandler(catalog.ReturnBook)
}

func loanHandler(apply func(ctx context.Context, memberID, bookID int64) library.Outcome) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var lr loanRequest
		if err := json.NewDecoder(r.Body).Decode(&lr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if lr.MemberID == nil || lr.BookID == nil {
			http.Error(w, "member_id and book_id are required", http.StatusBadRequest)
			return
		}
		o := apply(r.Context(), *lr.MemberID, *lr.BookID)
		writeJSON(w, statusFor(o, http.StatusOK), newOutcomeResponse(o))
	})
}
