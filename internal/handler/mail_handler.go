package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) SendEmail(w http.ResponseWriter, r *http.Request) {
	recipient := mux.Vars(r)["recipient"]
	if recipient == "" {
		WriteError(w, "Email address is required", http.StatusBadRequest)
		return
	}

	if err := h.MailService.SendContact(recipient); err != nil {
		WriteError(w, fmt.Sprintf("Failed to send email: %v", err), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, MessageResponse{
		Message: fmt.Sprintf("Email sent successfully to %s!", recipient),
	}, http.StatusOK)
}
