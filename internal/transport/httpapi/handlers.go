package transport_http

import (
	"net/http"

	port_connector "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/usecase/connector"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// getParties looks the payee up by identifier. The id type in the path is
// not checked here: the connector serves a single one.
func (h *Handler) getParties(w http.ResponseWriter, r *http.Request) {
	idType := chi.URLParam(r, "idType")
	idValue := chi.URLParam(r, "idValue")
	h.log.Debug("party lookup", zap.String("id_type", idType), zap.String("id_value", idValue))

	party, err := h.connector.GetParties(r.Context(), idValue)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, party)
}

func (h *Handler) quoteRequests(w http.ResponseWriter, r *http.Request) {
	var req port_connector.QuoteRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	quote, err := h.connector.QuoteRequest(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

func (h *Handler) receiveTransfer(w http.ResponseWriter, r *http.Request) {
	var req port_connector.TransferRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.connector.ReceiveTransfer(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) sendMoney(w http.ResponseWriter, r *http.Request) {
	var req port_connector.SendTransferRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.connector.SendTransfer(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) updateSendMoney(w http.ResponseWriter, r *http.Request) {
	var req port_connector.UpdateSentTransferRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	req.TransferID = chi.URLParam(r, "transferId")

	body, err := h.connector.UpdateSentTransfer(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if len(body) == 0 {
		body = []byte("{}")
	}
	writeRawJSON(w, http.StatusOK, body)
}
