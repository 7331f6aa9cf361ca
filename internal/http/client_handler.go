package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tuanvumaihuynh/invoicing-api/internal/service"
)

type clientHandler struct {
	clientSvc service.ClientService
}

func newClientHandler(clientSvc service.ClientService) *clientHandler {
	return &clientHandler{
		clientSvc: clientSvc,
	}
}

func (h *clientHandler) CreateClient(w http.ResponseWriter, r *http.Request) error {
	params, err := decodeJSON[service.ClientParams](r)
	if err != nil {
		return err
	}

	client, err := h.clientSvc.CreateClient(r.Context(), params)
	if err != nil {
		return fmt.Errorf("client service create client: %w", err)
	}

	return writeJSON(w, http.StatusOK, client)
}

func (h *clientHandler) ListClients(w http.ResponseWriter, r *http.Request) error {
	clients, err := h.clientSvc.ListClients(r.Context())
	if err != nil {
		return fmt.Errorf("client service list clients: %w", err)
	}

	return writeJSON(w, http.StatusOK, clients)
}

func (h *clientHandler) GetClient(w http.ResponseWriter, r *http.Request) error {
	client, err := h.clientSvc.GetClient(r.Context(), chi.URLParam(r, "identificacion"))
	if err != nil {
		return fmt.Errorf("client service get client: %w", err)
	}

	return writeJSON(w, http.StatusOK, client)
}

func (h *clientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) error {
	params, err := decodeJSON[service.ClientParams](r)
	if err != nil {
		return err
	}

	client, err := h.clientSvc.UpdateClient(r.Context(), chi.URLParam(r, "identificacion"), params)
	if err != nil {
		return fmt.Errorf("client service update client: %w", err)
	}

	return writeJSON(w, http.StatusOK, client)
}

func (h *clientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) error {
	client, err := h.clientSvc.DeleteClient(r.Context(), chi.URLParam(r, "identificacion"))
	if err != nil {
		return fmt.Errorf("client service delete client: %w", err)
	}

	return writeJSON(w, http.StatusOK, client)
}
