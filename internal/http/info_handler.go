package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const apiVersion = "1.0.0"

type messageResponse struct {
	Mensaje string `json:"mensaje"`
}

type infoResponse struct {
	Nombre      string `json:"nombre"`
	Version     string `json:"version"`
	Descripcion string `json:"descripcion"`
}

type infoHandler struct{}

func newInfoHandler() *infoHandler {
	return &infoHandler{}
}

func (h *infoHandler) Root(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, messageResponse{Mensaje: "¡Hola Mundo desde la API de Facturación!"})
}

func (h *infoHandler) Greet(w http.ResponseWriter, r *http.Request) error {
	nombre := chi.URLParam(r, "nombre")
	return writeJSON(w, http.StatusOK, messageResponse{
		Mensaje: fmt.Sprintf("¡Hola %s! Bienvenido a la API", nombre),
	})
}

func (h *infoHandler) Info(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, infoResponse{
		Nombre:      "API de Facturacion",
		Version:     apiVersion,
		Descripcion: "API diseñada para la gestión de procesos de facturación",
	})
}
