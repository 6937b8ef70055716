package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pokedex/internal/common"
	"pokedex/internal/server/catalog"
)

type apiLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type apiLoginResponse struct {
	AccessToken string `json:"access_token"`
}

// handleAPILogin exchanges credentials for a bearer token. Unlike the HTML
// login it returns one generic message for both unknown users and wrong
// passwords, so the API does not aid username enumeration.
func (s *Server) handleAPILogin(w http.ResponseWriter, r *http.Request) {
	var req apiLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUserNotFound) || errors.Is(err, common.ErrorInvalidCredentials) {
			writeJSONError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "api login failed", "error", err.Error())
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := s.users.GenerateAPIToken(user)
	if err != nil {
		s.logger.Error(r.Context(), "token generation failed", "error", err.Error())
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, apiLoginResponse{AccessToken: token})
}

func (s *Server) handleAPIList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.dataset)
}

func (s *Server) handleAPIFilter(w http.ResponseWriter, r *http.Request) {
	filtered, err := catalog.FilterByName(s.dataset, r.URL.Query().Get("name"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "missing name query parameter")
		return
	}
	writeJSON(w, http.StatusOK, filtered)
}

func (s *Server) handleAPISort(w http.ResponseWriter, r *http.Request) {
	sorted, err := catalog.SortByField(s.dataset, r.URL.Query().Get("field"), r.URL.Query().Get("order"))
	if err != nil {
		if errors.Is(err, common.ErrorMissingParameter) {
			writeJSONError(w, http.StatusBadRequest, "missing field or order query parameters")
			return
		}
		writeJSONError(w, http.StatusBadRequest, "invalid field or order")
		return
	}
	writeJSON(w, http.StatusOK, sorted)
}

func (s *Server) handleAPIDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "pokemon not found")
		return
	}

	item, ok := catalog.FindByID(s.dataset, id)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "pokemon not found")
		return
	}

	writeJSON(w, http.StatusOK, item)
}
