package web

import (
	"errors"
	"net/http"
	"strconv"

	"pokedex/internal/common"
	"pokedex/internal/server/catalog"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	_, loggedIn := s.currentSession(r)
	s.render(w, r, http.StatusOK, "index.html", s.newIndexView(r.Context(), s.dataset, loggedIn))
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	filtered, err := catalog.FilterByName(s.dataset, name)
	if err != nil {
		http.Error(w, "Invalid query", http.StatusBadRequest)
		return
	}

	_, loggedIn := s.currentSession(r)
	s.render(w, r, http.StatusOK, "index.html", s.newIndexView(r.Context(), filtered, loggedIn))
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	order := r.URL.Query().Get("order")

	sorted, err := catalog.SortByField(s.dataset, field, order)
	if err != nil {
		if errors.Is(err, common.ErrorMissingParameter) {
			http.Error(w, "Missing field or order query parameters", http.StatusBadRequest)
			return
		}
		http.Error(w, "Invalid field specified", http.StatusBadRequest)
		return
	}

	_, loggedIn := s.currentSession(r)
	s.render(w, r, http.StatusOK, "index.html", s.newIndexView(r.Context(), sorted, loggedIn))
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Pokemon not found", http.StatusNotFound)
		return
	}

	item, ok := catalog.FindByID(s.dataset, id)
	if !ok {
		http.Error(w, "Pokemon not found", http.StatusNotFound)
		return
	}

	_, loggedIn := s.currentSession(r)
	s.render(w, r, http.StatusOK, "detail.html", DetailView{
		Item:     s.newItemView(r.Context(), &item),
		LoggedIn: loggedIn,
	})
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "login.html", LoginView{})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := s.users.Login(r.Context(), username, password)
	if err != nil {
		// Two distinct messages; note they let a visitor probe which
		// usernames exist. The JSON API answers with a single generic 401.
		switch {
		case errors.Is(err, common.ErrorUserNotFound):
			s.render(w, r, http.StatusOK, "login.html", LoginView{Error: "User does not exist"})
		case errors.Is(err, common.ErrorInvalidCredentials):
			s.render(w, r, http.StatusOK, "login.html", LoginView{Error: "Incorrect password"})
		default:
			s.logger.Error(r.Context(), "login failed", "error", err.Error())
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	token := s.sessions.Create(user.ID)
	s.setSessionCookie(w, token)
	s.logger.Info(r.Context(), "user logged in", "username", username)
	http.Redirect(w, r, "/catalog", http.StatusFound)
}

func (s *Server) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "register.html", RegisterView{})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		s.render(w, r, http.StatusOK, "register.html", RegisterView{Error: "Username and password are required"})
		return
	}

	if _, err := s.users.Register(r.Context(), username, password); err != nil {
		if errors.Is(err, common.ErrorLoginAlreadyExists) {
			s.render(w, r, http.StatusOK, "register.html", RegisterView{Error: "Username already exists"})
			return
		}
		s.logger.Error(r.Context(), "registration failed", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s.logger.Info(r.Context(), "user registered", "username", username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		s.sessions.Destroy(cookie.Value)
	}
	// Best-effort cleanup: the cookie is cleared even when no session was
	// found to destroy. Must happen before the redirect writes headers.
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home.html", HomeView{LoggedIn: true})
}
