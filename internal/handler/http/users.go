package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/user-admin/internal/adapter"
	"github.com/MKhiriev/user-admin/internal/app"
	"github.com/MKhiriev/user-admin/internal/flash"
	"github.com/MKhiriev/user-admin/internal/logger"
	"github.com/MKhiriev/user-admin/internal/utils"
	"github.com/MKhiriev/user-admin/internal/validators"
	"github.com/MKhiriev/user-admin/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	messages := h.popMessages(w, r)

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("error listing users")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	h.render(w, r, pageUserList, userListPage{
		basePage: basePage{Title: "Users", Messages: messages},
		Users:    users,
	}, http.StatusOK)
}

func (h *Handler) createUserForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageUserForm, userFormPage{
		basePage: basePage{Title: "Create user", Messages: h.popMessages(w, r)},
	}, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form body was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var submitted models.UserForm
	if err := h.decoder.Decode(&submitted, r.PostForm); err != nil {
		log.Err(err).Msg("invalid form body was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	page := userFormPage{
		basePage: basePage{Title: "Create user"},
		Form:     submitted.Redacted(),
	}

	created, err := h.services.UserService.CreateUser(ctx, submitted)
	if err != nil {
		var (
			validationErr *validators.ValidationError
			creationErr   *adapter.CreationError
		)
		switch {
		case errors.As(err, &validationErr):
			log.Debug().Err(err).Msg("user form rejected")
			page.Errors = validationErr.ByField()
			h.render(w, r, pageUserForm, page, http.StatusUnprocessableEntity)
			return
		case errors.As(err, &creationErr):
			log.Warn().Err(err).Int("api_status", creationErr.StatusCode).Msg("data API rejected user creation")
			page.Messages = append(page.Messages, flash.Error(fmt.Sprintf(app.MsgFailedToCreateUser, creationErr.Message)))
			h.render(w, r, pageUserForm, page, http.StatusOK)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user creation")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	if err = h.flash.Add(w, r, flash.Success(fmt.Sprintf(app.MsgUserCreated, created.Email))); err != nil {
		log.Warn().Err(err).Msg("failed to queue flash message")
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseUserID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if user == nil {
		http.Error(w, app.MsgUserNotFound, http.StatusNotFound)
		return
	}

	h.render(w, r, pageUserDetail, userDetailPage{
		basePage: basePage{Title: user.Email, Messages: h.popMessages(w, r)},
		User:     *user,
	}, http.StatusOK)
}

// writeError answers with the status mapped from err. Only unexpected
// failures are logged.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusNotFound {
		http.Error(w, app.MsgUserNotFound, status)
		return
	}

	logger.FromRequest(r).Err(err).Msg("error getting user")
	http.Error(w, app.MsgInternalServerError, status)
}

func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedUserID, raw)
	}
	return id, nil
}

// popMessages drains the flash store. A store failure is logged and yields
// no messages.
func (h *Handler) popMessages(w http.ResponseWriter, r *http.Request) []flash.Message {
	messages, err := h.flash.Pop(w, r)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("failed to read flash messages")
		return nil
	}
	return messages
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data any, status int) {
	if _, err := utils.WriteHTML(w, h.views.pages[page], layoutTemplate, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("error rendering page")
	}
}
