package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	contactapp "github.com/muhammadheryan/contact-manager/application/contact"
	"github.com/muhammadheryan/contact-manager/cmd/config"
	"github.com/muhammadheryan/contact-manager/constant"
	"github.com/muhammadheryan/contact-manager/model"
	"github.com/muhammadheryan/contact-manager/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ContactApp contactapp.ContactApp
}

func NewTransport(contactApp contactapp.ContactApp, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		ContactApp: contactApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Health check
	router.HandleFunc("/", rh.Health).Methods(http.MethodGet)

	// Contact routes
	router.HandleFunc("/api/contacts", rh.ListContacts).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/api/contacts", rh.CreateContact).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/contacts/{id}", rh.UpdateContact).Methods(http.MethodPut, http.MethodOptions)
	router.HandleFunc("/api/contacts/{id}", rh.DeleteContact).Methods(http.MethodDelete, http.MethodOptions)

	// Internal ops routes, guarded by the static service key
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/cache/contacts", rh.FlushContactCache).Methods(http.MethodDelete)

	// middleware; CORSMethodMiddleware must run before the preflight
	// short-circuit so Access-Control-Allow-Methods is populated
	router.Use(LoggingMiddleware())
	router.Use(mux.CORSMethodMiddleware(router))
	router.Use(CORSMiddleware(cfg.CORS.AllowedOrigin))

	return router
}

// Health handler
// @Summary Health check
// @Description Reports whether the API is up
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"message": "Contact Management API is running"})
}

// ListContacts handler
// @Summary List contacts
// @Description Returns all contacts, newest first
// @Tags Contacts
// @Produce json
// @Success 200 {array} model.ContactEntity
// @Failure 500 {object} errorResponse
// @Router /api/contacts [get]
func (s *RestHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ContactApp.List(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateContact handler
// @Summary Create contact
// @Description Creates a contact; the normalized (email, phone) pair must be unique
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body model.ContactRequest true "Contact"
// @Success 201 {object} model.ContactEntity
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/contacts [post]
func (s *RestHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// UpdateContact handler
// @Summary Update contact
// @Description Overwrites a contact's mutable fields
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body model.ContactRequest true "Contact"
// @Success 200 {object} model.ContactEntity
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/contacts/{id} [put]
func (s *RestHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := contactID(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.Update(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteContact handler
// @Summary Delete contact
// @Description Removes a contact
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} model.DeleteContactResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/contacts/{id} [delete]
func (s *RestHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := contactID(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	res, err := s.ContactApp.Delete(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// FlushContactCache drops the cached contact listing.
func (s *RestHandler) FlushContactCache(w http.ResponseWriter, r *http.Request) {
	if err := s.ContactApp.FlushCache(r.Context()); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	writeSuccess(w, map[string]string{"message": "contact cache flushed"})
}

// contactID parses the {id} path variable. A non-numeric id can never
// match a contact, so it reads as not found rather than a bad request.
func contactID(r *http.Request) (uint64, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
