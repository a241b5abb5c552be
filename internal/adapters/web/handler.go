package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"signalsite/internal/domain"
	"signalsite/internal/domain/entities"
	"signalsite/internal/ports/input"
)

// Handler serves the landing page and the lead endpoints using use cases.
type Handler struct {
	leadUseCase input.LeadUseCase
	pageUseCase input.PageUseCase
	render      *renderer
	logger      *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	leadUseCase input.LeadUseCase,
	pageUseCase input.PageUseCase,
	logger *zap.Logger,
) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		leadUseCase: leadUseCase,
		pageUseCase: pageUseCase,
		render:      &renderer{tmpl: tmpl, logger: logger},
		logger:      logger,
	}, nil
}

const submittedPath = "/?submitted=1#contact"

func newFormToken() string { return uuid.NewString() }

// HandleHome renders the page with a fresh form, or the confirmation panel
// after a successful submission redirect.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	form := entities.FormState{Token: newFormToken()}
	if r.URL.Query().Get("submitted") == "1" {
		form.Submitted = true
	}
	h.render.page(w, http.StatusOK, h.pageUseCase.Build(r.Context(), form))
}

// HandleContact processes a classic form post.
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	in := entities.LeadInput{
		FirstName:   r.PostFormValue("fname"),
		LastName:    r.PostFormValue("lname"),
		PhonePrefix: r.PostFormValue("phonePrefix"),
		PhoneNumber: r.PostFormValue("phoneNumber"),
		Email:       r.PostFormValue("email"),
	}
	token := r.PostFormValue("token")

	// A repeated post of an accepted form lands on the same confirmation.
	_, err := h.leadUseCase.Submit(r.Context(), token, in)
	if err == nil || errors.Is(err, domain.ErrAlreadySubmitted) {
		http.Redirect(w, r, submittedPath, http.StatusSeeOther)
		return
	}

	if strings.TrimSpace(token) == "" {
		token = newFormToken()
	}
	form := entities.FormState{
		Token:  token,
		Input:  in,
		Errors: fieldErrorsByName(h.leadUseCase.FieldMessages(r.Context(), err)),
		Alert:  h.leadUseCase.ErrorMessage(r.Context(), err),
	}
	h.render.page(w, statusFor(err), h.pageUseCase.Build(r.Context(), form))
}

type leadRequest struct {
	Token       string `json:"token"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhonePrefix string `json:"phonePrefix"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

type leadResponse struct {
	ID        int64  `json:"id"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// HandleAPILead is the JSON variant of HandleContact.
func (h *Handler) HandleAPILead(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	lead, err := h.leadUseCase.Submit(r.Context(), req.Token, entities.LeadInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhonePrefix: req.PhonePrefix,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})
	if err != nil {
		code := domain.Code(err)
		if code == "" {
			code = "internal"
		}
		writeJSON(w, statusFor(err), errorResponse{
			Error:   code,
			Message: h.leadUseCase.ErrorMessage(r.Context(), err),
			Errors:  fieldErrorsByName(h.leadUseCase.FieldMessages(r.Context(), err)),
		})
		return
	}

	writeJSON(w, http.StatusCreated, leadResponse{
		ID:        lead.ID,
		Phone:     lead.Phone,
		CreatedAt: lead.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// HandleFormToken mints a token for API clients that render their own form.
func (h *Handler) HandleFormToken(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"token": newFormToken()})
}

// HandleLanguage switches the locale: to the posted lang when valid,
// otherwise to the other supported locale. It redirects back to the
// referring page of this site, or to / when there is none.
func (h *Handler) HandleLanguage(w http.ResponseWriter, r *http.Request) {
	current := domain.LocaleFromContext(r.Context())
	next := current.Toggle()
	if l, ok := domain.ParseLocale(r.FormValue(LangParam)); ok {
		next = l
	}
	SetLanguageCookie(w, next)
	http.Redirect(w, r, backPath(r), http.StatusSeeOther)
}

// backPath returns the path of a same-origin Referer, without any lang
// query param so the new cookie takes effect.
func backPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	if ref.Host != "" && !strings.EqualFold(ref.Host, r.Host) {
		return "/"
	}
	q := ref.Query()
	q.Del(LangParam)
	back := &url.URL{Path: ref.Path, RawQuery: q.Encode(), Fragment: ref.Fragment}
	return back.String()
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func statusFor(err error) int {
	switch domain.Code(err) {
	case domain.CodeValidation:
		return http.StatusUnprocessableEntity
	case domain.CodeSubmissionInFlight, domain.CodeAlreadySubmitted, domain.CodeDuplicateLead:
		return http.StatusConflict
	case domain.CodeMissingFormToken:
		return http.StatusBadRequest
	case domain.CodeSinkUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func fieldErrorsByName(in map[domain.Field]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for f, msg := range in {
		out[string(f)] = msg
	}
	return out
}
