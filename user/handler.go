// Package user implements the account API: signup, login, profile access,
// and the admin management endpoints. Handlers are thin glue: schema
// validation, rate limiting, authentication, and authorization all run as
// pipeline stages before a handler is reached.
package user

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/userd/auth"
	"github.com/skillsenselab/userd/auth/authctx"
	"github.com/skillsenselab/userd/auth/password"
	"github.com/skillsenselab/userd/auth/token"
	"github.com/skillsenselab/userd/errors"
	"github.com/skillsenselab/userd/logger"
	"github.com/skillsenselab/userd/server"
	"github.com/skillsenselab/userd/server/middleware"
	"github.com/skillsenselab/userd/store"
	"github.com/skillsenselab/userd/validation"
)

// Handler holds the collaborators for the account API.
type Handler struct {
	store   store.UserStore
	hasher  password.Hasher
	codec   *token.Codec
	respond *server.Responder
	log     *logger.Logger
}

// NewHandler creates the account API handler.
func NewHandler(s store.UserStore, h password.Hasher, c *token.Codec, r *server.Responder, log *logger.Logger) *Handler {
	return &Handler{
		store:   s,
		hasher:  h,
		codec:   c,
		respond: r,
		log:     log.WithComponent("user"),
	}
}

// Signup registers a new account. The password digest is computed before the
// uniqueness check result is known, so response timing does not reveal
// whether an email is taken.
func (h *Handler) Signup(c *gin.Context) {
	req := middleware.Body[validation.SignupRequest](c)

	digest, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.respond.Error(c, errors.Internal(err))
		return
	}

	u := &store.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Address:        req.Address,
		Email:          req.Email,
		Phone:          req.Phone,
		PasswordDigest: digest,
		Role:           auth.RoleUser,
		Active:         true,
	}
	id, err := h.store.Insert(c.Request.Context(), u)
	if err != nil {
		h.respond.Error(c, classifyStoreError(err, "user"))
		return
	}

	created, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, classifyStoreError(err, "user"))
		return
	}

	h.log.Info("User registered", logger.Fields(logger.FieldUserID, id, logger.FieldEmail, created.Email))
	h.respond.Created(c, gin.H{"user": created})
}

// Login verifies credentials and issues a token. Unknown email, wrong
// password, and disabled account all yield the same generic 401 so the
// endpoint cannot be used to probe which emails exist.
func (h *Handler) Login(c *gin.Context) {
	req := middleware.Body[validation.LoginRequest](c)

	u, err := h.store.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			h.respond.Error(c, invalidCredentials())
			return
		}
		h.respond.Error(c, classifyStoreError(err, "user"))
		return
	}

	if err := h.hasher.Verify(req.Password, u.PasswordDigest); err != nil {
		h.respond.Error(c, invalidCredentials())
		return
	}
	if !u.Active {
		h.respond.Error(c, invalidCredentials())
		return
	}

	signed, err := h.codec.Issue(u.Principal(), 0)
	if err != nil {
		h.respond.Error(c, errors.Internal(err))
		return
	}

	h.log.Info("User logged in", logger.Fields(logger.FieldUserID, u.ID))
	h.respond.OK(c, gin.H{"token": signed, "user": u})
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(c *gin.Context) {
	principal, err := authctx.GetOrError(c.Request.Context())
	if err != nil {
		h.respond.Error(c, errors.Authentication(""))
		return
	}

	u, err := h.store.FindByID(c.Request.Context(), principal.ID)
	if err != nil {
		h.respond.Error(c, classifyStoreError(err, "user"))
		return
	}
	h.respond.OK(c, gin.H{"user": u})
}

// UpdateMe applies a partial update to the authenticated user's profile.
func (h *Handler) UpdateMe(c *gin.Context) {
	principal, err := authctx.GetOrError(c.Request.Context())
	if err != nil {
		h.respond.Error(c, errors.Authentication(""))
		return
	}
	req := middleware.Body[validation.UpdateProfileRequest](c)

	u, err := h.store.UpdateFields(c.Request.Context(), principal.ID, req.Fields())
	if err != nil {
		h.respond.Error(c, classifyStoreError(err, "user"))
		return
	}

	h.log.Info("Profile updated", logger.Fields(logger.FieldUserID, principal.ID))
	h.respond.OK(c, gin.H{"user": u})
}

// List returns a page of users, newest first. Admin only.
func (h *Handler) List(c *gin.Context) {
	q := middleware.Query[validation.ListQuery](c)

	users, total, err := h.store.List(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		h.respond.Error(c, classifyStoreError(err, "user"))
		return
	}

	pages := (total + q.Limit - 1) / q.Limit
	h.respond.OK(c, gin.H{
		"users": users,
		"meta": server.Meta{
			Total:  total,
			Limit:  q.Limit,
			Offset: q.Offset,
			Page:   q.Offset/q.Limit + 1,
			Pages:  pages,
		},
	})
}

// Delete removes a user by id. Owner or admin.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, classifyStoreError(err, "user"))
		return
	}

	h.log.Info("User deleted", logger.Fields(logger.FieldUserID, deleted.ID))
	h.respond.Message(c, "User deleted successfully.", gin.H{"id": deleted.ID})
}

// ToggleStatus flips a user's active flag. Admin only.
func (h *Handler) ToggleStatus(c *gin.Context) {
	id := c.Param("id")

	u, err := h.store.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, classifyStoreError(err, "user"))
		return
	}

	h.log.Info("User status toggled", logger.Fields(logger.FieldUserID, u.ID, "active", u.Active))
	h.respond.OK(c, gin.H{"user": u})
}

// invalidCredentials is the single 401 used for every login failure mode.
func invalidCredentials() error {
	return errors.Authentication("Invalid email or password.")
}

// classifyStoreError re-expresses store sentinels in the error taxonomy.
// Anything else is a storage fault the client must not see.
func classifyStoreError(err error, resource string) error {
	switch {
	case stderrors.Is(err, store.ErrNotFound):
		return errors.NotFound(resource)
	case stderrors.Is(err, store.ErrDuplicateEmail):
		return errors.Conflict("An account with this email already exists.")
	default:
		return errors.Database(err)
	}
}
