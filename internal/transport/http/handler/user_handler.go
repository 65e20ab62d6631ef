package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-job-board/internal/core/auth"
	"go-job-board/internal/domain"
	resp "go-job-board/internal/transport/http/response"
)

type UserHandler struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewUserHandler(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, jwter: jwter, log: log}
}

type tokenResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *UserHandler) Signup(c *gin.Context) {
	var in signupPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if msgs := validatePayload(&in); len(msgs) > 0 {
		resp.Error(c, http.StatusBadRequest, strings.Join(msgs, "; "))
		return
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		resp.Error(c, http.StatusBadRequest, "password could not be processed")
		return
	}

	u := domain.User{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(in.Name),
		Username:         strings.TrimSpace(in.Username),
		Email:            strings.TrimSpace(in.Email),
		PasswordHash:     hash,
		PhoneNumber:      in.PhoneNumber,
		Gender:           in.Gender,
		DateOfBirth:      in.DateOfBirth,
		MembershipStatus: in.MembershipStatus,
		Address:          in.Address,
		ProfilePicture:   in.ProfilePicture,
	}

	// uniqueness rides on the store's unique index; a lost race surfaces
	// here as a duplicate-key error, not a second record
	if err := h.users.Create(c.Request.Context(), &u); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			resp.Error(c, http.StatusBadRequest, "username already in use")
			return
		}
		h.log.Error("create user", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "could not create user")
		return
	}

	token, err := h.jwter.Issue(u.ID)
	if err != nil {
		h.log.Error("issue token", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "could not issue token")
		return
	}
	c.JSON(http.StatusCreated, tokenResponse{Token: token, User: &u})
}

func (h *UserHandler) Login(c *gin.Context) {
	var in loginPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if msgs := validatePayload(&in); len(msgs) > 0 {
		resp.Error(c, http.StatusBadRequest, strings.Join(msgs, "; "))
		return
	}

	// the same message for an unknown username and a bad password, so the
	// endpoint cannot be used to enumerate accounts
	const badCredentials = "incorrect username or password"

	u, err := h.users.FindByUsername(c.Request.Context(), strings.TrimSpace(in.Username))
	if errors.Is(err, domain.ErrNotFound) {
		resp.Error(c, http.StatusBadRequest, badCredentials)
		return
	}
	if err != nil {
		h.log.Error("find user", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "could not log in")
		return
	}
	if !auth.CheckPassword(in.Password, u.PasswordHash) {
		resp.Error(c, http.StatusBadRequest, badCredentials)
		return
	}

	token, err := h.jwter.Issue(u.ID)
	if err != nil {
		h.log.Error("issue token", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "could not issue token")
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: token, User: u})
}
