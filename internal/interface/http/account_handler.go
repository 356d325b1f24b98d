package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-account-service/internal/application"
	"github.com/oksasatya/go-account-service/internal/interface/middleware"
	"github.com/oksasatya/go-account-service/pkg/helpers"
	"github.com/oksasatya/go-account-service/pkg/response"
	"github.com/oksasatya/go-account-service/pkg/validation"
)

// Messages are part of the wire contract; clients match on them.
const (
	MsgRegistered          = "User registered successfully!"
	MsgRegisterMissing     = "Username, email, and password are required."
	MsgAccountExists       = "Username or email already exists."
	MsgPasswordTooLong     = "Password must be at most 72 bytes."
	MsgLoginSuccess        = "Login successful!"
	MsgLoginMissing        = "Email and password are required"
	MsgInvalidCredentials  = "Invalid credentials"
	MsgInternalServerError = "Internal server error."
)

type AccountHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.Service, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Message string    `json:"message"`
	User    loginUser `json:"user"`
	Token   string    `json:"token"`
}

// Register POST /register {username, email, password}
func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logInvalidPayload(c, err)
		response.Error(c, http.StatusBadRequest, MsgRegisterMissing)
		return
	}

	_, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case err == nil:
		response.Message(c, http.StatusCreated, MsgRegistered)
	case errors.Is(err, application.ErrMissingField):
		response.Error(c, http.StatusBadRequest, MsgRegisterMissing)
	case errors.Is(err, application.ErrPasswordTooLong):
		response.Error(c, http.StatusBadRequest, MsgPasswordTooLong)
	case errors.Is(err, application.ErrAccountExists):
		response.Error(c, http.StatusConflict, MsgAccountExists)
	default:
		h.internalError(c, "register failed", err)
	}
}

// Login POST /login {email, password}
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logInvalidPayload(c, err)
		response.Error(c, http.StatusBadRequest, MsgLoginMissing)
		return
	}

	res, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, loginResponse{
			Message: MsgLoginSuccess,
			User:    loginUser{Username: res.Username, Email: res.Email},
			Token:   res.Token,
		})
	case errors.Is(err, application.ErrMissingField):
		response.Error(c, http.StatusBadRequest, MsgLoginMissing)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, MsgInvalidCredentials)
	default:
		h.internalError(c, "login failed", err)
	}
}

func (h *AccountHandler) logInvalidPayload(c *gin.Context, err error) {
	if h.Logger == nil {
		return
	}
	fields := logrus.Fields{"request_id": c.GetString(middleware.CtxRequestIDKey), "path": c.FullPath()}
	for k, v := range validation.ToDetails(err) {
		fields["invalid."+k] = v
	}
	h.Logger.WithFields(fields).Debug("rejected payload")
}

func (h *AccountHandler) internalError(c *gin.Context, msg string, err error) {
	_ = c.Error(err)
	helpers.LogError(h.Logger, msg, err, logrus.Fields{"request_id": c.GetString(middleware.CtxRequestIDKey)})
	response.Error(c, http.StatusInternalServerError, MsgInternalServerError)
}
