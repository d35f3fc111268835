// Package controllers wires HTTP requests to the service layer.
package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/cartinhas/app/services"
	"github.com/shashiranjanraj/cartinhas/pkg/ctx"
	"github.com/shashiranjanraj/cartinhas/pkg/middleware"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type registerInput struct {
	Name                 string `json:"name" validate:"required,min=2"`
	Email                string `json:"email" validate:"required,email"`
	Phone                string `json:"phone" validate:"nullable,min=8"`
	Password             string `json:"password" validate:"required,min=6,confirmed"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

func (c *AuthController) Register(cc *ctx.Context) {
	var input registerInput
	if !cc.BindJSON(&input) {
		return
	}

	user, err := c.service.Register(input.Name, input.Email, input.Phone, input.Password)
	if err == services.ErrEmailTaken {
		cc.ValidationError(map[string]string{"email": "email already registered"})
		return
	}
	if err != nil {
		cc.Error(http.StatusInternalServerError, "could not create account")
		return
	}

	cc.Created(user)
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *AuthController) Login(cc *ctx.Context) {
	var input loginInput
	if !cc.BindJSON(&input) {
		return
	}

	token, user, err := c.service.Login(input.Email, input.Password)
	if err == services.ErrInvalidCredentials {
		cc.Error(http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		cc.Error(http.StatusInternalServerError, "login failed")
		return
	}

	cc.Success(map[string]any{
		"token": token,
		"user":  user,
	})
}

func (c *AuthController) Logout(cc *ctx.Context) {
	claims, ok := middleware.ClaimsFromCtx(cc.Context())
	if !ok {
		cc.Unauthorized()
		return
	}

	if err := c.service.Logout(cc.Context(), claims); err != nil {
		cc.Error(http.StatusInternalServerError, "logout failed")
		return
	}
	cc.Success(map[string]string{"message": "logged out"})
}

func (c *AuthController) Me(cc *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(cc.Context())
	if !ok {
		cc.Unauthorized()
		return
	}

	user, err := c.service.Me(userID)
	if err != nil {
		cc.Unauthorized()
		return
	}
	cc.Success(user)
}
