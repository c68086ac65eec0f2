package auth

import (
	"net/http"

	"characterdex/internal/domain/user"
)

type registerInput struct {
	Body user.Credentials
}

type registerOutput struct {
	Body response
}

type loginInput struct {
	Body user.Credentials
}

type loginOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      response
}

type logoutInput struct {
	Token string `cookie:"auth_token"`
}

type logoutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      response
}

type response struct {
	Success bool `json:"success"`
	UserID  int  `json:"userId,omitempty"`
}
