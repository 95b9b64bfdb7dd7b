package forms

import (
	"net/url"
	"strings"
)

// LoginSchema validates the admin login form.
var LoginSchema = []Field{
	{
		Name: "username", Label: "Nom d'utilisateur",
		Required:        true,
		RequiredMessage: "Le nom d'utilisateur est obligatoire",
	},
	{
		Name: "password", Label: "Mot de passe",
		Required:        true,
		RequiredMessage: "Le mot de passe est obligatoire",
	},
}

// Login is a validated login attempt.
type Login struct {
	Username string
	Password string
}

// ParseLogin validates a login submission.
func ParseLogin(values url.Values) (*Login, Errors) {
	errs := Validate(LoginSchema, values.Get)
	if len(errs) > 0 {
		return nil, errs
	}
	return &Login{
		Username: strings.TrimSpace(values.Get("username")),
		// The password is compared verbatim, not trimmed.
		Password: values.Get("password"),
	}, nil
}

// WhatsAppSettingsSchema validates the invitation-link form.
var WhatsAppSettingsSchema = []Field{
	{
		Name: "whatsapp_group_link", Label: "Lien du groupe WhatsApp",
		Required: true, MinLen: 10, MaxLen: 500,
		RequiredMessage: "Le lien du groupe WhatsApp est obligatoire",
		LengthMessage:   "Le lien doit contenir entre 10 et 500 caractères",
	},
}

// WhatsAppSettings is a validated invitation-link update.
type WhatsAppSettings struct {
	GroupLink string
}

// ParseWhatsAppSettings validates a settings submission.
func ParseWhatsAppSettings(values url.Values) (*WhatsAppSettings, Errors) {
	errs := Validate(WhatsAppSettingsSchema, values.Get)
	if len(errs) > 0 {
		return nil, errs
	}
	return &WhatsAppSettings{
		GroupLink: strings.TrimSpace(values.Get("whatsapp_group_link")),
	}, nil
}
