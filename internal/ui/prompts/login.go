package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/ffly/internal/firefly"
	"github.com/hance08/ffly/internal/validation"
)

// PromptLogin asks for the server URL and a personal access token.
func PromptLogin(url, token *string) error {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Firefly III URL:").
			Description("e.g. https://firefly.example.com").
			Value(url).
			Validate(ValidateServerURL),
		huh.NewInput().
			Title("Personal Access Token:").
			Description("Profile > OAuth > Personal Access Tokens").
			EchoMode(huh.EchoModePassword).
			Value(token).
			Validate(validation.Required("token")),
	)).Run()
}

func ValidateServerURL(s string) error {
	if err := validation.Required("URL")(s); err != nil {
		return err
	}
	_, err := firefly.BaseURL(s)
	return err
}
