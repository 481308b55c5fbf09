package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-phone-auth/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page once the server answered.
type LoginResult struct {
	Err      error
	Response models.LoginResponse
}

// RegisterResult is produced by the register page once the server answered.
type RegisterResult struct {
	Err     error
	Phone   string
	Message string
}

// RegisterSuccessNotice is shown by the menu after a registration.
type RegisterSuccessNotice struct {
	Phone   string
	Message string
}

type meLoadedMsg struct {
	user models.UserSummary
	err  error
}

type copiedMsg struct {
	err error
}

type versionLoadedMsg struct {
	version string
	err     error
}
