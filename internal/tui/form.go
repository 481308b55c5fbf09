package tui

import "github.com/charmbracelet/bubbles/textinput"

const (
	phoneCharLimit    = 20
	passwordCharLimit = 72
	inputWidth        = 40
)

func newPhoneInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "手机号"
	in.CharLimit = phoneCharLimit
	in.Width = inputWidth
	in.Focus()
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = passwordCharLimit
	in.Width = inputWidth
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// moveFocus blurs the focused input and focuses the one delta steps away,
// wrapping around. It returns the new focus index.
func moveFocus(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func resetInputs(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].Reset()
		inputs[i].Blur()
	}
	inputs[0].Focus()
}
