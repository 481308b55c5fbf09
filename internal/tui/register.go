package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-phone-auth/internal/adapter"
	"github.com/MKhiriev/go-phone-auth/models"
)

// RegisterModel is the Bubble Tea model for the registration screen: phone,
// password and password confirmation. On success it resets the form and
// navigates back to the menu with a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, server adapter.ServerAdapter) *RegisterModel {
	return &RegisterModel{
		ctx:    ctx,
		server: server,
		inputs: []textinput.Model{
			newPhoneInput(),
			newPasswordInput("密码"),
			newPasswordInput("确认密码"),
		},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		resetInputs(m.inputs)
		m.focus = 0
		notice := RegisterSuccessNotice{Phone: result.Phone, Message: result.Message}
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: notice} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.focus = moveFocus(m.inputs, m.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focus = moveFocus(m.inputs, m.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			phone := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			switch {
			case phone == "" || pass == "":
				m.errMsg = "手机号和密码不能为空"
				return m, nil
			case pass != m.inputs[2].Value():
				m.errMsg = "两次输入的密码不一致"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(models.Credentials{Phone: phone, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	labels := []string{"手机号  ", "密码    ", "确认密码"}

	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[注册中...]\n")
	} else {
		b.WriteString("\n[注册]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
	}

	return renderPage("注册", strings.TrimRight(b.String(), "\n"), "esc: 返回 │ tab: 下一项 │ enter: 确认")
}

func (m *RegisterModel) cmdRegister(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		msg, err := server.Register(ctx, creds)
		return RegisterResult{Err: err, Phone: creds.Phone, Message: msg}
	}
}
