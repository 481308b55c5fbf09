// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (phone and masked password) and dispatches an async login
// command on submission. The resulting [LoginResult] is handled by
// [RootModel], which opens the profile page on success.
type LoginModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel]; the phone field receives focus.
func NewLoginModel(ctx context.Context, server adapter.ServerAdapter) *LoginModel {
	return &LoginModel{
		ctx:    ctx,
		server: server,
		inputs: []textinput.Model{newPhoneInput(), newPasswordInput("密码")},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult] clears the submitting state and shows a failure;
//   - esc navigates back to the menu;
//   - tab / shift+tab move the focus;
//   - enter checks that both fields are filled and sends the login request.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}
		m.errMsg = ""
		resetInputs(m.inputs)
		m.focus = 0
		return m, nil
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
			if phone == "" || pass == "" {
				m.errMsg = "手机号和密码不能为空"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(models.Credentials{Phone: phone, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("手机号 │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("密码   │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[登录中...]\n")
	} else {
		b.WriteString("\n[登录]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
	}

	return renderPage("登录", strings.TrimRight(b.String(), "\n"), "esc: 返回 │ tab: 下一项 │ enter: 确认")
}

func (m *LoginModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		resp, err := server.Login(ctx, creds)
		return LoginResult{Err: err, Response: resp}
	}
}
