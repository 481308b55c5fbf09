package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-phone-auth/internal/adapter"
	"github.com/MKhiriev/go-phone-auth/models"
)

const tokenPreviewLen = 48

// ProfileModel shows the signed-in user and the session token.
type ProfileModel struct {
	ctx    context.Context
	server adapter.ServerAdapter
	copy   func(string) error

	autoCopy bool

	user    models.UserSummary
	token   string
	status  string
	errMsg  string
	loading bool
}

func NewProfileModel(ctx context.Context, server adapter.ServerAdapter, copyFn func(string) error, autoCopy bool) *ProfileModel {
	return &ProfileModel{
		ctx:      ctx,
		server:   server,
		copy:     copyFn,
		autoCopy: autoCopy,
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	return nil
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.user = msg.Response.User
		m.token = msg.Response.Token
		m.status = msg.Response.Message
		m.errMsg = ""
		if m.autoCopy && m.token != "" {
			return m, m.cmdCopy()
		}
		return m, nil

	case meLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.errMsg = ""
		m.status = "资料已刷新"
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "复制失败: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "令牌已复制到剪贴板"
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.copy):
			if m.token == "" {
				return m, nil
			}
			return m, m.cmdCopy()
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, m.cmdMe()
		case key.Matches(msg, keys.logout):
			m.server.SetToken("")
			m.user = models.UserSummary{}
			m.token = ""
			m.status = ""
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
	}

	return m, nil
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(successStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("用户 ID │ %d\n", m.user.ID))
	b.WriteString(fmt.Sprintf("手机号  │ %s\n", m.user.Phone))
	b.WriteString(fmt.Sprintf("令牌    │ %s\n", fitText(m.token, tokenPreviewLen)))

	if m.loading {
		b.WriteString("\n[刷新中...]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
	}

	return renderPage("个人资料", strings.TrimRight(b.String(), "\n"), "c: 复制令牌 │ r: 刷新 │ l: 退出登录 │ v: 版本")
}

func (m *ProfileModel) cmdCopy() tea.Cmd {
	copyFn := m.copy
	token := m.token

	return func() tea.Msg {
		return copiedMsg{err: copyFn(token)}
	}
}

func (m *ProfileModel) cmdMe() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		user, err := server.Me(ctx)
		return meLoadedMsg{user: user, err: err}
	}
}
