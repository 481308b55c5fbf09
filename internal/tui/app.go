// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-phone-auth/internal/adapter"
	"github.com/MKhiriev/go-phone-auth/models"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageProfile  = "profile"
)

// RootModel is the top-level Bubble Tea model. It owns every page, routes
// messages to the active one and handles the global hot keys: ctrl+c quits
// and v toggles the build info window.
type RootModel struct {
	ctx       context.Context
	server    adapter.ServerAdapter
	buildInfo models.AppBuildInfo

	pages   map[string]tea.Model
	current string

	showInfo      bool
	serverVersion string

	quitting bool
}

// NewRootModel creates a [RootModel] starting on the menu page.
func NewRootModel(ctx context.Context, server adapter.ServerAdapter, buildInfo models.AppBuildInfo, copyFn func(string) error, autoCopy bool) *RootModel {
	return &RootModel{
		ctx:       ctx,
		server:    server,
		buildInfo: buildInfo,
		pages: map[string]tea.Model{
			pageMenu:     NewMenuModel(),
			pageLogin:    NewLoginModel(ctx, server),
			pageRegister: NewRegisterModel(ctx, server),
			pageProfile:  NewProfileModel(ctx, server, copyFn, autoCopy),
		},
		current: pageMenu,
	}
}

// Init implements [tea.Model].
func (m *RootModel) Init() tea.Cmd {
	return m.pages[m.current].Init()
}

// Update implements [tea.Model].
func (m *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitting = true
			return m, tea.Quit
		}

		if m.showInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showInfo = false
			}
			return m, nil
		}

		// v would be swallowed by text inputs on the form pages.
		if key.Matches(msg, keys.version) && (m.current == pageMenu || m.current == pageProfile) {
			m.showInfo = true
			return m, m.cmdVersion()
		}

	case versionLoadedMsg:
		if msg.err != nil {
			m.serverVersion = ""
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil

	case NavigateTo:
		return m.navigate(msg)

	case LoginResult:
		updated, cmd := m.pages[pageLogin].Update(msg)
		m.pages[pageLogin] = updated
		if msg.Err != nil {
			return m, cmd
		}
		next, profileCmd := m.navigate(NavigateTo{Page: pageProfile, Payload: msg})
		return next, tea.Batch(cmd, profileCmd)
	}

	updated, cmd := m.pages[m.current].Update(msg)
	m.pages[m.current] = updated
	return m, cmd
}

// View implements [tea.Model].
func (m *RootModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}
	return m.pages[m.current].View()
}

// Quitting reports whether the user asked to leave the program.
func (m *RootModel) Quitting() bool {
	return m.quitting
}

func (m *RootModel) navigate(to NavigateTo) (tea.Model, tea.Cmd) {
	page, ok := m.pages[to.Page]
	if !ok {
		return m, nil
	}

	m.current = to.Page
	if to.Payload == nil {
		return m, page.Init()
	}

	updated, cmd := page.Update(to.Payload)
	m.pages[to.Page] = updated
	return m, cmd
}

func (m *RootModel) cmdVersion() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		v, err := server.Version(ctx)
		return versionLoadedMsg{version: v, err: err}
	}
}
