// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-phone-auth/internal/adapter"
)

// ErrUserQuit is returned by [TUI.Run] when the user pressed ctrl+c.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns err into text for the user: the server's own message
// when there is one, a fixed notice for network failures, err's text
// otherwise.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		return adapter.UserMessage(err)
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "网络不可用或服务器无法访问"
	}

	return err.Error()
}
