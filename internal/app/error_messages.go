// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-phone-auth server handlers and middleware.
//
// All Msg* constants are the message strings written into HTTP response
// bodies. The public API speaks to a Chinese-language front end, so the
// wording here is part of the wire contract.
package app

const (
	// MsgRegistered is returned after a user record was created.
	MsgRegistered = "注册成功"

	// MsgLoggedIn is returned together with a freshly issued token.
	MsgLoggedIn = "登录成功"

	// MsgPhoneAlreadyExists is returned when a registration attempt is
	// rejected because the phone is already in use.
	MsgPhoneAlreadyExists = "用户名已存在"

	// MsgInvalidCredentials is returned both for an unknown phone and for a
	// wrong password, so the two cases are indistinguishable.
	MsgInvalidCredentials = "手机号或密码错误"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "服务器错误"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "请求数据无效"

	// MsgTokenIsExpired is returned when a bearer token is well-formed but
	// past its expiry time.
	MsgTokenIsExpired = "令牌已过期"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// malformed or signed with another key.
	MsgTokenIsExpiredOrInvalid = "令牌无效或已过期"

	// MsgVersionIsNotSpecified is returned by the version endpoint when the
	// server was started without a build version.
	MsgVersionIsNotSpecified = "版本未指定"
)
