// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("server needs an http handler and a listen address")
	errNoServersToRun      = errors.New("server has no http server to run")
)
