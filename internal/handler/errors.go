// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config has no HTTP address, so
// there is nothing to serve.
var errNoHandlersAreCreated = errors.New("no http handler: server address is empty")
