// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Avdeyev

package http

import (
	"errors"
	"net/http"

	"github.com/avdeyev/authgate/internal/service"
	"github.com/avdeyev/authgate/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrIPBlocked:           http.StatusForbidden,
	service.ErrTooManyAttempts:     http.StatusForbidden,
	service.ErrAccountDisabled:     http.StatusForbidden,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrEmailAlreadyExists:    http.StatusBadRequest,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrNoBlockWasFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
