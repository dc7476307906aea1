// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "github.com/taibuivan/vidtube/internal/platform/apperr"

// EnsureOwner returns a FORBIDDEN error unless actorID owns the resource.
//
// Callers must have loaded the resource first: a missing resource is a
// NOT_FOUND, never a FORBIDDEN.
func EnsureOwner(ownerID, actorID, message string) error {
	if ownerID == "" || ownerID != actorID {
		return apperr.Forbidden(message)
	}
	return nil
}
