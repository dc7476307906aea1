// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package like

import "context"

// Repository defines the persistence contract for likes.
type Repository interface {

	// Remove deletes the (target, user) like and reports whether one existed.
	Remove(context context.Context, target Target, userID string) (bool, error)

	/*
		Add inserts the (target, user) like. An existing like is not an error.

		Returns:
		  - error: NOT_FOUND when the target does not exist
	*/
	Add(context context.Context, like *Like) error

	/*
		ListLikedVideos returns the user's liked videos, newest like first.
		Only videos that are published or owned by the user are included.
	*/
	ListLikedVideos(context context.Context, userID string, limit, offset int) ([]*LikedVideo, int, error)
}
