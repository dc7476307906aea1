// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import "context"

// Repository defines the persistence contract for comments.
type Repository interface {

	/*
		ListByVideo returns a page of a video's comments, newest first, joined
		with the owner profile. Comments whose owner is gone are skipped.

		Returns:
		  - []*Comment: Never nil; VideoID and UpdatedAt are left empty
		  - int: Total comments on the video
	*/
	ListByVideo(context context.Context, videoID string, limit, offset int) ([]*Comment, int, error)

	// FindByID returns a comment or NOT_FOUND.
	FindByID(context context.Context, id string) (*Comment, error)

	/*
		Create persists a comment.

		Returns:
		  - error: NOT_FOUND when the video does not exist
	*/
	Create(context context.Context, comment *Comment) error

	// Update persists new content and refreshes UpdatedAt.
	Update(context context.Context, comment *Comment) error

	// Delete removes a comment. Its likes cascade.
	Delete(context context.Context, id string) error
}
