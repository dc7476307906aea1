// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import "context"

// Repository defines the persistence contract for videos.
type Repository interface {

	/*
		List returns one page of published videos matching filter, each with
		its owner profile, and the total number of matches.
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Video, int, error)

	/*
		ListByOwner returns every video of a channel, newest first, with the
		owner profile. Unpublished videos are included only when asked.
	*/
	ListByOwner(context context.Context, ownerID string, includeUnpublished bool) ([]*Video, error)

	/*
		FindByID returns the video without its owner profile.

		Returns:
		  - error: NOT_FOUND if missing
	*/
	FindByID(context context.Context, id string) (*Video, error)

	/*
		IncrementViews adds exactly one view in a single statement and
		returns the updated video with its owner profile.

		Returns:
		  - error: NOT_FOUND if the video disappeared
	*/
	IncrementViews(context context.Context, id string) (*Video, error)

	/*
		TogglePublish negates the publish state in a single statement and
		returns the updated video with its owner profile. No other column is
		written.

		Returns:
		  - error: NOT_FOUND if the video disappeared
	*/
	TogglePublish(context context.Context, id string) (*Video, error)

	// Create persists a new video and fills its timestamps.
	Create(context context.Context, video *Video) error

	/*
		Update persists title, description, thumbnail and publish state and
		refreshes UpdatedAt.
	*/
	Update(context context.Context, video *Video) error

	// Delete removes the video. Comments, likes and playlist references cascade.
	Delete(context context.Context, id string) error
}
