// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tweet

import "context"

// Repository defines the persistence contract for tweets.
type Repository interface {

	/*
		List returns a page of tweets, newest first, with owner profiles.
		An empty ownerID lists every tweet.
	*/
	List(context context.Context, ownerID string, limit, offset int) ([]*Tweet, int, error)

	// FindByID returns a tweet with its owner profile, or NOT_FOUND.
	FindByID(context context.Context, id string) (*Tweet, error)

	Create(context context.Context, tweet *Tweet) error

	// Update persists new content and refreshes UpdatedAt.
	Update(context context.Context, tweet *Tweet) error

	Delete(context context.Context, id string) error
}
