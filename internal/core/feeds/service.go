package feeds

import (
	"context"
	"fmt"
	"strings"

	"Penwall/internal/core/profiles"
)

type feedService struct {
	repo         Repository
	likeLookup   LikeLookup
	followLookup FollowLookup
	profileRepo  profiles.Repository
}

// NewFeedService creates a new feed assembler service
func NewFeedService(
	repo Repository,
	likeLookup LikeLookup,
	followLookup FollowLookup,
	profileRepo profiles.Repository,
) Service {
	return &feedService{
		repo:         repo,
		likeLookup:   likeLookup,
		followLookup: followLookup,
		profileRepo:  profileRepo,
	}
}

// ListFeed retrieves the sorted, viewer-annotated wall feed.
func (s *feedService) ListFeed(ctx context.Context, viewerID, sort string, limit int) ([]*FeedPost, error) {
	sort = NormalizeSort(sort)
	limit = NormalizeLimit(limit)

	feedPosts, err := s.repo.ListFeed(ctx, sort, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed: %w", err)
	}

	if err := s.annotateViewerLikes(ctx, viewerID, feedPosts); err != nil {
		return nil, err
	}

	return feedPosts, nil
}

// ListByProfile retrieves one author's wall plus the viewer's follow state.
func (s *feedService) ListByProfile(ctx context.Context, penName, viewerID string) (*ProfileFeed, error) {
	penName = strings.TrimSpace(penName)
	if penName == "" {
		return nil, fmt.Errorf("pen name is required")
	}

	profile, err := s.profileRepo.GetByPenName(ctx, penName)
	if err != nil {
		return nil, err
	}

	feedPosts, err := s.repo.ListByAuthor(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for %s: %w", penName, err)
	}

	if err := s.annotateViewerLikes(ctx, viewerID, feedPosts); err != nil {
		return nil, err
	}

	result := &ProfileFeed{
		Profile: &ProfileView{
			CreatedAt:      profile.CreatedAt,
			ID:             profile.ID,
			PenName:        profile.PenName,
			FollowersCount: profile.FollowersCount,
			FollowingCount: profile.FollowingCount,
			PostsCount:     profile.PostsCount,
		},
		Posts: feedPosts,
	}

	// Follow state only applies when someone else's wall is being viewed
	if viewerID != "" && viewerID != profile.ID {
		isFollowing, err := s.followLookup.IsFollowing(ctx, viewerID, profile.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up follow state: %w", err)
		}
		result.IsFollowing = isFollowing
	}

	return result, nil
}

// annotateViewerLikes stamps IsLiked on each post from one batch edge lookup.
// Anonymous viewers keep the zero value (false) everywhere.
func (s *feedService) annotateViewerLikes(ctx context.Context, viewerID string, feedPosts []*FeedPost) error {
	if viewerID == "" || len(feedPosts) == 0 {
		return nil
	}

	postIDs := make([]string, 0, len(feedPosts))
	for _, feedPost := range feedPosts {
		postIDs = append(postIDs, feedPost.ID)
	}

	liked, err := s.likeLookup.LikedPostIDs(ctx, viewerID, postIDs)
	if err != nil {
		return fmt.Errorf("failed to look up viewer likes: %w", err)
	}

	for _, feedPost := range feedPosts {
		feedPost.IsLiked = liked[feedPost.ID]
	}

	return nil
}
