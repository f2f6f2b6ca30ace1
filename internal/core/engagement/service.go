package engagement

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"Penwall/internal/core/notifications"
	"Penwall/internal/core/posts"
	"Penwall/internal/core/profiles"
)

type ledgerService struct {
	repo        Repository
	postRepo    posts.Repository
	profileRepo profiles.Repository
	dispatcher  Dispatcher
}

// NewLedgerService creates the engagement ledger service
func NewLedgerService(
	repo Repository,
	postRepo posts.Repository,
	profileRepo profiles.Repository,
	dispatcher Dispatcher,
) Service {
	return &ledgerService{
		repo:        repo,
		postRepo:    postRepo,
		profileRepo: profileRepo,
		dispatcher:  dispatcher,
	}
}

// ToggleLike toggles the (actor, post) like edge and its counter.
// A like on someone else's post notifies the owner; an unlike never does,
// and neither does a self-like.
func (s *ledgerService) ToggleLike(ctx context.Context, actorID, postID string) (*ToggleLikeResult, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, fmt.Errorf("actor id is required")
	}
	if strings.TrimSpace(postID) == "" {
		return nil, fmt.Errorf("post id is required")
	}

	post, err := s.visiblePost(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked, err := s.repo.ToggleLike(ctx, actorID, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	if liked && post.UserID != actorID {
		s.dispatch(ctx, post.UserID, notifications.KindLike, actorID, "%s liked your post")
	}

	return &ToggleLikeResult{PostID: postID, Liked: liked}, nil
}

// ToggleFollow toggles the (actor, target) follow edge, adjusting
// followers_count on the target and following_count on the actor.
func (s *ledgerService) ToggleFollow(ctx context.Context, actorID, targetID string) (*ToggleFollowResult, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, fmt.Errorf("actor id is required")
	}
	if strings.TrimSpace(targetID) == "" {
		return nil, fmt.Errorf("target id is required")
	}
	if actorID == targetID {
		return nil, ErrSelfFollow
	}

	// Target must exist before any edge mutation
	if _, err := s.profileRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	following, err := s.repo.ToggleFollow(ctx, actorID, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle follow: %w", err)
	}

	if following {
		s.dispatch(ctx, targetID, notifications.KindFollow, actorID, "%s started following you")
	}

	return &ToggleFollowResult{TargetID: targetID, Following: following}, nil
}

// SubmitReport records a pending report against a post. Reports are not
// toggleable: a second report from the same reporter fails with
// ErrDuplicateReport and leaves reports_count untouched.
func (s *ledgerService) SubmitReport(ctx context.Context, actorID, postID, reason string) (*Report, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, fmt.Errorf("actor id is required")
	}
	if strings.TrimSpace(postID) == "" {
		return nil, fmt.Errorf("post id is required")
	}
	if !ValidReason(reason) {
		return nil, &ValidationError{Field: "reason", Reason: "must be one of the report categories"}
	}

	if _, err := s.visiblePost(ctx, postID); err != nil {
		return nil, err
	}

	report := &Report{
		ID:         uuid.NewString(),
		ReporterID: actorID,
		PostID:     postID,
		Reason:     reason,
		Status:     ReportStatusPending,
	}

	if err := s.repo.CreateReport(ctx, report); err != nil {
		if err == ErrDuplicateReport {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return report, nil
}

// CreatePost inserts a post and bumps the author's posts_count.
func (s *ledgerService) CreatePost(ctx context.Context, actorID, content string) (*posts.Post, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, fmt.Errorf("actor id is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, &ValidationError{Field: "content", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(content) > posts.MaxContentLength {
		return nil, &ValidationError{
			Field:  "content",
			Reason: fmt.Sprintf("must be at most %d characters", posts.MaxContentLength),
		}
	}

	post := &posts.Post{
		ID:      uuid.NewString(),
		UserID:  actorID,
		Content: content,
	}

	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// visiblePost loads a post and folds hidden into not-found, so callers can't
// distinguish moderated posts from missing ones.
func (s *ledgerService) visiblePost(ctx context.Context, postID string) (*posts.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.IsHidden {
		return nil, posts.ErrPostNotFound
	}
	return post, nil
}

// dispatch renders the notification content with the actor's pen name and
// hands it to the dispatcher. Failures are logged only: the engagement
// mutation has already committed and must not be rolled back or retried
// because a notification could not be written.
func (s *ledgerService) dispatch(ctx context.Context, recipientID, kind, actorID, format string) {
	actor, err := s.profileRepo.GetByID(ctx, actorID)
	if err != nil {
		log.Printf("Warning: failed to load actor %s for %s notification: %v", actorID, kind, err)
		return
	}

	content := fmt.Sprintf(format, actor.PenName)
	if err := s.dispatcher.Notify(ctx, recipientID, kind, content); err != nil {
		log.Printf("Warning: failed to dispatch %s notification to %s: %v", kind, recipientID, err)
	}
}
