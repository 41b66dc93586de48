package services

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ertansel/siteapi/models"
)

const (
	maxCommentRunes       = 500
	maxAuthorNameRunes    = 35
	maxCommentsPerArticle = 2
	// a single character repeated this many times in a row marks spam
	spamRunLength = 6
)

// urlPattern flags URL-like substrings: explicit schemes, www-prefixed hosts,
// and bare domains with common TLDs.
var urlPattern = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+|\b[a-z0-9-]+\.(com|net|org|io|co|dev|me|app|xyz)(/\S*)?)`)

// Moderation is the comment moderation gate: every comment passes its fixed
// validation pipeline before persisting, and deletion is owner-only.
type Moderation struct {
	store Store
	now   func() time.Time
}

// NewModeration creates the moderation gate over the given store.
func NewModeration(store Store) *Moderation {
	return &Moderation{store: store, now: time.Now}
}

// CommentSubmission carries a submit-comment request into the gate. Body and
// AuthorName are expected to be markup-stripped by the transport layer.
type CommentSubmission struct {
	ArticleSlug string
	SessionID   string
	Body        string
	AuthorName  string
}

// Submit runs the validation pipeline in fixed order and persists the comment
// when every rule passes. The first failing rule wins; rules never accumulate.
func (m *Moderation) Submit(ctx context.Context, sub CommentSubmission) (*models.Comment, error) {
	body := strings.TrimSpace(sub.Body)
	name := strings.TrimSpace(sub.AuthorName)
	if body == "" || name == "" {
		return nil, ErrEmptyContent
	}

	article, err := m.store.ArticleBySlug(ctx, sub.ArticleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	sess, err := m.store.GetSession(ctx, sub.SessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionUnknown
	}

	// Best-effort cap: the count and the insert below are not atomic, so a
	// concurrent burst may slip an extra comment through.
	existing, err := m.store.CountSessionComments(ctx, article.InternalID, sess.ID)
	if err != nil {
		return nil, err
	}
	if existing >= maxCommentsPerArticle {
		return nil, ErrCommentLimit
	}

	if urlPattern.MatchString(body) {
		return nil, ErrContainsURL
	}
	if utf8.RuneCountInString(body) > maxCommentRunes {
		return nil, ErrContentTooLong
	}
	if utf8.RuneCountInString(name) > maxAuthorNameRunes {
		return nil, ErrNameTooLong
	}
	if ContainsProfanity(body) || ContainsProfanity(name) {
		return nil, ErrProfanity
	}
	if hasSpamRun(body) {
		return nil, ErrSpamPattern
	}

	comment := &models.Comment{
		ID:         uuid.NewString(),
		ArticleID:  article.InternalID,
		SessionID:  sess.ID,
		AuthorName: name,
		Body:       stripNewlines(body),
		CreatedAt:  m.now(),
	}
	if err := m.store.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment after verifying the requesting session wrote it.
// The ownership check happens strictly before the delete statement; a
// non-owner request never reaches the delete.
func (m *Moderation) Delete(ctx context.Context, commentID, sessionID string) error {
	comment, err := m.store.CommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.SessionID != sessionID {
		return ErrNotOwner
	}
	return m.store.DeleteComment(ctx, commentID)
}

// AdminDelete removes any comment without an ownership check. Reserved for
// the authenticated admin dashboard.
func (m *Moderation) AdminDelete(ctx context.Context, commentID string) error {
	comment, err := m.store.CommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	return m.store.DeleteComment(ctx, commentID)
}

// hasSpamRun reports whether s contains spamRunLength identical consecutive
// runes. Implemented as a scan; RE2 has no backreferences.
func hasSpamRun(s string) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= spamRunLength {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

func stripNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", " ")
}
