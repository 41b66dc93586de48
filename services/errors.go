package services

import "errors"

// Business-rule rejections and validation failures returned by the services
// layer. These are routine outcomes: controllers translate them into typed
// response signals, infrastructure errors pass through untouched.
var (
	// engagement
	ErrSessionInvalid = errors.New("session id is not known")
	ErrAlreadyLiked   = errors.New("session already liked this article")
	ErrNotLiked       = errors.New("session has not liked this article")

	// comment moderation gate, in pipeline order
	ErrEmptyContent    = errors.New("content or author name is empty")
	ErrArticleNotFound = errors.New("article does not exist")
	ErrSessionUnknown  = errors.New("session does not exist")
	ErrCommentLimit    = errors.New("comment limit for this article reached")
	ErrContainsURL     = errors.New("comment contains a url")
	ErrContentTooLong  = errors.New("comment content too long")
	ErrNameTooLong     = errors.New("author name too long")
	ErrProfanity       = errors.New("content contains profanity")
	ErrSpamPattern     = errors.New("content contains repeated character spam")

	// comment deletion
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotOwner        = errors.New("comment belongs to another session")

	// listing
	ErrInvalidPage       = errors.New("page must be 1 or greater")
	ErrPageOutOfRange    = errors.New("page is beyond the last page")
	ErrUnsupportedLocale = errors.New("unsupported locale")
)
