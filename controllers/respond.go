package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ertansel/siteapi/services"
	"github.com/ertansel/siteapi/utils"
)

// Signals carried in the response envelope's message field.
const (
	SignalSuccess       = "SUCCESS"
	SignalLikeSuccess   = "POST_LIKE_SUCCESS"
	SignalUnlikeSuccess = "POST_UNLIKE_SUCCESS"
	SignalShareSuccess  = "SHARE_SUCCESS"
	SignalDeleteSuccess = "DELETE_SUCCESS"
	SignalFailure       = "FAILURE"
)

type rejection struct {
	status int
	code   int
	signal string
}

// serviceRejections maps each services sentinel to its HTTP status, app code
// and wire signal.
var serviceRejections = map[error]rejection{
	services.ErrSessionInvalid:    {http.StatusBadRequest, 40010, "SESSION_ID_INVALID"},
	services.ErrAlreadyLiked:      {http.StatusConflict, 40910, "USER_ALREADY_LIKED"},
	services.ErrNotLiked:          {http.StatusConflict, 40911, "USER_NOT_LIKED_POST"},
	services.ErrEmptyContent:      {http.StatusBadRequest, 40020, "CONTENT_OR_NAME_CANNOT_BE_EMPTY"},
	services.ErrArticleNotFound:   {http.StatusNotFound, 40401, "ARTICLE_NOT_EXISTS"},
	services.ErrSessionUnknown:    {http.StatusBadRequest, 40021, "SESSION_NOT_EXISTS"},
	services.ErrCommentLimit:      {http.StatusBadRequest, 40022, "MAX_2_COMMENT"},
	services.ErrContainsURL:       {http.StatusBadRequest, 40023, "COMMENT_CONTAINS_URL"},
	services.ErrContentTooLong:    {http.StatusBadRequest, 40024, "CONTENT_TOO_LONG"},
	services.ErrNameTooLong:       {http.StatusBadRequest, 40025, "AUTHOR_NAME_TOO_LONG"},
	services.ErrProfanity:         {http.StatusBadRequest, 40026, "CONTAINS_BAD_WORDS"},
	services.ErrSpamPattern:       {http.StatusBadRequest, 40027, "REPEATED_CHAR_SPAM"},
	services.ErrCommentNotFound:   {http.StatusNotFound, 40402, "COMMENT_NOT_FOUND"},
	services.ErrNotOwner:          {http.StatusForbidden, 40310, "SID_DOES_NOT_MATCH"},
	services.ErrInvalidPage:       {http.StatusBadRequest, 40030, SignalFailure},
	services.ErrPageOutOfRange:    {http.StatusBadRequest, 40031, SignalFailure},
	services.ErrUnsupportedLocale: {http.StatusBadRequest, 40032, SignalFailure},
}

// respondServiceError writes a typed rejection for known business errors,
// with a localized display message, and a generic 500 for everything else.
func respondServiceError(ctx *gin.Context, err error, loc services.Locale) {
	for sentinel, r := range serviceRejections {
		if errors.Is(err, sentinel) {
			utils.Reject(ctx, r.status, r.code, r.signal, services.RejectionMessage(sentinel, loc))
			return
		}
	}
	if utils.Sugar != nil {
		utils.Sugar.Errorf("internal error on %s: %v", ctx.FullPath(), err)
	}
	utils.Error(ctx, http.StatusInternalServerError, 50000, SignalFailure)
}
