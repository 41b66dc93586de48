package services

import "github.com/ertansel/siteapi/models"

// Locale selects which language variant of an article is projected and which
// language rejection messages are rendered in.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleTR Locale = "tr"
)

// ParseLocale validates a client-supplied locale string. An empty value
// defaults to English; anything other than the supported pair is rejected.
func ParseLocale(s string) (Locale, error) {
	switch Locale(s) {
	case LocaleEN, "":
		return LocaleEN, nil
	case LocaleTR:
		return LocaleTR, nil
	default:
		return "", ErrUnsupportedLocale
	}
}

// localeColumns maps a locale to the physical column names of the localized
// article fields. Column names are resolved here in application code and are
// never interpolated from user input.
var localeColumns = map[Locale]struct {
	Title       string
	Description string
	Content     string
}{
	LocaleEN: {Title: "title_en", Description: "description_en", Content: "content_en"},
	LocaleTR: {Title: "title_tr", Description: "description_tr", Content: "content_tr"},
}

// LocalizedTitle projects the article title for the given locale.
func LocalizedTitle(a *models.Article, loc Locale) string {
	if loc == LocaleTR {
		return a.TitleTR
	}
	return a.TitleEN
}

// LocalizedDescription projects the article description for the given locale.
func LocalizedDescription(a *models.Article, loc Locale) string {
	if loc == LocaleTR {
		return a.DescriptionTR
	}
	return a.DescriptionEN
}

// LocalizedContent projects the article body for the given locale.
func LocalizedContent(a *models.Article, loc Locale) string {
	if loc == LocaleTR {
		return a.ContentTR
	}
	return a.ContentEN
}

// rejectionMessages maps each business rejection to its human-readable display
// text per locale. Messages fall back to English for unrecognized locales.
var rejectionMessages = map[error]map[Locale]string{
	ErrSessionInvalid: {
		LocaleEN: "Your session is invalid, please refresh the page.",
		LocaleTR: "Oturumunuz geçersiz, lütfen sayfayı yenileyin.",
	},
	ErrAlreadyLiked: {
		LocaleEN: "You have already liked this article.",
		LocaleTR: "Bu yazıyı zaten beğendiniz.",
	},
	ErrNotLiked: {
		LocaleEN: "You have not liked this article yet.",
		LocaleTR: "Bu yazıyı henüz beğenmediniz.",
	},
	ErrEmptyContent: {
		LocaleEN: "Comment and name cannot be empty.",
		LocaleTR: "Yorum ve isim boş olamaz.",
	},
	ErrArticleNotFound: {
		LocaleEN: "The article does not exist.",
		LocaleTR: "Böyle bir yazı bulunamadı.",
	},
	ErrSessionUnknown: {
		LocaleEN: "Your session could not be found, please refresh the page.",
		LocaleTR: "Oturumunuz bulunamadı, lütfen sayfayı yenileyin.",
	},
	ErrCommentLimit: {
		LocaleEN: "You can write at most 2 comments per article.",
		LocaleTR: "Bir yazıya en fazla 2 yorum yazabilirsiniz.",
	},
	ErrContainsURL: {
		LocaleEN: "Comments cannot contain links.",
		LocaleTR: "Yorumlar bağlantı içeremez.",
	},
	ErrContentTooLong: {
		LocaleEN: "Comment cannot be longer than 500 characters.",
		LocaleTR: "Yorum 500 karakterden uzun olamaz.",
	},
	ErrNameTooLong: {
		LocaleEN: "Name cannot be longer than 35 characters.",
		LocaleTR: "İsim 35 karakterden uzun olamaz.",
	},
	ErrProfanity: {
		LocaleEN: "Please keep the language clean.",
		LocaleTR: "Lütfen nezaket kurallarına uyun.",
	},
	ErrSpamPattern: {
		LocaleEN: "Comment looks like spam.",
		LocaleTR: "Yorum spam olarak algılandı.",
	},
	ErrCommentNotFound: {
		LocaleEN: "Comment not found.",
		LocaleTR: "Yorum bulunamadı.",
	},
	ErrNotOwner: {
		LocaleEN: "You can only delete your own comments.",
		LocaleTR: "Sadece kendi yorumlarınızı silebilirsiniz.",
	},
}

// RejectionMessage returns the display text for a business rejection in the
// requested locale, falling back to English. Unknown errors yield an empty
// string so infrastructure failures never leak message-table text.
func RejectionMessage(err error, loc Locale) string {
	msgs, ok := rejectionMessages[err]
	if !ok {
		return ""
	}
	if m, ok := msgs[loc]; ok {
		return m
	}
	return msgs[LocaleEN]
}
