package domain

// UserRole is the account role stored with the user.
type UserRole string

const (
	RoleGuest  UserRole = "guest"
	RoleJamaah UserRole = "jamaah"
	RoleAdmin  UserRole = "admin"
)

// View is the role-based presentation a client switches into.
// Ustadz is a flag on a jamaah account, not a role of its own.
type View string

const (
	ViewGuest  View = "guest"
	ViewJamaah View = "jamaah"
	ViewUstadz View = "ustadz"
	ViewAdmin  View = "admin"
)

// PostCategory classifies posts.
type PostCategory string

const (
	CategoryNews         PostCategory = "Berita"
	CategoryArticle      PostCategory = "Artikel"
	CategoryAnnouncement PostCategory = "Pengumuman"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// MediaType is the kind of gallery item.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// AllowedMediaContentTypes maps upload MIME types to gallery media types.
var AllowedMediaContentTypes = map[string]MediaType{
	"image/jpeg": MediaImage,
	"image/png":  MediaImage,
	"video/mp4":  MediaVideo,
}

// MediaExtensions maps upload MIME types to object key extensions.
var MediaExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"video/mp4":  "mp4",
}

// ConsultationStatus tracks whether a question has been answered.
type ConsultationStatus string

const (
	ConsultationPending  ConsultationStatus = "pending"
	ConsultationAnswered ConsultationStatus = "answered"
)

// ChatRole is the speaker of a chat turn.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)
