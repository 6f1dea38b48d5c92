package domain

import "time"

// PrayerTime is one row of the daily prayer schedule.
type PrayerTime struct {
	Name string `json:"name" yaml:"name"`
	Time string `json:"time" yaml:"time"`
}

// Program is a mosque service shown on the home page.
type Program struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

// ProfileDetail holds the long-form profile sections.
type ProfileDetail struct {
	History string `json:"history" yaml:"history"`
	Vision  string `json:"vision" yaml:"vision"`
	Mission string `json:"mission" yaml:"mission"`
}

// Staff is a management roster row. Role is free text; see package orgchart.
type Staff struct {
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role" yaml:"role"`
	ImageURL string `json:"imageUrl,omitempty" yaml:"imageUrl"`
}

// Profile bundles the profile sections with the staff roster in sheet order.
type Profile struct {
	Detail ProfileDetail `json:"detail"`
	Staff  []Staff       `json:"staff"`
}

// BankAccount is a donation destination.
type BankAccount struct {
	BankName      string `json:"bankName" yaml:"bankName"`
	AccountNumber string `json:"accountNumber" yaml:"accountNumber"`
	HolderName    string `json:"holderName" yaml:"holderName"`
}

// Post is a news item, article or announcement.
type Post struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Category    PostCategory `json:"category" yaml:"category"`
	Excerpt     string       `json:"excerpt" yaml:"excerpt"`
	Content     string       `json:"content" yaml:"content"`
	ContentHTML string       `json:"contentHtml,omitempty" yaml:"-"`
	Date        string       `json:"date" yaml:"date"`
	Author      string       `json:"author" yaml:"author"`
	ImageURL    string       `json:"imageUrl,omitempty" yaml:"imageUrl"`
}

// Transaction is a single cash-book entry.
type Transaction struct {
	ID          string          `json:"id" yaml:"id"`
	Date        string          `json:"date" yaml:"date"`
	Description string          `json:"description" yaml:"description"`
	Amount      float64         `json:"amount" yaml:"amount"`
	Type        TransactionType `json:"type" yaml:"type"`
	Category    string          `json:"category" yaml:"category"`
}

// MediaItem is a gallery entry.
type MediaItem struct {
	ID    string    `json:"id" yaml:"id"`
	Type  MediaType `json:"type" yaml:"type"`
	URL   string    `json:"url" yaml:"url"`
	Title string    `json:"title" yaml:"title"`
}

// Consultation is a question submitted to the ustadz team.
type Consultation struct {
	ID         string             `json:"id" yaml:"id"`
	UserID     string             `json:"userId" yaml:"userId"`
	UserName   string             `json:"userName" yaml:"userName"`
	Question   string             `json:"question" yaml:"question"`
	Answer     string             `json:"answer,omitempty" yaml:"answer"`
	AnsweredBy string             `json:"answeredBy,omitempty" yaml:"answeredBy"`
	Status     ConsultationStatus `json:"status" yaml:"status"`
	CreatedAt  time.Time          `json:"createdAt" yaml:"createdAt"`
	AnsweredAt *time.Time         `json:"answeredAt,omitempty" yaml:"answeredAt"`
}

// User is an authenticated portal account.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email,omitempty"`
	Role     UserRole `json:"role"`
	IsUstadz bool     `json:"isUstadz"`
}

// View returns the front-end view the user is switched into.
func (u *User) View() View {
	switch {
	case u == nil:
		return ViewGuest
	case u.Role == RoleAdmin:
		return ViewAdmin
	case u.IsUstadz:
		return ViewUstadz
	case u.Role == RoleJamaah:
		return ViewJamaah
	default:
		return ViewGuest
	}
}

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role ChatRole `json:"role" binding:"required,oneof=user model"`
	Text string   `json:"text" binding:"required"`
}
