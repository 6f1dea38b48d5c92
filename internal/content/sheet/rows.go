package sheet

import (
	"masjid/internal/domain"
)

type prayerRow struct {
	Name text `json:"name"`
	Time text `json:"time"`
}

func (r prayerRow) toDomain() domain.PrayerTime {
	return domain.PrayerTime{Name: r.Name.String(), Time: clock(r.Time)}
}

type programRow struct {
	Title       text `json:"title"`
	Description text `json:"description"`
	Icon        text `json:"icon"`
}

func (r programRow) toDomain() domain.Program {
	return domain.Program{Title: r.Title.String(), Description: r.Description.String(), Icon: r.Icon.String()}
}

type sectionRow struct {
	Section text `json:"section"`
	Content text `json:"content"`
}

type staffRow struct {
	Name     text `json:"name"`
	Role     text `json:"role"`
	ImageURL text `json:"imageUrl"`
}

func (r staffRow) toDomain() domain.Staff {
	return domain.Staff{Name: r.Name.String(), Role: r.Role.String(), ImageURL: r.ImageURL.String()}
}

// profileResponse is the getProfile payload. Details is a pointer so a
// missing key can be told apart from an empty sheet.
type profileResponse struct {
	Details *[]sectionRow `json:"details"`
	Staff   []staffRow    `json:"staff"`
}

type bankRow struct {
	BankName      text `json:"bankName"`
	AccountNumber text `json:"accountNumber"`
	HolderName    text `json:"holderName"`
}

func (r bankRow) toDomain() domain.BankAccount {
	return domain.BankAccount{
		BankName:      r.BankName.String(),
		AccountNumber: r.AccountNumber.String(),
		HolderName:    r.HolderName.String(),
	}
}

type postRow struct {
	ID       text `json:"id"`
	Title    text `json:"title"`
	Category text `json:"category"`
	Excerpt  text `json:"excerpt"`
	Content  text `json:"content"`
	Date     text `json:"date"`
	Author   text `json:"author"`
	ImageURL text `json:"imageUrl"`
}

func (r postRow) toDomain() domain.Post {
	return domain.Post{
		ID:       r.ID.String(),
		Title:    r.Title.String(),
		Category: domain.PostCategory(r.Category.String()),
		Excerpt:  r.Excerpt.String(),
		Content:  string(r.Content),
		Date:     date(r.Date),
		Author:   r.Author.String(),
		ImageURL: r.ImageURL.String(),
	}
}

type financeRow struct {
	ID          text   `json:"id"`
	Date        text   `json:"date"`
	Description text   `json:"description"`
	Amount      number `json:"amount"`
	Type        text   `json:"type"`
	Category    text   `json:"category"`
}

func (r financeRow) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:          r.ID.String(),
		Date:        date(r.Date),
		Description: r.Description.String(),
		Amount:      float64(r.Amount),
		Type:        domain.TransactionType(r.Type.String()),
		Category:    r.Category.String(),
	}
}

type galleryRow struct {
	ID    text `json:"id"`
	Type  text `json:"type"`
	URL   text `json:"url"`
	Title text `json:"title"`
}

func (r galleryRow) toDomain() domain.MediaItem {
	return domain.MediaItem{
		ID:    r.ID.String(),
		Type:  domain.MediaType(r.Type.String()),
		URL:   r.URL.String(),
		Title: r.Title.String(),
	}
}

type consultationRow struct {
	ID         text `json:"id"`
	UserID     text `json:"userId"`
	UserName   text `json:"userName"`
	Question   text `json:"question"`
	Answer     text `json:"answer"`
	AnsweredBy text `json:"answeredBy"`
	Status     text `json:"status"`
	CreatedAt  text `json:"createdAt"`
	AnsweredAt text `json:"answeredAt"`
}

func (r consultationRow) toDomain() domain.Consultation {
	c := domain.Consultation{
		ID:         r.ID.String(),
		UserID:     r.UserID.String(),
		UserName:   r.UserName.String(),
		Question:   r.Question.String(),
		Answer:     r.Answer.String(),
		AnsweredBy: r.AnsweredBy.String(),
		Status:     domain.ConsultationStatus(r.Status.String()),
	}
	if c.Status == "" {
		c.Status = domain.ConsultationPending
	}
	if ts, ok := parseTime(r.CreatedAt); ok {
		c.CreatedAt = ts
	}
	if ts, ok := parseTime(r.AnsweredAt); ok {
		c.AnsweredAt = &ts
	}
	return c
}

type userRow struct {
	ID       text `json:"id"`
	Name     text `json:"name"`
	Role     text `json:"role"`
	Email    text `json:"email"`
	IsUstadz flag `json:"isUstadz"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:       r.ID.String(),
		Name:     r.Name.String(),
		Email:    r.Email.String(),
		Role:     domain.UserRole(r.Role.String()),
		IsUstadz: bool(r.IsUstadz),
	}
}

// actionResult is the envelope returned by doPost actions.
type actionResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Error   string   `json:"error"`
	User    *userRow `json:"user"`
}

func mapRows[R any, T any](rows []R, conv func(R) T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, conv(r))
	}
	return out
}
