package model

import (
	"time"
)

type User struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
	IsAdmin  bool   `json:"isAdmin" db:"is_admin"`
}

type Book struct {
	ID              int     `json:"-" db:"id"`
	BookUid         string  `json:"bookUid" db:"book_uid"`
	Title           string  `json:"title" db:"title"`
	Author          string  `json:"author" db:"author"`
	Category        *string `json:"category" db:"category"`
	TotalCopies     int     `json:"totalCopies" db:"total_copies"`
	AvailableCopies int     `json:"availableCopies" db:"available_copies"`
}

type Status string

const (
	StatusBorrowed Status = "BORROWED"
	StatusReturned Status = "RETURNED"
)

type Borrow struct {
	ID         int        `json:"-" db:"id"`
	BorrowUid  string     `json:"borrowUid" db:"borrow_uid"`
	UserID     int        `json:"-" db:"user_id"`
	BookID     int        `json:"-" db:"book_id"`
	BookUid    string     `json:"bookUid" db:"book_uid"`
	Title      string     `json:"title" db:"title"`
	Author     string     `json:"author" db:"author"`
	BorrowDate time.Time  `json:"borrowDate" db:"borrow_date"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time `json:"returnDate" db:"return_date"`
	Status     Status     `json:"status" db:"status"`
}

// Actor is the authenticated identity resolved by the session layer.
type Actor struct {
	Username string
	IsAdmin  bool
}

type UserCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	ExpiresIn   int    `json:"expiresIn"`
	AccessToken string `json:"accessToken"`
}

type CreateBookRequest struct {
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Category    *string `json:"category"`
	TotalCopies int     `json:"totalCopies" validate:"gte=0"`
}

type UpdateBookRequest struct {
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Category    *string `json:"category"`
	TotalCopies int     `json:"totalCopies" validate:"gte=0"`
}

type BookFilter struct {
	Search   string
	Category string
	Page     int
	Size     int
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListBooks struct {
	Paging
	Items []Book `json:"items"`
}

type BookCount struct {
	Title string `json:"title" db:"title"`
	Count int    `json:"count" db:"count"`
}

type UserCount struct {
	Username string `json:"username" db:"username"`
	Count    int    `json:"count" db:"count"`
}

type Stats struct {
	TotalBooks    int         `json:"totalBooks" db:"total_books"`
	TotalUsers    int         `json:"totalUsers" db:"total_users"`
	ActiveBorrows int         `json:"activeBorrows" db:"active_borrows"`
	Overdue       int         `json:"overdue" db:"overdue"`
	MostBorrowed  []BookCount `json:"mostBorrowed"`
	ActiveUsers   []UserCount `json:"activeUsers"`
}

// BorrowEvent is an audit row consumed from the borrow-events topic.
type BorrowEvent struct {
	ID        int       `json:"-" db:"id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	Username  string    `json:"username" db:"username"`
	BorrowUid string    `json:"borrowUid" db:"borrow_uid"`
	BookUid   string    `json:"bookUid" db:"book_uid"`
	EventType string    `json:"eventType" db:"event_type"`
}
