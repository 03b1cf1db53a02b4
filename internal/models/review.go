package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRating возвращается при оценке вне диапазона 1..5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ReviewLedger хранит отзывы одного покупателя о продавцах.
// Отзывы живут только в памяти процесса и не сохраняются на диск.
type ReviewLedger struct {
	order    []string
	bySeller map[string][]string
}

// NewReviewLedger создаёт пустую книгу отзывов.
func NewReviewLedger() *ReviewLedger {
	return &ReviewLedger{
		bySeller: make(map[string][]string),
	}
}

// AddReview добавляет отзыв о продавце и возвращает его отрендеренный вид.
// Оценка рендерится в строку звёзд один раз при создании и хранится готовой.
func (l *ReviewLedger) AddReview(sellerLogin, text string, rating int) (string, error) {
	if rating < 1 || rating > 5 {
		return "", ErrInvalidRating
	}

	stars := strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
	rendered := fmt.Sprintf("Review: %s, Rating: %s", text, stars)

	if _, ok := l.bySeller[sellerLogin]; !ok {
		l.order = append(l.order, sellerLogin)
	}
	l.bySeller[sellerLogin] = append(l.bySeller[sellerLogin], rendered)

	return rendered, nil
}

// ReviewsFor возвращает отзывы о продавце в порядке добавления.
// Пустой результат — это отсутствие отзывов, а не ошибка; сообщение
// "нет отзывов" формирует вызывающая сторона.
func (l *ReviewLedger) ReviewsFor(sellerLogin string) []string {
	reviews := l.bySeller[sellerLogin]
	out := make([]string, len(reviews))
	copy(out, reviews)
	return out
}

// All возвращает все отзывы книги с указанием продавца.
func (l *ReviewLedger) All() []string {
	var out []string
	for _, seller := range l.order {
		for _, review := range l.bySeller[seller] {
			out = append(out, fmt.Sprintf("Seller: %s, %s", seller, review))
		}
	}
	return out
}
