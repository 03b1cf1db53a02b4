package models

import (
	"errors"
	"strings"
	"testing"
)

func TestReviewLedgerAddReview(t *testing.T) {
	tests := []struct {
		name      string
		rating    int
		wantErr   bool
		wantStars string
	}{
		{
			name:      "rating 1",
			rating:    1,
			wantStars: "★☆☆☆☆",
		},
		{
			name:      "rating 3",
			rating:    3,
			wantStars: "★★★☆☆",
		},
		{
			name:      "rating 5",
			rating:    5,
			wantStars: "★★★★★",
		},
		{
			name:    "rating 0 rejected",
			rating:  0,
			wantErr: true,
		},
		{
			name:    "rating 6 rejected",
			rating:  6,
			wantErr: true,
		},
		{
			name:    "negative rating rejected",
			rating:  -1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := NewReviewLedger()
			rendered, err := ledger.AddReview("bob", "great seller", tt.rating)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRating) {
					t.Errorf("AddReview() error = %v, want ErrInvalidRating", err)
				}
				if len(ledger.ReviewsFor("bob")) != 0 {
					t.Error("AddReview() stored a rejected review")
				}
				return
			}

			if err != nil {
				t.Fatalf("AddReview() error = %v", err)
			}
			if !strings.Contains(rendered, tt.wantStars) {
				t.Errorf("AddReview() rendered = %q, want stars %q", rendered, tt.wantStars)
			}
			if !strings.Contains(rendered, "great seller") {
				t.Errorf("AddReview() rendered = %q, missing review text", rendered)
			}
		})
	}
}

func TestReviewLedgerReviewsFor(t *testing.T) {
	ledger := NewReviewLedger()

	if got := ledger.ReviewsFor("nobody"); len(got) != 0 {
		t.Errorf("ReviewsFor() on empty ledger = %v, want empty", got)
	}

	first, _ := ledger.AddReview("bob", "first", 5)
	second, _ := ledger.AddReview("bob", "second", 2)
	ledger.AddReview("carl", "other seller", 4)

	got := ledger.ReviewsFor("bob")
	if len(got) != 2 {
		t.Fatalf("ReviewsFor() returned %d reviews, want 2", len(got))
	}
	// Порядок добавления сохраняется
	if got[0] != first || got[1] != second {
		t.Errorf("ReviewsFor() = %v, want [%q, %q]", got, first, second)
	}
}

func TestReviewLedgerAll(t *testing.T) {
	ledger := NewReviewLedger()
	ledger.AddReview("bob", "one", 3)
	ledger.AddReview("carl", "two", 4)
	ledger.AddReview("bob", "three", 5)

	all := ledger.All()
	if len(all) != 3 {
		t.Fatalf("All() returned %d reviews, want 3", len(all))
	}
	if !strings.HasPrefix(all[0], "Seller: bob") {
		t.Errorf("All()[0] = %q, want bob prefix", all[0])
	}
	if !strings.HasPrefix(all[2], "Seller: carl") {
		t.Errorf("All()[2] = %q, want carl last", all[2])
	}
}

func TestNewBuyerHasLedger(t *testing.T) {
	buyer := NewBuyer(1, "ann", "ann@example.com", "2024-01-02", "digest")
	if buyer.Reviews == nil {
		t.Error("NewBuyer() did not attach a review ledger")
	}
	if !buyer.IsBuyer() || buyer.IsSeller() {
		t.Error("NewBuyer() kind dispatch is wrong")
	}
	if !buyer.Balance.IsZero() {
		t.Errorf("NewBuyer() balance = %v, want 0", buyer.Balance)
	}

	seller := NewSeller(2, "bob", "bob@example.com", "2024-01-02", "digest")
	if seller.Reviews != nil {
		t.Error("NewSeller() attached a review ledger")
	}
	if !seller.IsSeller() || seller.IsBuyer() {
		t.Error("NewSeller() kind dispatch is wrong")
	}
}
