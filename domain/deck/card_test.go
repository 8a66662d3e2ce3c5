package deck

import "testing"

func TestNewCardValidation(t *testing.T) {
	if _, err := NewCard(Spade, Ace); err != nil {
		t.Fatal(err)
	}
	if _, err := NewCard(4, 5); err == nil {
		t.Fatal("expected error for suit out of range")
	}
	if _, err := NewCard(Heart, 0); err == nil {
		t.Fatal("expected error for rank 0")
	}
	if _, err := NewCard(Heart, 14); err == nil {
		t.Fatal("expected error for rank above king")
	}
}

func TestCardValue(t *testing.T) {
	ace, _ := NewCard(Spade, Ace)
	if ace.Value() != 14 {
		t.Fatalf("expected ace value 14, got %d", ace.Value())
	}
	king, _ := NewCard(Heart, King)
	if king.Value() != 13 {
		t.Fatalf("expected king value 13, got %d", king.Value())
	}
	if NewJoker().Value() != 0 {
		t.Fatal("expected joker value 0")
	}
}

func TestCardCode(t *testing.T) {
	tests := []struct {
		suit, rank uint8
		want       string
	}{
		{Spade, Ace, "As"},
		{Diamond, 10, "Td"},
		{Club, 2, "2c"},
		{Heart, Queen, "Qh"},
	}
	for _, tc := range tests {
		c, err := NewCard(tc.suit, tc.rank)
		if err != nil {
			t.Fatal(err)
		}
		if c.Code() != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, c.Code())
		}
	}
	if NewJoker().Code() != "jk" {
		t.Fatalf("expected jk, got %s", NewJoker().Code())
	}
	if Hidden().Code() != "??" {
		t.Fatalf("expected ??, got %s", Hidden().Code())
	}
}

func TestFaceUpFlag(t *testing.T) {
	c, _ := NewCard(Club, 7)
	up := c.AsFaceUp()
	if !up.FaceUp() || c.FaceUp() {
		t.Fatal("AsFaceUp must flag the copy only")
	}
	if !c.Same(up) {
		t.Fatal("face-up flag must not affect card identity")
	}
	if down := up.AsFaceDown(); down.FaceUp() {
		t.Fatal("AsFaceDown must clear the flag")
	}
}

func TestHiddenAndJokerPredicates(t *testing.T) {
	if !Hidden().IsHidden() || Hidden().IsJoker() {
		t.Fatal("hidden card misclassified")
	}
	if !NewJoker().IsJoker() || NewJoker().IsHidden() {
		t.Fatal("joker misclassified")
	}
	c, _ := NewCard(Diamond, 3)
	if c.IsHidden() || c.IsJoker() {
		t.Fatal("normal card misclassified")
	}
}
