package recipes

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseRecipesLimit(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: NoRecipesLimit},
		{raw: "0", want: 0},
		{raw: "3", want: 3},
		{raw: "-1", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			got, err := ParseRecipesLimit(tt.raw)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLimit) {
					t.Fatalf("error = %v, want ErrInvalidLimit", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("limit = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSubscribeSelf(t *testing.T) {
	gdb := newTestDB(t)

	user := createUser(t, gdb, "alice")

	if _, err := Subscribe(gdb, user.ID, user.ID, NoRecipesLimit); !errors.Is(err, ErrSelfSubscribe) {
		t.Fatalf("subscribe error = %v, want ErrSelfSubscribe", err)
	}
	if err := Unsubscribe(gdb, user.ID, user.ID); !errors.Is(err, ErrSelfSubscribe) {
		t.Fatalf("unsubscribe error = %v, want ErrSelfSubscribe", err)
	}

	// Prior state must not change the outcome: still forbidden after
	// following someone else.
	other := createUser(t, gdb, "bob")
	if _, err := Subscribe(gdb, user.ID, other.ID, NoRecipesLimit); err != nil {
		t.Fatalf("subscribe to other failed: %v", err)
	}
	if _, err := Subscribe(gdb, user.ID, user.ID, NoRecipesLimit); !errors.Is(err, ErrSelfSubscribe) {
		t.Fatalf("subscribe error = %v, want ErrSelfSubscribe", err)
	}
}

func TestSubscribeLifecycle(t *testing.T) {
	gdb := newTestDB(t)

	follower := createUser(t, gdb, "alice")
	author := createUser(t, gdb, "bob")

	view, err := Subscribe(gdb, follower.ID, author.ID, NoRecipesLimit)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if view.ID != author.ID || !view.IsSubscribed {
		t.Errorf("view = %+v, want the author's profile with is_subscribed", view)
	}

	if _, err := Subscribe(gdb, follower.ID, author.ID, NoRecipesLimit); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("second subscribe error = %v, want ErrAlreadyExists", err)
	}

	if err := Unsubscribe(gdb, follower.ID, author.ID); err != nil {
		t.Fatalf("unsubscribe failed: %v", err)
	}
	if err := Unsubscribe(gdb, follower.ID, author.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second unsubscribe error = %v, want ErrNotFound", err)
	}
}

func TestSubscribeUnknownAuthor(t *testing.T) {
	gdb := newTestDB(t)

	follower := createUser(t, gdb, "alice")

	if _, err := Subscribe(gdb, follower.ID, 9999, NoRecipesLimit); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestSubscriptionViewRecipesLimit(t *testing.T) {
	gdb := newTestDB(t)

	follower := createUser(t, gdb, "alice")
	author := createUser(t, gdb, "bob")
	tag := createTag(t, gdb, "lunch", "#0000ff", "lunch")
	salt := createIngredient(t, gdb, "salt", "g")

	for i := 0; i < 5; i++ {
		mustCreateRecipe(t, gdb, author.ID, fmt.Sprintf("Dish %d", i), []uint{tag.ID},
			[]IngredientAmount{{ID: salt.ID, Amount: 1}})
	}

	view, err := Subscribe(gdb, follower.ID, author.ID, 2)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	if len(view.Recipes) != 2 {
		t.Errorf("recipes in view = %d, want 2 (capped)", len(view.Recipes))
	}
	if view.RecipesCount != 5 {
		t.Errorf("recipes_count = %d, want the uncapped total 5", view.RecipesCount)
	}

	views, err := ListSubscriptions(gdb, follower.ID, NoRecipesLimit)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("subscriptions = %d, want 1", len(views))
	}
	if len(views[0].Recipes) != 5 {
		t.Errorf("uncapped recipes in list view = %d, want 5", len(views[0].Recipes))
	}
}
