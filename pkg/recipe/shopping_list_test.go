package recipe

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderShoppingList(t *testing.T) {
	assert.Equal(t, "Shopping list:\n", RenderShoppingList(nil))
	assert.Equal(t,
		"Shopping list:\nflour g - 500\nmilk ml - 250\n",
		RenderShoppingList([]domain.ShoppingListItem{
			{Name: "flour", MeasurementUnit: "g", TotalAmount: 500},
			{Name: "milk", MeasurementUnit: "ml", TotalAmount: 250},
		}),
	)
}

func TestGetShoppingListAggregatesCart(t *testing.T) {
	db := testutil.NewDB(t)
	shopper := testutil.CreateUser(t, db, "shopper")
	author := testutil.CreateUser(t, db, "author")
	flour := testutil.CreateIngredient(t, db, "flour", "g")
	sugar := testutil.CreateIngredient(t, db, "sugar", "g")
	salt := testutil.CreateIngredient(t, db, "salt", "g")

	bread := testutil.CreateRecipe(t, db, author, "bread", nil, map[uint]int{flour.ID: 300, sugar.ID: 50})
	rolls := testutil.CreateRecipe(t, db, author, "rolls", nil, map[uint]int{flour.ID: 200})
	// not in the cart
	testutil.CreateRecipe(t, db, author, "pretzel", nil, map[uint]int{salt.ID: 10})

	for _, r := range []*entities.Recipe{bread, rolls} {
		row := &entities.ShoppingCart{}
		row.Bind(shopper.ID, r.ID)
		require.NoError(t, db.Create(row).Error)
	}

	svc := NewRecipeService(NewRecipeRepository(db), testutil.NewMemoryStorage())

	list, err := svc.GetShoppingList(context.Background(), shopper.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shopping list:\nflour g - 500\nsugar g - 50\n", list)

	list, err = svc.GetShoppingList(context.Background(), author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shopping list:\n", list)
}

func TestGetShoppingListKeepsUnitsApart(t *testing.T) {
	db := testutil.NewDB(t)
	shopper := testutil.CreateUser(t, db, "shopper")
	milkML := testutil.CreateIngredient(t, db, "milk", "ml")
	milkCup := testutil.CreateIngredient(t, db, "milk", "cup")

	recipe := testutil.CreateRecipe(t, db, shopper, "latte", nil, map[uint]int{milkML.ID: 200, milkCup.ID: 1})
	row := &entities.ShoppingCart{}
	row.Bind(shopper.ID, recipe.ID)
	require.NoError(t, db.Create(row).Error)

	items, err := NewRecipeRepository(db).GetShoppingList(context.Background(), shopper.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.ShoppingListItem{
		{Name: "milk", MeasurementUnit: "cup", TotalAmount: 1},
		{Name: "milk", MeasurementUnit: "ml", TotalAmount: 200},
	}, items)
}
