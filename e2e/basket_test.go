//go:build e2e

package e2e

import (
	"testing"
)

// TestBasketEmpty tests the basket page with nothing added
// Feature: Basket
//
//	Scenario: Show empty basket message
//	  Given I am logged in with an empty basket
//	  When I open the basket page
//	  Then I should see "Your basket is empty"
//	  And the total should be $0.00
func TestBasketEmpty(t *testing.T) {
	page := newPage(t)
	login(t, page)

	// When I open the basket page
	NewShopPage(t, page).GoToBasket()

	// Then I should see the empty basket message
	NewBasketPage(t, page).VerifyEmptyBasket()
}

// TestBasketShowsItems tests the basket line details
// Feature: Basket
//
//	Scenario: Show the items that were added
//	  Given I am logged in
//	  And I have added "Fresh Apples" to my basket
//	  When I open the basket page
//	  Then I should see "Fresh Apples" with its quantity and subtotal
func TestBasketShowsItems(t *testing.T) {
	page := newPage(t)
	login(t, page)

	// Given I have added "Fresh Apples" to my basket
	shop := NewShopPage(t, page).AddProductToBasket("Fresh Apples")

	// When I open the basket page
	shop.GoToBasket()

	// Then I should see the line with its quantity and subtotal
	basket := NewBasketPage(t, page).VerifyProductInBasket("Fresh Apples")
	item := basket.Items().First()
	for _, selector := range []string{"img", "p:has-text('Qty in Basket: 1')", "p:has-text('Subtotal: $5.99')"} {
		visible, err := item.Locator(selector).First().IsVisible()
		if err != nil {
			t.Fatalf("Failed to check %s: %v", selector, err)
		}
		if !visible {
			t.Errorf("%s is not visible on the basket line", selector)
		}
	}
}

// TestBasketTotals tests the running total
// Feature: Basket
//
//	Scenario: Total follows the added products
//	  Given I am logged in
//	  When I add "Fresh Apples"
//	  Then the total should be $5.99
//	  When I add "Organic Bananas"
//	  Then the total should be $9.48
func TestBasketTotals(t *testing.T) {
	page := newPage(t)
	login(t, page)
	shop := NewShopPage(t, page)
	basket := NewBasketPage(t, page)

	// When I add "Fresh Apples"
	shop.AddProductToBasket("Fresh Apples").GoToBasket()

	// Then the total should be $5.99
	basket.VerifyTotalAmount("5.99")

	// When I add "Organic Bananas"
	basket.BackToShop()
	shop.AddProductToBasket("Organic Bananas").GoToBasket()

	// Then the total should be $9.48
	basket.VerifyTotalAmount("9.48")
}

// TestBasketClear tests emptying the basket
// Feature: Basket
//
//	Scenario: Clear the basket
//	  Given I am logged in with a product in my basket
//	  When I click Clear Basket
//	  Then I should see "Basket cleared!"
//	  And the basket should be empty
//	  And the stored basket should be an empty list
func TestBasketClear(t *testing.T) {
	page := newPage(t)
	login(t, page)

	// Given a product in my basket
	NewShopPage(t, page).AddProductAt(0).GoToBasket()
	basket := NewBasketPage(t, page)

	// When I click Clear Basket
	basket.ClearBasket()

	// Then I should see "Basket cleared!"
	if got := notification(t, page); got != "Basket cleared!" {
		t.Errorf("Expected notification 'Basket cleared!', got '%s'", got)
	}

	// And the basket should be empty
	basket.VerifyEmptyBasket()
	if records := storedBasket(t, page); len(records) != 0 {
		t.Errorf("Expected empty stored basket, got %+v", records)
	}
}

// TestBasketBackToShop tests returning to the shop
// Feature: Basket
//
//	Scenario: Navigate back to the shop
//	  Given I am on the basket page
//	  When I click Back to Shop
//	  Then I should see the products again
func TestBasketBackToShop(t *testing.T) {
	page := newPage(t)
	login(t, page)
	NewShopPage(t, page).GoToBasket()

	// When I click Back to Shop
	NewBasketPage(t, page).BackToShop()

	// Then I should see the products again
	NewShopPage(t, page).VerifyProductsCount(6)
}

// TestBasketLogout tests logging out from the basket page
// Feature: Basket
//
//	Scenario: Logout from the basket page
//	  Given I am logged in with a product in my basket
//	  When I click Logout on the basket page
//	  Then I should see the login form
//	  And the stored basket should be empty
func TestBasketLogout(t *testing.T) {
	page := newPage(t)
	login(t, page)
	NewShopPage(t, page).AddProductAt(0).GoToBasket()

	// When I click Logout on the basket page
	NewBasketPage(t, page).Logout()

	// Then I should see the login form
	visible, err := page.Locator("#loginForm").IsVisible()
	if err != nil {
		t.Fatalf("Failed to check login form: %v", err)
	}
	if !visible {
		t.Error("Expected the login form after logout")
	}

	// And the stored basket should be empty
	if records := storedBasket(t, page); len(records) != 0 {
		t.Errorf("Expected empty stored basket, got %+v", records)
	}
}

// TestBasketPersistsOnReload tests the basket surviving a reload
// Feature: Basket
//
//	Scenario: Basket survives a page reload
//	  Given I have "Organic Bananas" in my basket
//	  When I reload the basket page
//	  Then "Organic Bananas" should still be listed
//	  And the total should still be $3.49
func TestBasketPersistsOnReload(t *testing.T) {
	page := newPage(t)
	login(t, page)
	NewShopPage(t, page).AddProductToBasket("Organic Bananas").GoToBasket()

	// When I reload the basket page
	if _, err := page.Reload(); err != nil {
		t.Fatalf("Failed to reload: %v", err)
	}

	// Then the line and total should be unchanged
	NewBasketPage(t, page).
		VerifyProductInBasket("Organic Bananas").
		VerifyTotalAmount("3.49")
}
